// internal/domain/availability/dialog.go
package availability

// Step represents the current step of the delivery scheduling dialog.
type Step string

const (
	StepCollectDate Step = "collect_date"
	StepCollectTime Step = "collect_time"
	StepConfirmed   Step = "confirmed"
)

// SelectedDateTime is the confirmed delivery slot emitted by the dialog.
type SelectedDateTime struct {
	Date Date   `json:"date"`
	Time string `json:"time"` // "HH:MM"
}

// Dialog walks a customer through picking a delivery date and time. A
// rejected pick leaves the dialog where it is and records a validation
// message; only malformed input is reported as an error.
type Dialog struct {
	settings Settings
	step     Step
	date     Date
	message  string
	result   SelectedDateTime
}

// NewDialog creates a dialog at the date-collection step.
func NewDialog(settings Settings) *Dialog {
	return &Dialog{settings: settings, step: StepCollectDate}
}

// Step returns the current dialog step.
func (d *Dialog) Step() Step {
	return d.step
}

// Message returns the validation message from the last rejected pick, empty
// after an accepted one.
func (d *Dialog) Message() string {
	return d.message
}

// SelectDate submits a "DD/MM/YYYY" date pick. Returns false without
// changing state when the date is unavailable.
func (d *Dialog) SelectDate(raw string) (bool, error) {
	if d.step != StepCollectDate {
		return false, nil
	}

	date, err := ParseDate(raw)
	if err != nil {
		return false, err
	}

	if !d.settings.IsDateAvailable(date) {
		d.message = "delivery is not available on this date, please pick another day"
		return false, nil
	}

	d.date = date
	d.message = ""
	d.step = StepCollectTime
	return true, nil
}

// SelectTime submits an "HH:MM" time pick for the previously accepted date.
// On success the dialog is confirmed and Result returns the selection.
func (d *Dialog) SelectTime(clock string) (bool, error) {
	if d.step != StepCollectTime {
		return false, nil
	}

	valid, err := d.settings.IsTimeValid(d.date, clock)
	if err != nil {
		return false, err
	}
	if !valid {
		d.message = "delivery time is outside store hours for this date"
		return false, nil
	}

	d.result = SelectedDateTime{Date: d.date, Time: clock}
	d.message = ""
	d.step = StepConfirmed
	return true, nil
}

// Back returns from time collection to date collection, discarding the
// tentative date. Allowed at any point of time collection; a no-op elsewhere.
func (d *Dialog) Back() {
	if d.step == StepCollectTime {
		d.date = Date{}
		d.message = ""
		d.step = StepCollectDate
	}
}

// Result returns the confirmed selection. The second return is false until
// the dialog reaches the confirmed step.
func (d *Dialog) Result() (SelectedDateTime, bool) {
	if d.step != StepConfirmed {
		return SelectedDateTime{}, false
	}
	return d.result, true
}

// Reset reopens the dialog at the date-collection step. A result already
// emitted to the caller is unaffected.
func (d *Dialog) Reset() {
	d.date = Date{}
	d.message = ""
	d.step = StepCollectDate
}
