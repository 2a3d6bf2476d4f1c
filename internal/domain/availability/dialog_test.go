package availability

import (
	"errors"
	"testing"
	"time"
)

func newTestDialog() *Dialog {
	return NewDialog(Settings{
		Weekly: WeeklySchedule{
			time.Monday: {
				{Start: "09:00", End: "12:00"},
				{Start: "14:00", End: "18:00"},
			},
		},
	})
}

func TestDialogHappyPath(t *testing.T) {
	d := newTestDialog()

	if d.Step() != StepCollectDate {
		t.Fatalf("initial step = %s", d.Step())
	}

	ok, err := d.SelectDate("05/01/2026") // a Monday
	if err != nil || !ok {
		t.Fatalf("SelectDate: ok=%v err=%v", ok, err)
	}
	if d.Step() != StepCollectTime {
		t.Fatalf("step after date = %s", d.Step())
	}

	ok, err = d.SelectTime("09:00")
	if err != nil || !ok {
		t.Fatalf("SelectTime: ok=%v err=%v", ok, err)
	}
	if d.Step() != StepConfirmed {
		t.Fatalf("step after time = %s", d.Step())
	}

	result, confirmed := d.Result()
	if !confirmed {
		t.Fatal("expected confirmed result")
	}
	if result.Date.Key() != "05/01/2026" || result.Time != "09:00" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestDialogRejectedDateIsNoOp(t *testing.T) {
	d := newTestDialog()

	ok, err := d.SelectDate("06/01/2026") // a Tuesday, not scheduled
	if err != nil {
		t.Fatalf("SelectDate: %v", err)
	}
	if ok {
		t.Fatal("unavailable date should be rejected")
	}
	if d.Step() != StepCollectDate {
		t.Errorf("rejected pick changed step to %s", d.Step())
	}
	if d.Message() == "" {
		t.Error("expected a validation message")
	}

	// A later valid pick clears the message.
	if ok, _ := d.SelectDate("05/01/2026"); !ok {
		t.Fatal("valid date should be accepted")
	}
	if d.Message() != "" {
		t.Errorf("message not cleared: %q", d.Message())
	}
}

func TestDialogRejectedTimeIsNoOp(t *testing.T) {
	d := newTestDialog()
	if ok, _ := d.SelectDate("05/01/2026"); !ok {
		t.Fatal("setup: date rejected")
	}

	ok, err := d.SelectTime("13:00") // gap between the two windows
	if err != nil {
		t.Fatalf("SelectTime: %v", err)
	}
	if ok {
		t.Fatal("time in the schedule gap should be rejected")
	}
	if d.Step() != StepCollectTime {
		t.Errorf("rejected pick changed step to %s", d.Step())
	}
	if _, confirmed := d.Result(); confirmed {
		t.Error("no result should be available yet")
	}
}

func TestDialogBackDiscardsDate(t *testing.T) {
	d := newTestDialog()
	if ok, _ := d.SelectDate("05/01/2026"); !ok {
		t.Fatal("setup: date rejected")
	}

	d.Back()
	if d.Step() != StepCollectDate {
		t.Fatalf("step after back = %s", d.Step())
	}

	// Time picks are ignored until a date is collected again.
	if ok, _ := d.SelectTime("09:00"); ok {
		t.Error("time pick should be ignored at the date step")
	}
}

func TestDialogMalformedInput(t *testing.T) {
	d := newTestDialog()

	if _, err := d.SelectDate("soon"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
	if d.Step() != StepCollectDate {
		t.Errorf("malformed input changed step to %s", d.Step())
	}

	if ok, _ := d.SelectDate("05/01/2026"); !ok {
		t.Fatal("setup: date rejected")
	}
	if _, err := d.SelectTime("noonish"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
}

func TestDialogReset(t *testing.T) {
	d := newTestDialog()
	if ok, _ := d.SelectDate("05/01/2026"); !ok {
		t.Fatal("setup: date rejected")
	}
	if ok, _ := d.SelectTime("10:00"); !ok {
		t.Fatal("setup: time rejected")
	}

	d.Reset()
	if d.Step() != StepCollectDate {
		t.Fatalf("step after reset = %s", d.Step())
	}
	if _, confirmed := d.Result(); confirmed {
		t.Error("result should not be readable after reset")
	}

	// The dialog is reusable for a second selection.
	if ok, _ := d.SelectDate("12/01/2026"); !ok {
		t.Fatal("second date rejected")
	}
	if ok, _ := d.SelectTime("15:00"); !ok {
		t.Fatal("second time rejected")
	}
	result, confirmed := d.Result()
	if !confirmed || result.Date.Key() != "12/01/2026" {
		t.Errorf("unexpected second result: %+v confirmed=%v", result, confirmed)
	}
}
