// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/florist-backend/internal/config"
	"github.com/your-org/florist-backend/internal/domain/checkout"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReceipt renders an order summary as a PDF receipt the customer
// can download after checkout.
func (s *Service) GenerateReceipt(summary *checkout.Summary) (*bytes.Buffer, error) {
	// Prepare template data
	data := ReceiptData{
		Summary:     summary,
		ReceiptDate: summary.CreatedAt.Format("02/01/2006 15:04"),
		Method:      methodLabel(summary.Method),
		Store: StoreInfo{
			Name:      s.config.Store.Name,
			Address:   s.config.Store.Address,
			Phone:     s.config.Store.Phone,
			Email:     s.config.Store.Email,
			Instagram: s.config.Store.Instagram,
		},
	}

	// Generate HTML from template
	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	// Convert HTML to PDF
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	// Set PDF options
	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	// Add page from HTML content
	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	// Create PDF
	err = pdfg.Create()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data ReceiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Funcs(template.FuncMap{
		"money": s.money,
	}).Parse(receiptTemplate))

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// money formats a minor-unit amount for display, e.g. 2550 -> "R$ 25,50".
func (s *Service) money(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	symbol := "$"
	if s.config.Store.Currency == "BRL" {
		return fmt.Sprintf("%sR$ %d,%02d", sign, cents/100, cents%100)
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, symbol, cents/100, cents%100)
}

func methodLabel(method string) string {
	switch method {
	case checkout.MethodDelivery:
		return "Delivery"
	case checkout.MethodPickup:
		return "Store pickup"
	default:
		return method
	}
}

// ReceiptData represents the data passed to the receipt template
type ReceiptData struct {
	Summary     *checkout.Summary
	ReceiptDate string
	Method      string
	Store       StoreInfo
}

// StoreInfo represents the shop details printed on the receipt header
type StoreInfo struct {
	Name      string
	Address   string
	Phone     string
	Email     string
	Instagram string
}

// Receipt HTML template
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.Summary.OrderNumber}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            border-bottom: 2px solid #eee;
            padding-bottom: 20px;
        }
        .store-info {
            flex: 1;
        }
        .receipt-info {
            text-align: right;
            flex: 1;
        }
        .receipt-title {
            font-size: 28px;
            font-weight: bold;
            color: #be185d;
            margin-bottom: 10px;
        }
        .section-title {
            font-size: 16px;
            font-weight: bold;
            margin-bottom: 10px;
            color: #374151;
        }
        .details {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
        }
        .customer-info, .schedule-info {
            flex: 1;
            margin-right: 20px;
        }
        .items-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        .items-table th,
        .items-table td {
            border: 1px solid #ddd;
            padding: 12px 8px;
            text-align: left;
        }
        .items-table th {
            background-color: #f8f9fa;
            font-weight: bold;
        }
        .items-table .qty-col,
        .items-table .price-col,
        .items-table .total-col {
            text-align: right;
            width: 80px;
        }
        .card-text {
            font-style: italic;
            color: #666;
        }
        .totals {
            float: right;
            width: 300px;
        }
        .totals table {
            width: 100%;
            border-collapse: collapse;
        }
        .totals td {
            padding: 8px;
            border-bottom: 1px solid #eee;
        }
        .totals .label {
            text-align: right;
            font-weight: bold;
        }
        .totals .amount {
            text-align: right;
            width: 100px;
        }
        .total-row {
            font-size: 18px;
            font-weight: bold;
            border-top: 2px solid #333 !important;
        }
        .footer {
            margin-top: 50px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            text-align: center;
            color: #666;
            font-size: 12px;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="store-info">
            <h1>{{.Store.Name}}</h1>
            {{if .Store.Address}}<p>{{.Store.Address}}</p>{{end}}
            {{if .Store.Phone}}<p>Phone: {{.Store.Phone}}</p>{{end}}
            {{if .Store.Email}}<p>Email: {{.Store.Email}}</p>{{end}}
            {{if .Store.Instagram}}<p>{{.Store.Instagram}}</p>{{end}}
        </div>
        <div class="receipt-info">
            <div class="receipt-title">ORDER RECEIPT</div>
            <p><strong>Order #:</strong> {{.Summary.OrderNumber}}</p>
            <p><strong>Date:</strong> {{.ReceiptDate}}</p>
            <p><strong>Method:</strong> {{.Method}}</p>
        </div>
    </div>

    <div class="details">
        <div class="customer-info">
            <div class="section-title">Customer</div>
            <p><strong>{{.Summary.Customer.Name}}</strong></p>
            <p>Phone: {{.Summary.Customer.Phone}}</p>
            {{if .Summary.Customer.Street}}
            <p>{{.Summary.Customer.Street}}, {{.Summary.Customer.Number}}</p>
            <p>{{.Summary.Customer.District}}</p>
            {{if .Summary.Customer.Reference}}<p>{{.Summary.Customer.Reference}}</p>{{end}}
            {{end}}
        </div>
        <div class="schedule-info">
            <div class="section-title">Scheduled For</div>
            <p><strong>{{.Summary.Scheduled.Date.Key}}</strong> at <strong>{{.Summary.Scheduled.Time}}</strong></p>
        </div>
    </div>

    <table class="items-table">
        <thead>
            <tr>
                <th>Item</th>
                <th class="qty-col">Qty</th>
                <th class="price-col">Price</th>
                <th class="total-col">Total</th>
            </tr>
        </thead>
        <tbody>
            {{range .Summary.Items}}
            <tr>
                <td>
                    <strong>{{.Name}}</strong>
                    {{if .IsMessageCard}}{{if .Text}}<br><small class="card-text">&ldquo;{{.Text}}&rdquo;</small>{{end}}{{end}}
                </td>
                <td class="qty-col">{{.Quantity}}</td>
                <td class="price-col">{{money .Price}}</td>
                <td class="total-col">{{money .Subtotal}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        <table>
            <tr>
                <td class="label">Subtotal:</td>
                <td class="amount">{{money .Summary.Pricing.SubTotal}}</td>
            </tr>
            {{if gt .Summary.Pricing.DeliveryFee 0}}
            <tr>
                <td class="label">Delivery:</td>
                <td class="amount">{{money .Summary.Pricing.DeliveryFee}}</td>
            </tr>
            {{end}}
            <tr class="total-row">
                <td class="label">Total:</td>
                <td class="amount">{{money .Summary.Pricing.Total}}</td>
            </tr>
        </table>
    </div>

    <div style="clear: both;"></div>

    <div class="footer">
        <p>Thank you for choosing {{.Store.Name}}!</p>
        {{if .Store.Phone}}<p>Questions about your order? Call us at {{.Store.Phone}}</p>{{end}}
    </div>
</body>
</html>
`
