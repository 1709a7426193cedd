// internal/pkg/receipt/service.go
package receipt

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/pos-terminal/internal/config"
	"github.com/your-org/pos-terminal/internal/domain/order"
)

// Service handles receipt PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new receipt service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// Generate renders a PDF receipt for an order
func (s *Service) Generate(o *order.Order) (*bytes.Buffer, error) {
	data := receiptData{
		Order:             o,
		PrintedAt:         time.Now().Format("02/01/2006 15:04"),
		StatusText:        order.StatusText(o.Status),
		PaymentMethodText: order.PaymentMethodText(o.PaymentMethod),
		Shop: shopInfo{
			Name:       s.config.Receipt.ShopName,
			Address:    s.config.Receipt.ShopAddress,
			Phone:      s.config.Receipt.ShopPhone,
			FooterNote: s.config.Receipt.FooterNote,
		},
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(true)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from the receipt template
func (s *Service) generateHTML(data receiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Parse(receiptTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// receiptData represents the data passed to the receipt template
type receiptData struct {
	Order             *order.Order
	PrintedAt         string
	StatusText        string
	PaymentMethodText string
	Shop              shopInfo
}

// shopInfo represents the shop identity block on the receipt
type shopInfo struct {
	Name       string
	Address    string
	Phone      string
	FooterNote string
}

// Receipt HTML template
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.Order.OrderCode}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 16px;
            font-size: 12px;
        }
        .header { text-align: center; margin-bottom: 12px; }
        .header h1 { font-size: 16px; margin: 0 0 4px 0; }
        .meta { margin-bottom: 12px; }
        table { width: 100%; border-collapse: collapse; }
        th, td { text-align: left; padding: 4px 2px; border-bottom: 1px dashed #999; }
        td.amount, th.amount { text-align: right; }
        .option { color: #555; font-size: 11px; padding-left: 10px; }
        .totals td { border-bottom: none; padding: 2px; }
        .totals .grand { font-weight: bold; font-size: 14px; }
        .footer { text-align: center; margin-top: 16px; }
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.Shop.Name}}</h1>
        {{if .Shop.Address}}<div>{{.Shop.Address}}</div>{{end}}
        {{if .Shop.Phone}}<div>{{.Shop.Phone}}</div>{{end}}
    </div>

    <div class="meta">
        <div>Mã đơn: <strong>{{.Order.OrderCode}}</strong></div>
        <div>Trạng thái: {{.StatusText}}</div>
        <div>Thanh toán: {{.PaymentMethodText}}</div>
        <div>In lúc: {{.PrintedAt}}</div>
        {{if .Order.CustomerInfo}}{{if .Order.CustomerInfo.Table}}<div>Bàn: {{.Order.CustomerInfo.Table}}</div>{{end}}{{end}}
    </div>

    <table>
        <tr><th>Món</th><th>SL</th><th class="amount">Thành tiền</th></tr>
        {{range .Order.Items}}
        <tr>
            <td>{{.ProductName}}{{if .VariantName}} ({{.VariantName}}){{end}}</td>
            <td>{{.Quantity}}</td>
            <td class="amount">{{.LineTotal}}</td>
        </tr>
        {{range .Options}}
        <tr><td class="option" colspan="3">+ {{.OptionName}} ({{.PriceDelta}})</td></tr>
        {{end}}
        {{end}}
    </table>

    <table class="totals">
        <tr><td>Tạm tính</td><td class="amount">{{.Order.Subtotal}}</td></tr>
        <tr><td>Giảm giá</td><td class="amount">{{.Order.Discount}}</td></tr>
        <tr class="grand"><td>Tổng cộng</td><td class="amount">{{.Order.Total}}</td></tr>
    </table>

    {{if .Shop.FooterNote}}<div class="footer">{{.Shop.FooterNote}}</div>{{end}}
</body>
</html>
`
