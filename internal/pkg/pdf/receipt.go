// internal/pkg/pdf/receipt.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/oncloth/storefront/internal/domain/checkout"
	"github.com/oncloth/storefront/internal/pkg/money"
	"github.com/shopspring/decimal"
)

var receiptTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"price":     money.Format,
	"lineTotal": lineTotal,
}).Parse(receiptTemplate))

func lineTotal(item checkout.LastOrderItem) string {
	return money.Format(money.Mul(item.Price, item.Quantity))
}

// ReceiptService renders completed orders as HTML or PDF receipts
type ReceiptService struct {
	brand string
}

// NewReceiptService creates a new receipt service
func NewReceiptService(brand string) *ReceiptService {
	return &ReceiptService{brand: brand}
}

// ReceiptData represents the data passed to the receipt template
type ReceiptData struct {
	Brand    string
	Date     string
	Subtotal decimal.Decimal
	Order    *checkout.LastOrder
}

// RenderHTML renders the receipt page for order
func (s *ReceiptService) RenderHTML(order *checkout.LastOrder) ([]byte, error) {
	brand := order.Brand
	if brand == "" {
		brand = s.brand
	}

	data := ReceiptData{
		Brand:    brand,
		Date:     time.UnixMilli(order.Timestamp).UTC().Format("January 2, 2006"),
		Subtotal: order.Total.Sub(order.Shipping),
		Order:    order,
	}

	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// GeneratePDF converts the receipt page to PDF. It needs the wkhtmltopdf
// binary on PATH.
func (s *ReceiptService) GeneratePDF(order *checkout.LastOrder) (*bytes.Buffer, error) {
	htmlContent, err := s.RenderHTML(order)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA5)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(htmlContent))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Brand}} receipt</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; color: #111; }
        .header { border-bottom: 2px solid #111; margin-bottom: 24px; padding-bottom: 12px; }
        .brand { font-size: 28px; font-weight: bold; letter-spacing: 2px; }
        .items { width: 100%; border-collapse: collapse; margin-bottom: 24px; }
        .items th, .items td { border-bottom: 1px solid #ddd; padding: 8px; text-align: left; }
        .items .num { text-align: right; }
        .totals { float: right; width: 260px; }
        .totals td { padding: 6px 8px; }
        .totals .amount { text-align: right; }
        .total-row { font-weight: bold; border-top: 2px solid #111; }
        .footer { clear: both; margin-top: 48px; text-align: center; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="header">
        <div class="brand">{{.Brand}}</div>
        <p>Order placed {{.Date}}</p>
    </div>

    <div class="customer">
        <p><strong>{{.Order.Customer.Name}}</strong></p>
        <p>{{.Order.Customer.Address}}</p>
        <p>{{.Order.Customer.City}}{{if .Order.Customer.State}}, {{.Order.Customer.State}}{{end}} {{.Order.Customer.PostalCode}}</p>
        <p>{{.Order.Customer.Country}}</p>
        <p>{{.Order.Customer.Email}}</p>
    </div>

    <table class="items">
        <thead>
            <tr>
                <th>Item</th>
                <th>Size</th>
                <th>Color</th>
                <th class="num">Qty</th>
                <th class="num">Price</th>
                <th class="num">Total</th>
            </tr>
        </thead>
        <tbody>
            {{range .Order.Items}}
            <tr>
                <td>{{.Name}}</td>
                <td>{{.Size}}</td>
                <td>{{.Color}}</td>
                <td class="num">{{.Quantity}}</td>
                <td class="num">{{price .Price}}</td>
                <td class="num">{{lineTotal .}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <table class="totals">
        <tr><td>Subtotal:</td><td class="amount">{{price .Subtotal}}</td></tr>
        <tr><td>Shipping:</td><td class="amount">{{price .Order.Shipping}}</td></tr>
        <tr class="total-row"><td>Total:</td><td class="amount">{{price .Order.Total}}</td></tr>
    </table>

    <div class="footer">
        <p>Thank you for shopping with {{.Brand}}!</p>
    </div>
</body>
</html>
`
