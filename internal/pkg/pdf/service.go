// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/shopspring/decimal"

	"github.com/your-org/pantry-backend/internal/config"
	"github.com/your-org/pantry-backend/internal/domain/budget"
	"github.com/your-org/pantry-backend/internal/domain/cart"
	"github.com/your-org/pantry-backend/internal/pkg/numeric"
)

var shoppingListTmpl = template.Must(template.New("shopping_list").Parse(shoppingListTemplate))

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

// GenerateShoppingList renders the cart as a printable shopping list
func (s *Service) GenerateShoppingList(summary cart.Summary, status budget.Status, now time.Time) (*bytes.Buffer, error) {
	htmlContent, err := s.RenderHTML(s.ShoppingListData(summary, status, now))
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(strings.NewReader(htmlContent))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// ShoppingListData groups the selected items by category for the template
func (s *Service) ShoppingListData(summary cart.Summary, status budget.Status, now time.Time) ShoppingListData {
	data := ShoppingListData{
		Title:     s.config.PDF.Title,
		Date:      now.Format("02/01/2006"),
		ItemCount: summary.Totals.ItemCount,
		Total:     formatEuro(summary.Totals.TotalCost),
		Budget:    formatEuro(status.Budget),
		Remaining: formatEuro(status.Remaining),
		Exceeded:  status.Exceeded,
		HasBudget: status.Budget > 0,
	}

	index := map[string]int{}
	for _, item := range summary.Items {
		i, ok := index[item.Category]
		if !ok {
			i = len(data.Groups)
			index[item.Category] = i
			data.Groups = append(data.Groups, Group{Category: item.Category})
		}

		data.Groups[i].Lines = append(data.Groups[i].Lines, Line{
			Name:      item.Name,
			Quantity:  decimal.NewFromFloat(numeric.Clamp(item.Quantity)).String(),
			Unit:      item.Unit,
			Price:     formatEuro(item.Price),
			LineTotal: formatEuro(numeric.Mul(item.Price, item.Quantity).InexactFloat64()),
		})
	}

	return data
}

// RenderHTML executes the shopping list template
func (s *Service) RenderHTML(data ShoppingListData) (string, error) {
	var buf bytes.Buffer
	if err := shoppingListTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// ShoppingListData represents the data passed to the shopping list template
type ShoppingListData struct {
	Title     string
	Date      string
	Groups    []Group
	ItemCount int
	Total     string
	Budget    string
	Remaining string
	Exceeded  bool
	HasBudget bool
}

// Group is the list of lines of one category
type Group struct {
	Category string
	Lines    []Line
}

// Line is one item of the shopping list
type Line struct {
	Name      string
	Quantity  string
	Unit      string
	Price     string
	LineTotal string
}

// formatEuro formats an amount the French way, 1234.5 -> "1234,50 €"
func formatEuro(v float64) string {
	return strings.Replace(decimal.NewFromFloat(v).StringFixed(2), ".", ",", 1) + " €"
}

const shoppingListTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            border-bottom: 2px solid #eee;
            padding-bottom: 12px;
            margin-bottom: 20px;
        }
        .title {
            font-size: 26px;
            font-weight: bold;
            color: #16a34a;
        }
        h2 {
            font-size: 16px;
            margin: 18px 0 6px;
            color: #555;
        }
        table {
            width: 100%;
            border-collapse: collapse;
        }
        td {
            padding: 6px 4px;
            border-bottom: 1px solid #f0f0f0;
        }
        .box {
            display: inline-block;
            width: 12px;
            height: 12px;
            border: 1px solid #999;
        }
        .amount {
            text-align: right;
            white-space: nowrap;
        }
        .totals {
            margin-top: 24px;
            text-align: right;
            font-size: 15px;
        }
        .exceeded {
            color: #dc2626;
            font-weight: bold;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="title">{{.Title}}</div>
        <div>{{.Date}} · {{.ItemCount}} article(s)</div>
    </div>

    {{range .Groups}}
    <h2>{{.Category}}</h2>
    <table>
        {{range .Lines}}
        <tr>
            <td><span class="box"></span></td>
            <td>{{.Name}}</td>
            <td>{{.Quantity}} {{.Unit}}</td>
            <td class="amount">{{.Price}}</td>
            <td class="amount">{{.LineTotal}}</td>
        </tr>
        {{end}}
    </table>
    {{else}}
    <p>Aucun article sélectionné.</p>
    {{end}}

    <div class="totals">
        <div>Total : <strong>{{.Total}}</strong></div>
        {{if .HasBudget}}
        <div>Budget : {{.Budget}}</div>
        <div{{if .Exceeded}} class="exceeded"{{end}}>Reste : {{.Remaining}}</div>
        {{end}}
    </div>
</body>
</html>
`
