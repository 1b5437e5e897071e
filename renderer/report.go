package renderer

import (
	"github.com/ebrandao/mercadinho"
)

type reportRow struct {
	Label    string
	Revenue  string
	Quantity string
}

type reportView struct {
	From          string
	To            string
	Rows          []reportRow
	TotalRevenue  string
	TotalQuantity string
}

// ReportMarkdown renders a sales report: one row per aggregation group,
// already sorted by the report builder, plus grand totals.
func ReportMarkdown(r *mercadinho.SalesReport) string {
	view := reportView{
		From:          r.Range.From.String(),
		To:            r.Range.To.String(),
		TotalRevenue:  r.TotalRevenue.String(),
		TotalQuantity: r.TotalQuantity.String(),
	}
	for _, row := range r.Rows {
		view.Rows = append(view.Rows, reportRow{
			Label:    row.Label,
			Revenue:  row.Revenue.String(),
			Quantity: row.Quantity.String(),
		})
	}
	return renderTemplate("report", "report.md", view)
}
