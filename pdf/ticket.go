// Package pdf generates printable receipt tickets for completed checkouts.
package pdf

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/ebrandao/mercadinho"
)

// Ticket writes a receipt-style PDF for a completed checkout to path.
//
// The page is a custom 74mm x 105mm size, close to thermal receipt paper.
func Ticket(r mercadinho.Receipt, path string) error {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	doc.SetMargins(4, 4, 4)
	doc.AddPage()

	pageW, _ := doc.GetPageSize()
	contentW := pageW - 8 // total margins

	// Header
	doc.SetFont("Helvetica", "B", 13)
	doc.CellFormat(contentW, 7, "Mercadinho", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 8)
	doc.CellFormat(contentW, 5, r.Day.String(), "", 1, "C", false, 0, "")
	doc.Ln(2)

	doc.Line(4, doc.GetY(), pageW-4, doc.GetY())
	doc.Ln(2)

	// Item columns: name, quantity, subtotal.
	col1 := contentW * 0.52
	col2 := contentW * 0.16
	col3 := contentW * 0.32

	doc.SetFont("Helvetica", "B", 7)
	doc.CellFormat(col1, 5, "Product", "B", 0, "L", false, 0, "")
	doc.CellFormat(col2, 5, "Qty", "B", 0, "C", false, 0, "")
	doc.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "", 7)
	for _, item := range r.Items {
		name := item.Product.Name
		if len(name) > 22 {
			name = name[:21] + "~"
		}
		doc.CellFormat(col1, 5, name, "", 0, "L", false, 0, "")
		doc.CellFormat(col2, 5, item.Quantity.String()+" "+item.Product.Unit(), "", 0, "C", false, 0, "")
		doc.CellFormat(col3, 5, item.Subtotal().Fixed(), "", 1, "R", false, 0, "")
	}

	doc.Ln(2)
	doc.Line(4, doc.GetY(), pageW-4, doc.GetY())
	doc.Ln(2)

	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	doc.CellFormat(col3, 6, r.Total.Fixed(), "", 1, "R", false, 0, "")

	doc.Ln(3)
	doc.SetFont("Helvetica", "I", 7)
	doc.CellFormat(contentW, 4, "Thank you for shopping with us!", "", 1, "C", false, 0, "")

	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdf: write file: %w", err)
	}
	return nil
}
