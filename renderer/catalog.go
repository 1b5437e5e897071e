package renderer

import (
	"github.com/ebrandao/mercadinho"
)

// productRow is the view of one product in the listing template. All values
// are pre-formatted strings so the template stays dumb.
type productRow struct {
	ID    int
	Name  string
	Type  string
	Price string
	Stock string
}

// catalogView is the data handed to the products template.
type catalogView struct {
	Rows []productRow
}

// ProductsMarkdown renders the product list as a markdown table, in id order.
func ProductsMarkdown(products []mercadinho.Product) string {
	view := catalogView{Rows: make([]productRow, 0, len(products))}
	for _, p := range products {
		kind := "unit"
		if p.ByWeight {
			kind = "weight"
		}
		view.Rows = append(view.Rows, productRow{
			ID:    p.ID,
			Name:  p.Name,
			Type:  kind,
			Price: p.Price.String(),
			Stock: p.Stock.String() + " " + p.Unit(),
		})
	}
	return renderTemplate("products", "products.md", view)
}
