package renderer

import (
	"github.com/ebrandao/mercadinho"
)

// cartLine is the view of one cart item or receipt line.
type cartLine struct {
	ID       int
	Name     string
	Quantity string
	Unit     string
	Price    string
	Subtotal string
}

type cartView struct {
	Lines []cartLine
}

type receiptView struct {
	Day   string
	Lines []cartLine
	Total string
}

func toLines(items []mercadinho.CartItem) []cartLine {
	lines := make([]cartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, cartLine{
			ID:       item.Product.ID,
			Name:     item.Product.Name,
			Quantity: item.Quantity.String(),
			Unit:     item.Product.Unit(),
			Price:    item.Product.Price.String(),
			Subtotal: item.Subtotal().String(),
		})
	}
	return lines
}

// CartMarkdown renders the current cart content, in add order.
func CartMarkdown(items []mercadinho.CartItem) string {
	return renderTemplate("cart", "cart.md", cartView{Lines: toLines(items)})
}

// ReceiptMarkdown renders the checkout receipt: one line per item and the
// grand total.
func ReceiptMarkdown(r mercadinho.Receipt) string {
	return renderTemplate("receipt", "receipt.md", receiptView{
		Day:   r.Day.String(),
		Lines: toLines(r.Items),
		Total: r.Total.String(),
	})
}
