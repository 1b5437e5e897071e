package mercadinho

import "github.com/ebrandao/mercadinho/date"

// Receipt is the printable summary of one checkout. It is built before the
// files are touched, so it can still be shown when the ledger write fails.
type Receipt struct {
	Items []CartItem
	Total Money
	Day   date.Date
}

// NewReceipt snapshots the cart content into a receipt for the given day.
func NewReceipt(cart *Cart, on date.Date) Receipt {
	return Receipt{
		Items: cart.Items(),
		Total: cart.Total(),
		Day:   on,
	}
}
