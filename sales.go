package mercadinho

import (
	"github.com/ebrandao/mercadinho/date"
)

// SalesRecord is the accumulated sales of one product on one day.
type SalesRecord struct {
	ProductID   int
	ProductName string // denormalized at sale time, never re-synced on rename
	Revenue     Money
	Quantity    Quantity
	Day         date.Date
}

// salesLine is one physical line of the sales file: either a parsed record,
// or the raw text preserved verbatim when parsing failed, so that a rewrite
// never destroys a hand-edited file.
type salesLine struct {
	record *SalesRecord
	raw    string
}

// SalesLedger holds the sales file content in memory, in file order.
//
// At rest the ledger contains at most one record per (product id, day) pair:
// Merge folds new sales into the existing record for that key and only
// appends when none exists.
type SalesLedger struct {
	lines []salesLine
}

// NewSalesLedger creates an empty ledger.
func NewSalesLedger() *SalesLedger { return &SalesLedger{} }

// Records returns a copy of every parsed record, in file order. Raw lines
// that failed to parse are not included (they still round-trip on encode).
func (l *SalesLedger) Records() []SalesRecord {
	records := make([]SalesRecord, 0, len(l.lines))
	for _, line := range l.lines {
		if line.record != nil {
			records = append(records, *line.record)
		}
	}
	return records
}

// Merge folds every cart item into the ledger for the given day.
//
// Items are merged one by one against the same in-memory line set, so two
// cart items for the same product accumulate into a single record: the first
// creates or updates the line, the second finds the already-updated line.
func (l *SalesLedger) Merge(cart *Cart, on date.Date) {
	for _, item := range cart.Items() {
		l.merge(item, on)
	}
}

func (l *SalesLedger) merge(item CartItem, on date.Date) {
	for _, line := range l.lines {
		if line.record == nil {
			continue
		}
		if line.record.ProductID == item.Product.ID && line.record.Day == on {
			line.record.Revenue = line.record.Revenue.Add(item.Subtotal())
			line.record.Quantity = line.record.Quantity.Add(item.Quantity)
			return
		}
	}
	l.lines = append(l.lines, salesLine{record: &SalesRecord{
		ProductID:   item.Product.ID,
		ProductName: item.Product.Name,
		Revenue:     item.Subtotal(),
		Quantity:    item.Quantity,
		Day:         on,
	}})
}
