package mercadinho

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ebrandao/mercadinho/date"
)

// AggregationKey selects how report rows are grouped.
type AggregationKey int

const (
	// ByName groups records by product name. Two products sharing a name are
	// merged into a single row. This is the store's historical behavior.
	ByName AggregationKey = iota
	// ByID groups records by product id, keeping same-named products apart.
	ByID
)

func (k AggregationKey) String() string {
	switch k {
	case ByName:
		return "name"
	case ByID:
		return "id"
	default:
		return "unknown"
	}
}

// ParseAggregationKey parses a string into an AggregationKey.
func ParseAggregationKey(s string) (AggregationKey, error) {
	switch s {
	case "name":
		return ByName, nil
	case "id":
		return ByID, nil
	default:
		return 0, fmt.Errorf("unknown aggregation key: %q", s)
	}
}

// ReportRow is the aggregated sales of one group.
type ReportRow struct {
	Label    string
	Revenue  Money
	Quantity Quantity
}

// SalesReport is the aggregation of the ledger over a date range.
type SalesReport struct {
	Range         date.Range
	Key           AggregationKey
	Rows          []ReportRow
	TotalRevenue  Money
	TotalQuantity Quantity
}

// Report aggregates the records whose day falls inside r, boundaries
// included. Rows are sorted by label so the output is reproducible; map
// iteration order never leaks into the report.
func (l *SalesLedger) Report(r date.Range, key AggregationKey) *SalesReport {
	rows := make(map[string]*ReportRow)
	report := &SalesReport{Range: r, Key: key}

	for _, rec := range l.Records() {
		if !r.Contains(rec.Day) {
			continue
		}
		groupKey := rec.ProductName
		label := rec.ProductName
		if key == ByID {
			groupKey = strconv.Itoa(rec.ProductID)
			label = fmt.Sprintf("#%d %s", rec.ProductID, rec.ProductName)
		}
		row, ok := rows[groupKey]
		if !ok {
			row = &ReportRow{Label: label}
			rows[groupKey] = row
		}
		row.Revenue = row.Revenue.Add(rec.Revenue)
		row.Quantity = row.Quantity.Add(rec.Quantity)
		report.TotalRevenue = report.TotalRevenue.Add(rec.Revenue)
		report.TotalQuantity = report.TotalQuantity.Add(rec.Quantity)
	}

	report.Rows = make([]ReportRow, 0, len(rows))
	for _, row := range rows {
		report.Rows = append(report.Rows, *row)
	}
	sort.Slice(report.Rows, func(i, j int) bool { return report.Rows[i].Label < report.Rows[j].Label })
	return report
}
