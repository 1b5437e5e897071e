package mercadinho

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ebrandao/mercadinho/date"
	"github.com/shopspring/decimal"
)

// DecodeSalesLedger reads the sales file, one record per line:
// "productId productName revenue quantity date".
//
// Unlike the catalog reader, a line that fails to parse is not dropped: it is
// kept verbatim and written back unchanged on encode. The sales file is the
// store's accounting history and is sometimes edited by hand; a rewrite must
// not lose those lines. Unparsed lines take no part in merging or reporting.
func DecodeSalesLedger(r io.Reader) (*SalesLedger, error) {
	l := NewSalesLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, err := parseSalesRecord(line)
		if err != nil {
			l.lines = append(l.lines, salesLine{raw: line})
			continue
		}
		l.lines = append(l.lines, salesLine{record: &rec})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading sales ledger: %w", err)
	}
	return l, nil
}

func parseSalesRecord(line string) (SalesRecord, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return SalesRecord{}, fmt.Errorf("want 5 fields, got %d", len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return SalesRecord{}, fmt.Errorf("invalid product id %q: %w", fields[0], err)
	}
	revenue, err := decimal.NewFromString(fields[2])
	if err != nil {
		return SalesRecord{}, fmt.Errorf("invalid revenue %q: %w", fields[2], err)
	}
	qty, err := decimal.NewFromString(fields[3])
	if err != nil {
		return SalesRecord{}, fmt.Errorf("invalid quantity %q: %w", fields[3], err)
	}
	day, err := date.Parse(fields[4])
	if err != nil {
		return SalesRecord{}, err
	}
	return SalesRecord{
		ProductID:   id,
		ProductName: fields[1],
		Revenue:     M(revenue),
		Quantity:    Q(qty),
		Day:         day,
	}, nil
}

// EncodeSalesLedger rewrites the whole ledger: updated and untouched records
// in their original file order, freshly merged records appended, raw
// unparsable lines reproduced verbatim.
func EncodeSalesLedger(w io.Writer, l *SalesLedger) error {
	for _, line := range l.lines {
		var err error
		if line.record == nil {
			_, err = fmt.Fprintln(w, line.raw)
		} else {
			rec := line.record
			_, err = fmt.Fprintf(w, "%d %s %s %s %s\n",
				rec.ProductID, rec.ProductName, rec.Revenue.Fixed(), rec.Quantity, rec.Day)
		}
		if err != nil {
			return fmt.Errorf("error writing sales ledger: %w", err)
		}
	}
	return nil
}
