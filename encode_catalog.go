package mercadinho

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DecodeCatalog reads the whitespace-delimited catalog format, one product
// per line: "id name flag price quantity".
//
// A line that does not parse is skipped and reading resumes on the next
// line, so a partially damaged file still yields its intact records. This
// mirrors how the store always treated its files; the cost is that broken
// lines vanish silently on the next full rewrite.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	c := NewCatalog()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p, err := parseProduct(line)
		if err != nil {
			continue // malformed line, keep reading
		}
		c.products = append(c.products, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}
	return c, nil
}

func parseProduct(line string) (Product, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return Product{}, fmt.Errorf("want 5 fields, got %d", len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Product{}, fmt.Errorf("invalid id %q: %w", fields[0], err)
	}
	flag, err := strconv.Atoi(fields[2])
	if err != nil {
		return Product{}, fmt.Errorf("invalid flag %q: %w", fields[2], err)
	}
	price, err := decimal.NewFromString(fields[3])
	if err != nil {
		return Product{}, fmt.Errorf("invalid price %q: %w", fields[3], err)
	}
	stock, err := decimal.NewFromString(fields[4])
	if err != nil {
		return Product{}, fmt.Errorf("invalid quantity %q: %w", fields[4], err)
	}
	return Product{
		ID:       id,
		Name:     fields[1],
		ByWeight: flag != 0,
		Price:    M(price),
		Stock:    Q(stock),
	}, nil
}

// EncodeCatalog rewrites the whole catalog, one product per line, prices with
// exactly two fractional digits. Callers persist after every mutation; this
// is a full overwrite, not an append.
func EncodeCatalog(w io.Writer, c *Catalog) error {
	for _, p := range c.products {
		flag := 0
		if p.ByWeight {
			flag = 1
		}
		if _, err := fmt.Fprintf(w, "%d %s %d %s %s\n", p.ID, p.Name, flag, p.Price.Fixed(), p.Stock); err != nil {
			return fmt.Errorf("error writing catalog: %w", err)
		}
	}
	return nil
}
