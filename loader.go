package mercadinho

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadCatalog reads the catalog file. A missing file yields an empty catalog,
// not an error: the store starts from nothing on first run.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open catalog file %q: %w", path, err)
	}
	defer f.Close()

	c, err := DecodeCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode catalog file %q: %w", path, err)
	}
	return c, nil
}

// SaveCatalog rewrites the whole catalog file.
func SaveCatalog(path string, c *Catalog) error {
	return atomicWrite(path, func(w io.Writer) error { return EncodeCatalog(w, c) })
}

// LoadSalesLedger reads the sales file. A missing file yields an empty ledger.
func LoadSalesLedger(path string) (*SalesLedger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewSalesLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open sales file %q: %w", path, err)
	}
	defer f.Close()

	l, err := DecodeSalesLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode sales file %q: %w", path, err)
	}
	return l, nil
}

// SaveSalesLedger rewrites the whole sales file.
func SaveSalesLedger(path string, l *SalesLedger) error {
	return atomicWrite(path, func(w io.Writer) error { return EncodeSalesLedger(w, l) })
}

// atomicWrite writes through a temporary file in the destination directory
// and renames it into place, so an interrupted write never leaves a
// truncated catalog or ledger behind. The success path is byte-identical to
// a plain rewrite.
func atomicWrite(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary file in %q: %w", dir, err)
	}
	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not close temporary file %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace %q: %w", path, err)
	}
	return nil
}
