package mercadinho

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ebrandao/mercadinho/date"
)

func TestLoadCatalog_MissingFileIsEmpty(t *testing.T) {
	c, err := LoadCatalog(filepath.Join(t.TempDir(), "produtos.txt"))
	if err != nil {
		t.Fatalf("LoadCatalog on a missing file returned an error: %v", err)
	}
	if !c.IsEmpty() {
		t.Errorf("LoadCatalog on a missing file returned %d products", c.Len())
	}
}

func TestSaveLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "produtos.txt")

	c := NewCatalog()
	mustCreate(t, c, "rice", false, 4.5, 10)
	mustCreate(t, c, "tomato", true, 7.9, 3.5)

	if err := SaveCatalog(path, c); err != nil {
		t.Fatalf("SaveCatalog returned an unexpected error: %v", err)
	}
	back, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog returned an unexpected error: %v", err)
	}
	if back.Len() != 2 {
		t.Fatalf("LoadCatalog read %d products, want 2", back.Len())
	}
	p, _ := back.Get(2)
	if p.Name != "tomato" || !p.Stock.Equal(Q(3.5)) {
		t.Errorf("product 2 round-tripped as %+v", p)
	}
}

func TestSaveCatalog_LeavesNoTempResidue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "produtos.txt")

	c := NewCatalog()
	mustCreate(t, c, "rice", false, 4.5, 10)
	if err := SaveCatalog(path, c); err != nil {
		t.Fatalf("SaveCatalog returned an unexpected error: %v", err)
	}
	// Overwrite, then check the directory holds exactly the destination file.
	if err := SaveCatalog(path, c); err != nil {
		t.Fatalf("second SaveCatalog returned an unexpected error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "produtos.txt" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory content after save: %v", names)
	}
}

func TestSaveLoadSalesLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendas.txt")

	l, err := DecodeSalesLedger(strings.NewReader("1 rice 45.00 10 2024-01-01\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveSalesLedger(path, l); err != nil {
		t.Fatalf("SaveSalesLedger returned an unexpected error: %v", err)
	}
	back, err := LoadSalesLedger(path)
	if err != nil {
		t.Fatalf("LoadSalesLedger returned an unexpected error: %v", err)
	}
	records := back.Records()
	if len(records) != 1 || records[0].Day != date.MustParse("2024-01-01") {
		t.Errorf("ledger round-tripped as %+v", records)
	}
}

func TestLoadSalesLedger_MissingFileIsEmpty(t *testing.T) {
	l, err := LoadSalesLedger(filepath.Join(t.TempDir(), "vendas.txt"))
	if err != nil {
		t.Fatalf("LoadSalesLedger on a missing file returned an error: %v", err)
	}
	if len(l.Records()) != 0 {
		t.Errorf("LoadSalesLedger on a missing file returned records")
	}
}
