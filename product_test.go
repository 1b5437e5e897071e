package mercadinho

import (
	"testing"
)

// mustCreate is a test helper to append a product or fail.
func mustCreate(t *testing.T, c *Catalog, name string, byWeight bool, price float64, stock float64) Product {
	t.Helper()
	p, err := c.Create(name, byWeight, M(price), Q(stock))
	if err != nil {
		t.Fatalf("Create(%q) returned an unexpected error: %v", name, err)
	}
	return p
}

// checkDenseIDs verifies the catalog invariant: product i carries id i+1.
func checkDenseIDs(t *testing.T, c *Catalog) {
	t.Helper()
	for i, p := range c.Products() {
		if p.ID != i+1 {
			t.Fatalf("product at position %d has id %d, want %d", i, p.ID, i+1)
		}
	}
}

func TestCreate_AssignsDenseIDs(t *testing.T) {
	c := NewCatalog()
	for i, name := range []string{"rice", "beans", "coffee"} {
		p := mustCreate(t, c, name, false, 1, 10)
		if p.ID != i+1 {
			t.Errorf("Create(%q) assigned id %d, want %d", name, p.ID, i+1)
		}
	}
	checkDenseIDs(t, c)
}

func TestRemove_Reindexes(t *testing.T) {
	c := NewCatalog()
	mustCreate(t, c, "rice", false, 4, 10)
	mustCreate(t, c, "beans", false, 7, 10)
	mustCreate(t, c, "coffee", false, 15, 10)
	mustCreate(t, c, "flour", false, 3, 10)

	if err := c.Remove(2); err != nil {
		t.Fatalf("Remove(2) returned an unexpected error: %v", err)
	}
	checkDenseIDs(t, c)

	// "coffee" moved from id 3 to id 2.
	p, ok := c.Get(2)
	if !ok || p.Name != "coffee" {
		t.Errorf("Get(2) = %+v, want coffee", p)
	}

	// Any sequence of create/remove preserves the invariant.
	if err := c.Remove(1); err != nil {
		t.Fatalf("Remove(1) returned an unexpected error: %v", err)
	}
	mustCreate(t, c, "sugar", false, 5, 10)
	checkDenseIDs(t, c)
}

func TestRemove_NotFound(t *testing.T) {
	c := NewCatalog()
	mustCreate(t, c, "rice", false, 4, 10)
	if err := c.Remove(9); err == nil {
		t.Error("Remove(9) on a one-product catalog did not fail")
	}
}

func TestUpdate_KeepsStock(t *testing.T) {
	c := NewCatalog()
	mustCreate(t, c, "rice", false, 4, 10)

	if err := c.Update(1, "rice5kg", true, M(19.9)); err != nil {
		t.Fatalf("Update returned an unexpected error: %v", err)
	}
	p, _ := c.Get(1)
	if p.Name != "rice5kg" || !p.ByWeight || !p.Price.Equal(M(19.9)) {
		t.Errorf("Update did not apply: %+v", p)
	}
	if !p.Stock.Equal(Q(10)) {
		t.Errorf("Update changed the stock to %s, want 10", p.Stock)
	}
}

func TestAdjustStock_AllowsNegative(t *testing.T) {
	c := NewCatalog()
	mustCreate(t, c, "rice", false, 4, 10)

	got, err := c.AdjustStock(1, Q(-25))
	if err != nil {
		t.Fatalf("AdjustStock returned an unexpected error: %v", err)
	}
	if !got.Equal(Q(-15)) {
		t.Errorf("AdjustStock(-25) left stock at %s, want -15", got)
	}

	if _, err := c.AdjustStock(42, Q(1)); err == nil {
		t.Error("AdjustStock on an unknown id did not fail")
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("café"); err != nil {
		t.Errorf("ValidateName rejected a valid name: %v", err)
	}
	for _, bad := range []string{"", "white rice", "a\tb"} {
		if err := ValidateName(bad); err == nil {
			t.Errorf("ValidateName(%q) did not fail", bad)
		}
	}
}
