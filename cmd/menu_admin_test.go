package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ebrandao/mercadinho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeProducts = "1 rice 0 4.50 10\n2 beans 0 7.00 5\n3 coffee 0 15.00 8\n"

// storeFiles sets up a store directory; an empty content leaves the catalog
// file missing, as on first run.
func storeFiles(t *testing.T, catalogContent string) (catalogPath, salesPath string) {
	t.Helper()
	dir := t.TempDir()
	catalogPath = filepath.Join(dir, "produtos.txt")
	salesPath = filepath.Join(dir, "vendas.txt")
	if catalogContent != "" {
		require.NoError(t, os.WriteFile(catalogPath, []byte(catalogContent), 0644))
	}
	return catalogPath, salesPath
}

func TestAdminMenu_CreatePersists(t *testing.T) {
	catalogPath, salesPath := storeFiles(t, "")
	p, _ := scripted("1 rice 0 4,50 10 6")
	require.NoError(t, runAdminMenu(p, catalogPath, salesPath))

	catalog, err := mercadinho.LoadCatalog(catalogPath)
	require.NoError(t, err)
	require.Equal(t, 1, catalog.Len())
	prod, ok := catalog.Get(1)
	require.True(t, ok)
	assert.Equal(t, "rice", prod.Name)
	assert.False(t, prod.ByWeight)
	assert.True(t, prod.Price.Equal(mercadinho.M(4.50)))
	assert.True(t, prod.Stock.Equal(mercadinho.Q(10)))
}

func TestAdminMenu_UpdateKeepsStock(t *testing.T) {
	catalogPath, salesPath := storeFiles(t, threeProducts)
	p, _ := scripted("2 2 beans5kg 1 19,90 6")
	require.NoError(t, runAdminMenu(p, catalogPath, salesPath))

	catalog, err := mercadinho.LoadCatalog(catalogPath)
	require.NoError(t, err)
	prod, ok := catalog.Get(2)
	require.True(t, ok)
	assert.Equal(t, "beans5kg", prod.Name)
	assert.True(t, prod.ByWeight)
	assert.True(t, prod.Price.Equal(mercadinho.M(19.90)))
	assert.True(t, prod.Stock.Equal(mercadinho.Q(5)), "stock must survive an update")
}

func TestAdminMenu_DeleteReindexes(t *testing.T) {
	catalogPath, salesPath := storeFiles(t, threeProducts)
	p, _ := scripted("3 2 yes 6")
	require.NoError(t, runAdminMenu(p, catalogPath, salesPath))

	content, err := os.ReadFile(catalogPath)
	require.NoError(t, err)
	assert.Equal(t, "1 rice 0 4.50 10\n2 coffee 0 15.00 8\n", string(content))
}

func TestAdminMenu_DeleteRepromptsUnknownID(t *testing.T) {
	catalogPath, salesPath := storeFiles(t, threeProducts)
	p, out := scripted("3 9 2 yes 6")
	require.NoError(t, runAdminMenu(p, catalogPath, salesPath))

	assert.Contains(t, out.String(), "Product 9 not found")
	catalog, err := mercadinho.LoadCatalog(catalogPath)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())
}

func TestAdminMenu_DeleteNotConfirmed(t *testing.T) {
	catalogPath, salesPath := storeFiles(t, threeProducts)
	p, out := scripted("3 2 no 6")
	require.NoError(t, runAdminMenu(p, catalogPath, salesPath))

	assert.Contains(t, out.String(), "Deletion canceled")
	content, err := os.ReadFile(catalogPath)
	require.NoError(t, err)
	assert.Equal(t, threeProducts, string(content), "an unconfirmed delete must not touch the file")
}

func TestAdminMenu_StockAdjustNegative(t *testing.T) {
	catalogPath, salesPath := storeFiles(t, threeProducts)
	p, _ := scripted("4 1 -3,5 6")
	require.NoError(t, runAdminMenu(p, catalogPath, salesPath))

	catalog, err := mercadinho.LoadCatalog(catalogPath)
	require.NoError(t, err)
	prod, _ := catalog.Get(1)
	assert.True(t, prod.Stock.Equal(mercadinho.Q(6.5)), "got stock %s", prod.Stock)
}

func TestAdminMenu_HidesMutationsWhenEmpty(t *testing.T) {
	catalogPath, salesPath := storeFiles(t, "")
	p, out := scripted("2 6")
	require.NoError(t, runAdminMenu(p, catalogPath, salesPath))

	assert.NotContains(t, out.String(), "Modify product")
	assert.Contains(t, out.String(), "Invalid option")
}

func TestAdminMenu_Report(t *testing.T) {
	catalogPath, salesPath := storeFiles(t, threeProducts)
	ledger := "1 rice 45.00 10 2024-01-15\n2 beans 14.00 2 2024-02-01\n"
	require.NoError(t, os.WriteFile(salesPath, []byte(ledger), 0644))

	p, out := scripted("5 2024-01-01 2024-01-31 6")
	require.NoError(t, runAdminMenu(p, catalogPath, salesPath))

	assert.Contains(t, out.String(), "rice")
	assert.NotContains(t, out.String(), "beans", "sales outside the range must not show")
}

func TestAdminMenu_ReportRangeSwapped(t *testing.T) {
	catalogPath, salesPath := storeFiles(t, threeProducts)
	require.NoError(t, os.WriteFile(salesPath, []byte("1 rice 45.00 10 2024-01-15\n"), 0644))

	p, out := scripted("5 2024-01-31 2024-01-01 6")
	require.NoError(t, runAdminMenu(p, catalogPath, salesPath))
	assert.Contains(t, out.String(), "rice", "a reversed range still covers its days")
}

func TestAdminMenu_SentinelAtTopLevelIsNoOp(t *testing.T) {
	catalogPath, salesPath := storeFiles(t, threeProducts)
	p, _ := scripted(strings.Join([]string{cancelWord, "6"}, " "))
	require.NoError(t, runAdminMenu(p, catalogPath, salesPath))
}

func TestAdminMenu_EndOfInputExitsCleanly(t *testing.T) {
	catalogPath, salesPath := storeFiles(t, threeProducts)
	p, _ := scripted("")
	require.NoError(t, runAdminMenu(p, catalogPath, salesPath))
}
