package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sitta-api/internal/domain/stock"
)

func TestClassify_SafetyStock(t *testing.T) {
	p := stock.ProfileSafetyStock
	assert.Equal(t, stock.StatusOutOfStock, stock.Classify(0, 20, p))
	assert.Equal(t, stock.StatusLow, stock.Classify(1, 20, p))
	assert.Equal(t, stock.StatusLow, stock.Classify(19, 20, p))
	assert.Equal(t, stock.StatusAvailable, stock.Classify(20, 20, p), "igual al umbral no es bajo")
	assert.Equal(t, stock.StatusAvailable, stock.Classify(25, 20, p))
	assert.Equal(t, stock.StatusAvailable, stock.Classify(1000, 20, p), "sin nivel alto en este perfil")
}

func TestClassify_Catalog(t *testing.T) {
	p := stock.ProfileCatalog
	assert.Equal(t, stock.StatusOutOfStock, stock.Classify(0, 999, p))
	assert.Equal(t, stock.StatusLow, stock.Classify(stock.LowStockCutoff, 0, p), "el corte de 50 es inclusivo")
	assert.Equal(t, stock.StatusAvailable, stock.Classify(stock.LowStockCutoff+1, 0, p))
	assert.Equal(t, stock.StatusAvailable, stock.Classify(stock.HighStockCutoff, 0, p))
	assert.Equal(t, stock.StatusHigh, stock.Classify(stock.HighStockCutoff+1, 0, p))
}

func TestClassify_Compact(t *testing.T) {
	p := stock.ProfileCompact
	assert.Equal(t, stock.StatusLow, stock.Classify(stock.CompactLowStockCutoff, 0, p))
	assert.Equal(t, stock.StatusAvailable, stock.Classify(stock.CompactLowStockCutoff+1, 0, p))
	assert.Equal(t, stock.StatusAvailable, stock.Classify(500, 0, p))
}

func TestProfileByName(t *testing.T) {
	p, err := stock.ProfileByName("")
	require.NoError(t, err)
	assert.Equal(t, stock.ProfileSafetyStock, p, "vacío usa el perfil por defecto")

	p, err = stock.ProfileByName("catalog")
	require.NoError(t, err)
	assert.Equal(t, stock.ProfileCatalog, p)

	_, err = stock.ProfileByName("otro")
	assert.Error(t, err)
}

func TestStatus_LabelYTone(t *testing.T) {
	assert.Equal(t, "Habis", stock.StatusOutOfStock.Label())
	assert.Equal(t, "danger", stock.StatusOutOfStock.Tone())
	assert.Equal(t, "Stok Rendah", stock.StatusLow.Label())
	assert.Equal(t, "Stok Tinggi", stock.StatusHigh.Label())
	assert.Equal(t, "success", stock.StatusAvailable.Tone())
}
