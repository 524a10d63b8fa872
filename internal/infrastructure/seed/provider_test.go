package seed_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/sitta-api/internal/domain/entity"
	"github.com/jhoicas/sitta-api/internal/infrastructure/seed"
)

func TestFallback_Literal(t *testing.T) {
	c := seed.Fallback()
	assert.Equal(t, []string{"UPBJJ Jakarta", "UPBJJ Surabaya", "UPBJJ Makassar", "UPBJJ Padang", "UPBJJ Denpasar"}, c.Regions)
	assert.Equal(t, []string{"MK Wajib", "MK Pilihan", "Praktikum", "Problem-Based"}, c.Categories)
	require.Len(t, c.Stock, 4)

	codes := []string{}
	for _, it := range c.Stock {
		codes = append(codes, it.Code)
	}
	assert.Equal(t, []string{"EKMA4116", "EKMA4115", "BIOL4201", "FISI4201"}, codes)
	assert.True(t, c.Stock[0].Price.Equal(decimal.NewFromInt(65000)))
	assert.Equal(t, 28, c.Stock[0].Quantity)
	assert.Equal(t, 20, c.Stock[0].SafetyThreshold)
	assert.Empty(t, c.Packages)
	assert.Empty(t, c.Tracking)
	assert.NoError(t, seed.Check(c))
}

func TestLoad_ArchivoInexistenteUsaFallback(t *testing.T) {
	c, src, err := seed.Load(filepath.Join(t.TempDir(), "no-existe.yaml"), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, seed.SourceFallback, src)
	assert.Len(t, c.Stock, 4)
	require.Len(t, c.Users, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.Users[0].PasswordHash), []byte(seed.FallbackDemoPassword)),
		"la contraseña del fallback queda hasheada")
}

func TestLoad_ArchivoDelRepo(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	c, src, err := seed.Load(filepath.Join("..", "..", "..", "data", "catalog.yaml"), loc)
	require.NoError(t, err)
	assert.Equal(t, seed.SourceFile, src)
	assert.Len(t, c.Regions, 5)
	assert.Len(t, c.Packages, 2)
	require.Contains(t, c.Tracking, "DO2025-0001")

	rec := c.Tracking["DO2025-0001"]
	assert.Equal(t, entity.StatusInTransit, rec.Status)
	assert.Equal(t, "2025-08-25", rec.ShipDate.Format("2006-01-02"))
	require.Len(t, rec.Journey, 2)
	assert.Equal(t, 10, rec.Journey[0].Timestamp.Hour())
	assert.NoError(t, seed.Check(c))
}

func TestLoad_ArchivoInvalido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stock: [\n"), 0o600))
	_, _, err := seed.Load(path, time.UTC)
	assert.Error(t, err, "un archivo existente e inválido no cae al fallback")
}

func TestDecode_CampoDesconocido(t *testing.T) {
	_, err := seed.Decode(strings.NewReader("regionz: [a]\n"), time.UTC)
	assert.Error(t, err)
}

func TestCheck_DetectaProblemas(t *testing.T) {
	c := &entity.Catalog{
		Stock: []entity.StockItem{{Code: "EKMA4116"}, {Code: "EKMA4116"}, {Code: "bad"}},
		Packages: []entity.PackageOffer{
			{Code: "P1", Contents: []string{"ZZZZ9999"}},
		},
		Tracking: map[string]entity.TrackingRecord{"DO25-1": {}},
	}
	err := seed.Check(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, seed.ErrInvalidCatalog)
	msg := err.Error()
	assert.Contains(t, msg, "duplicado")
	assert.Contains(t, msg, "formato")
	assert.Contains(t, msg, "ZZZZ9999")
	assert.Contains(t, msg, "DO25-1")
}

func TestCheck_RechazaValoresFueraDeRango(t *testing.T) {
	yml := `stock:
  - code: EKMA4116
    title: Pengantar Manajemen
    price: -1
    quantity: -5
    safety_threshold: -3
tracking:
  DO2025-0001:
    student_id: "123456789"
    recipient_name: Rina
    status: Hilang
`
	c, err := seed.Decode(strings.NewReader(yml), time.UTC)
	require.NoError(t, err)

	err = seed.Check(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, seed.ErrInvalidCatalog)
	msg := err.Error()
	assert.Contains(t, msg, "quantity negativa")
	assert.Contains(t, msg, "safety_threshold negativo")
	assert.Contains(t, msg, "precio negativo")
	assert.Contains(t, msg, `status desconocido "Hilang"`)
}

func TestCheck_EstadoSinDistinguirMayusculas(t *testing.T) {
	yml := `tracking:
  DO2025-0001:
    status: dalam perjalanan
`
	c, err := seed.Decode(strings.NewReader(yml), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInTransit, c.Tracking["DO2025-0001"].Status)
	assert.NoError(t, seed.Check(c))
}
