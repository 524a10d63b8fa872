package stock_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/sitta-api/internal/domain/entity"
	"github.com/jhoicas/sitta-api/internal/domain/stock"
)

func sampleItems() []entity.StockItem {
	return []entity.StockItem{
		{Code: "EKMA4116", Title: "Pengantar Manajemen", Category: "MK Wajib", Region: "Jakarta", Price: decimal.NewFromInt(65000), Quantity: 28},
		{Code: "EKMA4115", Title: "Pengantar Akuntansi", Category: "MK Wajib", Region: "Jakarta", Price: decimal.NewFromInt(60000), Quantity: 7},
		{Code: "BIOL4201", Title: "biologi Umum", Category: "Praktikum", Region: "Surabaya", Price: decimal.NewFromInt(80000), Quantity: 12},
		{Code: "FISI4201", Title: "Fisika Dasar", Category: "MK Pilihan", Region: "Makassar", Price: decimal.NewFromInt(75000), Quantity: 2},
	}
}

func codes(items []entity.StockItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Code)
	}
	return out
}

func TestDerive_SinCriteriosMantieneOrden(t *testing.T) {
	items := sampleItems()
	got := stock.Derive(items, stock.Criteria{})
	if diff := cmp.Diff(codes(items), codes(got)); diff != "" {
		t.Fatalf("orden de inserción alterado (-want +got):\n%s", diff)
	}
	assert.Len(t, got, len(items))
}

func TestDerive_NoModificaColeccion(t *testing.T) {
	items := sampleItems()
	before := codes(items)
	_ = stock.Derive(items, stock.Criteria{Sort: stock.SortQuantityAsc})
	assert.Equal(t, before, codes(items))
}

func TestDerive_TextoSinMayusculas(t *testing.T) {
	items := sampleItems()
	contiene := func(it entity.StockItem, lq string) bool {
		return strings.Contains(strings.ToLower(it.Code), lq) || strings.Contains(strings.ToLower(it.Title), lq)
	}
	for _, q := range []string{"pengantar", "EKMA", "ekma4115", "BIOLOGI", "zzz", "42"} {
		got := stock.Derive(items, stock.Criteria{Query: q})
		lq := strings.ToLower(q)
		in := map[string]bool{}
		for _, it := range got {
			in[it.Code] = true
			assert.True(t, contiene(it, lq), "%s no contiene %q", it.Code, q)
		}
		for _, it := range items {
			if !in[it.Code] {
				assert.False(t, contiene(it, lq), "%s debió incluirse para %q", it.Code, q)
			}
		}
	}

	got := stock.Derive(items, stock.Criteria{Query: "PENGANTAR"})
	assert.Equal(t, []string{"EKMA4116", "EKMA4115"}, codes(got))
	got = stock.Derive(items, stock.Criteria{Query: "4201"})
	assert.Equal(t, []string{"BIOL4201", "FISI4201"}, codes(got))
}

func TestDerive_FiltrosKategoriYUPBJJ(t *testing.T) {
	items := sampleItems()
	got := stock.Derive(items, stock.Criteria{Category: "MK Wajib"})
	assert.Equal(t, []string{"EKMA4116", "EKMA4115"}, codes(got))

	got = stock.Derive(items, stock.Criteria{Category: "MK Wajib", Region: "Surabaya"})
	assert.Empty(t, got)

	got = stock.Derive(items, stock.Criteria{Query: "4201", Region: "Makassar"})
	assert.Equal(t, []string{"FISI4201"}, codes(got))
}

func TestDerive_OrdenTitulo(t *testing.T) {
	items := sampleItems()
	asc := stock.Derive(items, stock.Criteria{Sort: stock.SortTitleAsc})
	assert.Equal(t, []string{"BIOL4201", "FISI4201", "EKMA4115", "EKMA4116"}, codes(asc),
		"la collation ignora la minúscula inicial de 'biologi'")

	desc := stock.Derive(items, stock.Criteria{Sort: stock.SortTitleDesc})
	reversed := codes(asc)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	assert.Equal(t, reversed, codes(desc), "sin empates desc es exactamente asc invertido")
}

func TestDerive_OrdenNumerico(t *testing.T) {
	items := sampleItems()
	assert.Equal(t, []string{"FISI4201", "EKMA4115", "BIOL4201", "EKMA4116"},
		codes(stock.Derive(items, stock.Criteria{Sort: stock.SortQuantityAsc})))
	assert.Equal(t, []string{"EKMA4116", "BIOL4201", "EKMA4115", "FISI4201"},
		codes(stock.Derive(items, stock.Criteria{Sort: stock.SortQuantityDesc})))
	assert.Equal(t, []string{"EKMA4115", "EKMA4116", "FISI4201", "BIOL4201"},
		codes(stock.Derive(items, stock.Criteria{Sort: stock.SortPriceAsc})))
	assert.Equal(t, []string{"BIOL4201", "FISI4201", "EKMA4116", "EKMA4115"},
		codes(stock.Derive(items, stock.Criteria{Sort: stock.SortPriceDesc})))
}

func TestDerive_OrdenEstableEnEmpates(t *testing.T) {
	items := []entity.StockItem{
		{Code: "AAAA0001", Quantity: 5},
		{Code: "AAAA0002", Quantity: 1},
		{Code: "AAAA0003", Quantity: 5},
	}
	got := stock.Derive(items, stock.Criteria{Sort: stock.SortQuantityDesc})
	assert.Equal(t, []string{"AAAA0001", "AAAA0003", "AAAA0002"}, codes(got))
}

func TestSortKey_Valido(t *testing.T) {
	assert.True(t, stock.SortNone.Valid())
	assert.True(t, stock.SortPriceDesc.Valid())
	assert.False(t, stock.SortKey("stock-asc").Valid())
}
