package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sitta-api/internal/domain"
	"github.com/jhoicas/sitta-api/internal/domain/entity"
	"github.com/jhoicas/sitta-api/internal/infrastructure/memory"
)

func newStore() *memory.Store {
	return memory.NewStore(&entity.Catalog{
		Regions:    []string{"Jakarta"},
		Categories: []string{"MK Wajib"},
		Stock: []entity.StockItem{
			{Code: "AAAA0001", Title: "Satu"},
			{Code: "AAAA0002", Title: "Dua"},
			{Code: "AAAA0003", Title: "Tiga"},
		},
		Packages: []entity.PackageOffer{
			{Code: "PAKET-1", Name: "Paket", Price: decimal.NewFromInt(10), Contents: []string{"AAAA0001"}},
		},
		Tracking: map[string]entity.TrackingRecord{
			"DO2025-0001": {RecipientName: "Rina", Journey: []entity.JourneyEntry{{Note: "dibuat"}}},
		},
		Users: []entity.User{{Email: "Admin@UT.ac.id", DisplayName: "Admin"}},
	})
}

func TestStockItemRepo_CRUD(t *testing.T) {
	repo := newStore().StockItems()

	require.NoError(t, repo.Create(&entity.StockItem{Code: "AAAA0004"}))
	err := repo.Create(&entity.StockItem{Code: "AAAA0001"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	require.NoError(t, repo.Update("AAAA0002", &entity.StockItem{Code: "BBBB0002", Title: "Dua'"}))
	list, _ := repo.List()
	assert.Equal(t, "BBBB0002", list[1].Code, "la edición conserva la posición")

	assert.ErrorIs(t, repo.Update("AAAA0001", &entity.StockItem{Code: "AAAA0003"}), domain.ErrDuplicate)
	assert.ErrorIs(t, repo.Update("ZZZZ0000", &entity.StockItem{Code: "ZZZZ0000"}), domain.ErrNotFound)

	require.NoError(t, repo.Delete("AAAA0001"))
	assert.ErrorIs(t, repo.Delete("AAAA0001"), domain.ErrNotFound)

	list, _ = repo.List()
	codes := []string{}
	for _, it := range list {
		codes = append(codes, it.Code)
	}
	assert.Equal(t, []string{"BBBB0002", "AAAA0003", "AAAA0004"}, codes)

	missing, err := repo.GetByCode("AAAA0001")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStockItemRepo_ListEsCopia(t *testing.T) {
	repo := newStore().StockItems()
	list, _ := repo.List()
	list[0].Title = "mutado"
	again, _ := repo.List()
	assert.Equal(t, "Satu", again[0].Title)
}

func TestTrackingRepo_SoloAgrega(t *testing.T) {
	store := newStore()
	repo := store.Tracking()

	rec, err := repo.Get("DO2025-0001")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "DO2025-0001", rec.OrderNumber, "la clave se copia al registro")

	rec.Journey[0].Note = "mutado"
	again, _ := repo.Get("DO2025-0001")
	assert.Equal(t, "dibuat", again.Journey[0].Note, "Journey no se comparte")

	err = repo.Create(&entity.TrackingRecord{OrderNumber: "DO2025-0001", RecipientName: "otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	require.NoError(t, repo.Create(&entity.TrackingRecord{OrderNumber: "DO2025-0002"}))
	keys, _ := repo.OrderNumbers()
	assert.ElementsMatch(t, []string{"DO2025-0001", "DO2025-0002"}, keys)
}

func TestStore_VisibleEntrePaginas(t *testing.T) {
	store := newStore()
	require.NoError(t, store.StockItems().Create(&entity.StockItem{Code: "CCCC0001"}))
	snap := store.Snapshot()
	assert.Len(t, snap.Stock, 4)
	assert.Len(t, snap.Tracking, 1)
}

func TestReferenciasYUsuarios(t *testing.T) {
	store := newStore()
	ref := store.Reference()
	assert.Equal(t, []string{"Jakarta"}, ref.Regions())
	p, err := ref.GetPackage("PAKET-1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, []string{"AAAA0001"}, p.Contents)
	none, _ := ref.GetPackage("X")
	assert.Nil(t, none)

	u, err := store.Users().FindByEmail(" admin@ut.ac.id ")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Admin", u.DisplayName)
}
