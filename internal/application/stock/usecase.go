// Package stock implementa el view-model de la página de stok bahan ajar:
// criterios de la tabla, alta/edición/borrado y alertas de la página.
package stock

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/sitta-api/internal/application/dto"
	"github.com/jhoicas/sitta-api/internal/application/notify"
	"github.com/jhoicas/sitta-api/internal/domain"
	"github.com/jhoicas/sitta-api/internal/domain/entity"
	"github.com/jhoicas/sitta-api/internal/domain/repository"
	"github.com/jhoicas/sitta-api/internal/domain/stock"
	"github.com/jhoicas/sitta-api/internal/domain/validation"
)

const successTitle = "Berhasil!"

// ViewModel estado de la página de stok. Las acciones se serializan con mu.
type ViewModel struct {
	mu       sync.Mutex
	items    repository.StockItemRepository
	refs     repository.ReferenceRepository
	alerts   *notify.Board
	profile  stock.Profile
	criteria stock.Criteria
	log      zerolog.Logger
}

// NewViewModel construye el view-model sin filtros activos.
func NewViewModel(
	items repository.StockItemRepository,
	refs repository.ReferenceRepository,
	alerts *notify.Board,
	profile stock.Profile,
	log zerolog.Logger,
) *ViewModel {
	return &ViewModel{
		items:   items,
		refs:    refs,
		alerts:  alerts,
		profile: profile,
		log:     log.With().Str("page", "stok").Logger(),
	}
}

// View devuelve la proyección derivada con los criterios actuales.
func (vm *ViewModel) View() (*dto.StockViewResponse, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.viewLocked()
}

// SetCriteria reemplaza los criterios y devuelve la nueva proyección.
// Un orden desconocido devuelve domain.ErrInvalidInput y no cambia nada.
func (vm *ViewModel) SetCriteria(in dto.StockCriteriaRequest) (*dto.StockViewResponse, error) {
	c := stock.Criteria{
		Query:    in.Query,
		Category: in.Category,
		Region:   in.Region,
		Sort:     stock.SortKey(in.Sort),
	}
	if !c.Sort.Valid() {
		return nil, fmt.Errorf("orden %q: %w", in.Sort, domain.ErrInvalidInput)
	}
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.criteria = c
	return vm.viewLocked()
}

// Rows proyección derivada sin alertas (exportación).
func (vm *ViewModel) Rows() ([]dto.StockRowResponse, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	items, err := vm.items.List()
	if err != nil {
		return nil, err
	}
	return vm.rows(stock.Derive(items, vm.criteria)), nil
}

// Options valores para los selects de la página.
func (vm *ViewModel) Options() *dto.StockOptionsResponse {
	keys := make([]string, 0, len(stock.SortKeys))
	for _, k := range stock.SortKeys {
		keys = append(keys, string(k))
	}
	return &dto.StockOptionsResponse{
		Regions:    vm.refs.Regions(),
		Categories: vm.refs.Categories(),
		SortKeys:   keys,
		Profile:    vm.profile.Name,
	}
}

// Get devuelve un ítem para precargar el formulario de edición.
func (vm *ViewModel) Get(code string) (*dto.StockRowResponse, error) {
	it, err := vm.items.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, fmt.Errorf("bahan ajar %s: %w", code, domain.ErrNotFound)
	}
	row := vm.row(*it)
	return &row, nil
}

// Add valida y agrega un ítem al final de la colección.
func (vm *ViewModel) Add(in dto.StockItemRequest) (*dto.StockRowResponse, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	var row dto.StockRowResponse
	err := vm.alerts.Guard(vm.log, "stock.add", "", func() error {
		f := formFrom(in)
		existing, err := vm.items.List()
		if err != nil {
			return err
		}
		if fail := stock.Validate(f, existing, "", vm.lists()); fail != nil {
			return fail
		}
		item := f.Item()
		if err := vm.items.Create(&item); err != nil {
			return duplicateAsFailure(err)
		}
		vm.log.Info().Str("code", item.Code).Msg("bahan ajar agregado")
		vm.alerts.Form().Dismiss()
		vm.alerts.Page().Show(notify.KindSuccess, successTitle, "Stok bahan ajar berhasil ditambahkan!")
		row = vm.row(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Edit reemplaza el ítem originalCode en su posición. El código puede cambiar
// mientras no choque con otro ítem.
func (vm *ViewModel) Edit(originalCode string, in dto.StockItemRequest) (*dto.StockRowResponse, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	var row dto.StockRowResponse
	err := vm.alerts.Guard(vm.log, "stock.edit", notFoundMessage(originalCode), func() error {
		current, err := vm.items.GetByCode(originalCode)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("bahan ajar %s: %w", originalCode, domain.ErrNotFound)
		}
		f := formFrom(in)
		existing, err := vm.items.List()
		if err != nil {
			return err
		}
		if fail := stock.Validate(f, existing, originalCode, vm.lists()); fail != nil {
			return fail
		}
		item := f.Item()
		if err := vm.items.Update(originalCode, &item); err != nil {
			return duplicateAsFailure(err)
		}
		vm.log.Info().Str("code", item.Code).Str("original_code", originalCode).Msg("bahan ajar actualizado")
		vm.alerts.Form().Dismiss()
		vm.alerts.Page().Show(notify.KindSuccess, successTitle, "Stok bahan ajar berhasil diupdate!")
		row = vm.row(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete elimina el ítem con code.
func (vm *ViewModel) Delete(code string) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	return vm.alerts.Guard(vm.log, "stock.delete", notFoundMessage(code), func() error {
		if err := vm.items.Delete(code); err != nil {
			return err
		}
		vm.log.Info().Str("code", code).Msg("bahan ajar eliminado")
		vm.alerts.Page().Show(notify.KindSuccess, successTitle, "Stok bahan ajar berhasil dihapus!")
		return nil
	})
}

// Summary cuenta los ítems de toda la colección por estado.
func (vm *ViewModel) Summary() (*dto.StockSummaryResponse, error) {
	items, err := vm.items.List()
	if err != nil {
		return nil, err
	}
	out := &dto.StockSummaryResponse{
		Total: len(items),
		ByStatus: map[string]int{
			string(stock.StatusOutOfStock): 0,
			string(stock.StatusLow):        0,
			string(stock.StatusAvailable):  0,
		},
	}
	if vm.profile.HighCutoff > 0 {
		out.ByStatus[string(stock.StatusHigh)] = 0
	}
	for _, it := range items {
		out.ByStatus[string(stock.Classify(it.Quantity, it.SafetyThreshold, vm.profile))]++
	}
	return out, nil
}

// Alerts alertas visibles de la página.
func (vm *ViewModel) Alerts() []dto.NotificationResponse {
	return notify.Responses(vm.alerts.Active())
}

// Dismiss oculta un canal de alertas.
func (vm *ViewModel) Dismiss(channel string) error {
	return vm.alerts.Dismiss(channel)
}

func (vm *ViewModel) viewLocked() (*dto.StockViewResponse, error) {
	items, err := vm.items.List()
	if err != nil {
		return nil, err
	}
	rows := vm.rows(stock.Derive(items, vm.criteria))
	return &dto.StockViewResponse{
		Criteria: dto.StockCriteriaRequest{
			Query:    vm.criteria.Query,
			Category: vm.criteria.Category,
			Region:   vm.criteria.Region,
			Sort:     string(vm.criteria.Sort),
		},
		Items:  rows,
		Count:  len(rows),
		Total:  len(items),
		Alerts: notify.Responses(vm.alerts.Active()),
	}, nil
}

func (vm *ViewModel) lists() stock.Lists {
	return stock.Lists{Categories: vm.refs.Categories(), Regions: vm.refs.Regions()}
}

func (vm *ViewModel) rows(items []entity.StockItem) []dto.StockRowResponse {
	out := make([]dto.StockRowResponse, 0, len(items))
	for _, it := range items {
		out = append(out, vm.row(it))
	}
	return out
}

func (vm *ViewModel) row(it entity.StockItem) dto.StockRowResponse {
	st := stock.Classify(it.Quantity, it.SafetyThreshold, vm.profile)
	return dto.StockRowResponse{
		Code:            it.Code,
		Title:           it.Title,
		Category:        it.Category,
		Region:          it.Region,
		ShelfLocation:   it.ShelfLocation,
		Price:           it.Price,
		Quantity:        it.Quantity,
		SafetyThreshold: it.SafetyThreshold,
		NoteHTML:        it.NoteHTML,
		Status:          string(st),
		StatusLabel:     st.Label(),
		StatusTone:      st.Tone(),
	}
}

func formFrom(in dto.StockItemRequest) stock.Form {
	return stock.Form{
		Code:            in.Code,
		Title:           in.Title,
		Category:        in.Category,
		Region:          in.Region,
		ShelfLocation:   in.ShelfLocation,
		Price:           in.Price,
		Quantity:        in.Quantity,
		SafetyThreshold: in.SafetyThreshold,
		NoteHTML:        in.NoteHTML,
	}.Normalize()
}

// duplicateAsFailure traduce la colisión detectada por el almacén al mismo fallo de unicidad del formulario.
func duplicateAsFailure(err error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return validation.Warn(validation.GroupUniqueness, "code", "Kode Duplikat!", "Kode barang sudah ada dalam sistem!")
	}
	return err
}

func notFoundMessage(code string) string {
	return "Bahan ajar dengan kode " + code + " tidak ditemukan!"
}
