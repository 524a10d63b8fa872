// Package tracking implementa el view-model de la página de tracking de Delivery Orders:
// lista, búsqueda por nomor DO, formulario "Tambah DO" y alertas de la página.
package tracking

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sitta-api/internal/application/dto"
	"github.com/jhoicas/sitta-api/internal/application/notify"
	"github.com/jhoicas/sitta-api/internal/domain"
	"github.com/jhoicas/sitta-api/internal/domain/entity"
	"github.com/jhoicas/sitta-api/internal/domain/repository"
	"github.com/jhoicas/sitta-api/internal/domain/tracking"
)

// ContentNotFound título mostrado para un bahan ajar del paket que no está en stok.
const ContentNotFound = "Tidak ditemukan"

// Deps dependencias del view-model.
type Deps struct {
	Records  repository.TrackingRepository
	Refs     repository.ReferenceRepository
	Stock    repository.StockItemRepository
	Alerts   *notify.Board
	Clock    notify.Clock   // nil = reloj del sistema
	Location *time.Location // zona para "hoy" y el año del nomor DO; nil = UTC
	Log      zerolog.Logger
}

// ViewModel estado de la página de tracking. Las acciones se serializan con mu.
type ViewModel struct {
	mu      sync.Mutex
	records repository.TrackingRepository
	refs    repository.ReferenceRepository
	stock   repository.StockItemRepository
	alerts  *notify.Board
	clock   notify.Clock
	loc     *time.Location
	log     zerolog.Logger

	search        string
	selected      *entity.TrackingRecord
	showResults   bool
	showNoResults bool
}

// NewViewModel construye el view-model con el panel de resultados cerrado.
func NewViewModel(d Deps) *ViewModel {
	if d.Clock == nil {
		d.Clock = notify.SystemClock{}
	}
	if d.Location == nil {
		d.Location = time.UTC
	}
	return &ViewModel{
		records: d.Records,
		refs:    d.Refs,
		stock:   d.Stock,
		alerts:  d.Alerts,
		clock:   d.Clock,
		loc:     d.Location,
		log:     d.Log.With().Str("page", "tracking").Logger(),
	}
}

// List DOs ordenados por nomor DO descendente.
func (vm *ViewModel) List() (*dto.TrackingListResponse, error) {
	all, err := vm.records.All()
	if err != nil {
		return nil, err
	}
	entries := tracking.Derive(all)
	items := make([]dto.TrackingRecordResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, ToRecordResponse(e.Record))
	}
	return &dto.TrackingListResponse{
		Items:  items,
		Count:  len(items),
		Alerts: notify.Responses(vm.alerts.Active()),
	}, nil
}

// Search busca un DO por su nomor. Entrada vacía o mal formada → alerta de página y fallo
// de validación; DO inexistente → alerta "no encontrado" y panel sin resultados (no es error).
func (vm *ViewModel) Search(orderNumber string) (*dto.TrackingLookupResponse, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	q := strings.TrimSpace(orderNumber)
	vm.search = q
	if fail := tracking.ValidateLookup(q); fail != nil {
		vm.log.Warn().Str("op", "tracking.search").Str("order_number", q).Msg(fail.Message)
		vm.alerts.Page().Show(notify.Kind(fail.Severity), fail.Title, fail.Message)
		return nil, fail
	}

	found, err := vm.lookupLocked(q)
	if err != nil {
		return nil, err
	}
	if !found {
		vm.alerts.Warning().Show(notify.KindWarning, notify.NotFoundTitle,
			fmt.Sprintf("Nomor DO %s tidak ditemukan dalam sistem. Silakan periksa kembali nomor DO yang Anda masukkan.", q))
	}
	return vm.lookupStateLocked(), nil
}

// View selecciona un DO desde la tabla, sin alertas.
func (vm *ViewModel) View(orderNumber string) (*dto.TrackingLookupResponse, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.search = orderNumber
	if _, err := vm.lookupLocked(orderNumber); err != nil {
		return nil, err
	}
	return vm.lookupStateLocked(), nil
}

// CloseResults oculta el panel y limpia la búsqueda.
func (vm *ViewModel) CloseResults() *dto.TrackingLookupResponse {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.search = ""
	vm.selected = nil
	vm.showResults = false
	vm.showNoResults = false
	return vm.lookupStateLocked()
}

// Lookup estado actual del panel de resultados.
func (vm *ViewModel) Lookup() *dto.TrackingLookupResponse {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.lookupStateLocked()
}

// PrepareNew valores iniciales del formulario: siguiente nomor DO del año, hoy y Diproses.
func (vm *ViewModel) PrepareNew() (*dto.DOFormResponse, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.alerts.Form().Dismiss()
	now := vm.now()
	next, err := vm.nextOrderNumber(now)
	if err != nil {
		return nil, err
	}
	pkgs, err := vm.refs.Packages()
	if err != nil {
		return nil, err
	}
	out := &dto.DOFormResponse{
		OrderNumber: next,
		ShipDate:    now.Format(tracking.DateLayout),
		Status:      string(entity.StatusProcessing),
		Total:       decimal.Zero,
		Statuses:    make([]string, 0, len(entity.TrackingStatuses)),
		Packages:    make([]dto.PackageResponse, 0, len(pkgs)),
	}
	for _, s := range entity.TrackingStatuses {
		out.Statuses = append(out.Statuses, string(s))
	}
	for _, p := range pkgs {
		out.Packages = append(out.Packages, toPackageResponse(p))
	}
	return out, nil
}

// SelectPackage resuelve el paket elegido: sus bahan ajar (títulos desde stok) y el total.
// Código vacío o desconocido → sin paket y total 0.
func (vm *ViewModel) SelectPackage(code string) (*dto.PackageSelectionResponse, error) {
	out := &dto.PackageSelectionResponse{Contents: []dto.PackageContentResponse{}, Total: decimal.Zero}
	code = strings.TrimSpace(code)
	if code == "" {
		return out, nil
	}
	p, err := vm.refs.GetPackage(code)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return out, nil
	}
	for _, c := range p.Contents {
		title := ContentNotFound
		it, err := vm.stock.GetByCode(c)
		if err != nil {
			return nil, err
		}
		if it != nil {
			title = it.Title
		}
		out.Contents = append(out.Contents, dto.PackageContentResponse{Code: c, Title: title})
	}
	pr := toPackageResponse(*p)
	out.Package = &pr
	out.Total = p.Price
	return out, nil
}

// Create valida el formulario, asigna el siguiente nomor DO y agrega el DO.
// Tras el alta el DO queda seleccionado en el panel de resultados.
func (vm *ViewModel) Create(in dto.CreateDORequest) (*dto.TrackingLookupResponse, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.alerts.Form().Dismiss()
	err := vm.alerts.Guard(vm.log, "tracking.create", "", func() error {
		now := vm.now()
		pkgs, err := vm.refs.Packages()
		if err != nil {
			return err
		}
		draft, fail := tracking.Validate(tracking.Form{
			StudentID:     in.StudentID,
			RecipientName: in.RecipientName,
			Carrier:       in.Carrier,
			PackageCode:   in.PackageCode,
			ShipDate:      in.ShipDate,
			Status:        in.Status,
		}, now, pkgs)
		if fail != nil {
			return fail
		}

		orderNumber, err := vm.nextOrderNumber(now)
		if err != nil {
			return err
		}
		existing, err := vm.records.Get(orderNumber)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("DO %s: %w", orderNumber, domain.ErrDuplicate)
		}

		rec := entity.TrackingRecord{
			OrderNumber:   orderNumber,
			StudentID:     draft.StudentID,
			RecipientName: draft.RecipientName,
			Status:        draft.Status,
			Carrier:       draft.Carrier,
			ShipDate:      draft.ShipDate,
			PackageLabel:  draft.Package.Label(),
			Total:         draft.Package.Price,
			Journey: []entity.JourneyEntry{
				{Timestamp: now, Note: "DO dibuat dengan status: " + string(draft.Status)},
			},
		}
		if err := vm.records.Create(&rec); err != nil {
			return err
		}
		vm.log.Info().Str("order_number", orderNumber).Str("status", string(rec.Status)).Msg("DO creado")

		vm.alerts.Success().Show(notify.KindSuccess, "Berhasil!",
			fmt.Sprintf("Delivery Order %s berhasil ditambahkan dan siap untuk pengiriman.", orderNumber))
		vm.search = orderNumber
		vm.selected = &rec
		vm.showResults = true
		vm.showNoResults = false
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vm.lookupStateLocked(), nil
}

// Record devuelve un DO (comprobante PDF).
func (vm *ViewModel) Record(orderNumber string) (*entity.TrackingRecord, error) {
	rec, err := vm.records.Get(orderNumber)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("DO %s: %w", orderNumber, domain.ErrNotFound)
	}
	return rec, nil
}

// Alerts alertas visibles de la página.
func (vm *ViewModel) Alerts() []dto.NotificationResponse {
	return notify.Responses(vm.alerts.Active())
}

// Dismiss oculta un canal de alertas.
func (vm *ViewModel) Dismiss(channel string) error {
	return vm.alerts.Dismiss(channel)
}

func (vm *ViewModel) now() time.Time {
	return vm.clock.Now().In(vm.loc)
}

func (vm *ViewModel) nextOrderNumber(now time.Time) (string, error) {
	keys, err := vm.records.OrderNumbers()
	if err != nil {
		return "", err
	}
	return tracking.NextOrderNumber(keys, now.Year())
}

// lookupLocked abre el panel con el DO o con "sin resultados".
func (vm *ViewModel) lookupLocked(orderNumber string) (bool, error) {
	rec, err := vm.records.Get(orderNumber)
	if err != nil {
		return false, err
	}
	vm.selected = rec
	vm.showResults = rec != nil
	vm.showNoResults = rec == nil
	return rec != nil, nil
}

func (vm *ViewModel) lookupStateLocked() *dto.TrackingLookupResponse {
	out := &dto.TrackingLookupResponse{
		Search:        vm.search,
		ShowResults:   vm.showResults,
		ShowNoResults: vm.showNoResults,
		Alerts:        notify.Responses(vm.alerts.Active()),
	}
	if vm.selected != nil {
		r := ToRecordResponse(*vm.selected)
		out.Selected = &r
	}
	return out
}

// ToRecordResponse convierte un DO al DTO de salida.
func ToRecordResponse(r entity.TrackingRecord) dto.TrackingRecordResponse {
	journey := make([]dto.JourneyEntryResponse, 0, len(r.Journey))
	for _, j := range r.Journey {
		journey = append(journey, dto.JourneyEntryResponse{Timestamp: j.Timestamp, Note: j.Note})
	}
	return dto.TrackingRecordResponse{
		OrderNumber:   r.OrderNumber,
		StudentID:     r.StudentID,
		RecipientName: r.RecipientName,
		Status:        string(r.Status),
		StatusTone:    r.Status.Tone(),
		Carrier:       r.Carrier,
		ShipDate:      r.ShipDate.Format(tracking.DateLayout),
		PackageLabel:  r.PackageLabel,
		Total:         r.Total,
		Journey:       journey,
	}
}

func toPackageResponse(p entity.PackageOffer) dto.PackageResponse {
	return dto.PackageResponse{
		Code:     p.Code,
		Name:     p.Name,
		Price:    p.Price,
		Contents: append([]string{}, p.Contents...),
	}
}
