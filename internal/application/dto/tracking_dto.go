package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDORequest entrada del formulario "Tambah DO". El nomor DO lo asigna el servidor.
type CreateDORequest struct {
	StudentID     string `json:"student_id"`
	RecipientName string `json:"recipient_name"`
	Carrier       string `json:"carrier"`
	PackageCode   string `json:"package_code"`
	ShipDate      string `json:"ship_date"` // YYYY-MM-DD
	Status        string `json:"status"`
}

// SearchDORequest entrada de la búsqueda por nomor DO.
type SearchDORequest struct {
	OrderNumber string `json:"order_number"`
}

// JourneyEntryResponse un evento del timeline.
type JourneyEntryResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
}

// TrackingRecordResponse un Delivery Order.
type TrackingRecordResponse struct {
	OrderNumber   string                 `json:"order_number"`
	StudentID     string                 `json:"student_id"`
	RecipientName string                 `json:"recipient_name"`
	Status        string                 `json:"status"`
	StatusTone    string                 `json:"status_tone"`
	Carrier       string                 `json:"carrier"`
	ShipDate      string                 `json:"ship_date"`
	PackageLabel  string                 `json:"package"`
	Total         decimal.Decimal        `json:"total"`
	Journey       []JourneyEntryResponse `json:"journey"`
}

// TrackingListResponse lista derivada (nomor DO descendente).
type TrackingListResponse struct {
	Items  []TrackingRecordResponse `json:"items"`
	Count  int                      `json:"count"`
	Alerts []NotificationResponse   `json:"alerts"`
}

// TrackingLookupResponse estado del panel de resultados de búsqueda.
type TrackingLookupResponse struct {
	Search        string                  `json:"search"`
	ShowResults   bool                    `json:"show_results"`
	ShowNoResults bool                    `json:"show_no_results"`
	Selected      *TrackingRecordResponse `json:"selected,omitempty"`
	Alerts        []NotificationResponse  `json:"alerts"`
}

// DOFormResponse valores iniciales del formulario "Tambah DO".
type DOFormResponse struct {
	OrderNumber string          `json:"order_number"`
	ShipDate    string          `json:"ship_date"`
	Status      string          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	Statuses    []string        `json:"statuses"`
	Packages    []PackageResponse `json:"packages"`
}

// PackageResponse un paket de bahan ajar.
type PackageResponse struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Contents []string        `json:"contents"`
}

// PackageContentResponse un bahan ajar del paket con su título resuelto.
type PackageContentResponse struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// PackageSelectionResponse paket elegido en el formulario y el total resultante.
type PackageSelectionResponse struct {
	Package  *PackageResponse         `json:"package"`
	Contents []PackageContentResponse `json:"contents"`
	Total    decimal.Decimal          `json:"total"`
}
