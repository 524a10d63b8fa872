package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TrackingStatus estado de un Delivery Order.
type TrackingStatus string

// Estados válidos de un DO (en el orden del ciclo de envío).
const (
	StatusReceived   TrackingStatus = "Diterima"
	StatusProcessing TrackingStatus = "Diproses"
	StatusInTransit  TrackingStatus = "Dalam Perjalanan"
	StatusShipped    TrackingStatus = "Dikirim"
	StatusCompleted  TrackingStatus = "Selesai"
)

// TrackingStatuses lista ordenada de estados válidos.
var TrackingStatuses = []TrackingStatus{
	StatusReceived, StatusProcessing, StatusInTransit, StatusShipped, StatusCompleted,
}

// ParseTrackingStatus acepta el estado sin distinguir mayúsculas.
func ParseTrackingStatus(s string) (TrackingStatus, bool) {
	for _, st := range TrackingStatuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, true
		}
	}
	return "", false
}

// Tone clase visual del badge de estado (info, warning, primary, success, secondary).
func (s TrackingStatus) Tone() string {
	switch s {
	case StatusReceived:
		return "info"
	case StatusProcessing:
		return "warning"
	case StatusInTransit:
		return "primary"
	case StatusShipped, StatusCompleted:
		return "success"
	default:
		return "secondary"
	}
}

// JourneyEntry un evento del timeline de envío.
type JourneyEntry struct {
	Timestamp time.Time
	Note      string
}

// TrackingRecord representa un Delivery Order. OrderNumber es la clave del mapa de tracking.
type TrackingRecord struct {
	OrderNumber   string // DO<año>-<secuencia 4 dígitos>
	StudentID     string // NIM
	RecipientName string
	Status        TrackingStatus
	Carrier       string // ekspedisi
	ShipDate      time.Time // fecha civil (00:00 en la zona configurada)
	PackageLabel  string
	Total         decimal.Decimal
	Journey       []JourneyEntry
}

// Clone devuelve una copia profunda (el slice Journey no se comparte).
func (r TrackingRecord) Clone() TrackingRecord {
	out := r
	out.Journey = append([]JourneyEntry(nil), r.Journey...)
	return out
}
