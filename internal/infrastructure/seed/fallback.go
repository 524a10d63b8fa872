package seed

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sitta-api/internal/domain/entity"
)

// Datos incorporados cuando no hay archivo de catálogo. No cambiar: los tests de
// compatibilidad dependen de estos valores exactos.
var (
	fallbackRegions = []string{
		"UPBJJ Jakarta",
		"UPBJJ Surabaya",
		"UPBJJ Makassar",
		"UPBJJ Padang",
		"UPBJJ Denpasar",
	}
	fallbackCategories = []string{
		"MK Wajib",
		"MK Pilihan",
		"Praktikum",
		"Problem-Based",
	}
)

// FallbackDemoPassword contraseña del usuario demo del catálogo incorporado.
const FallbackDemoPassword = "sitta2025"

// Fallback devuelve el catálogo incorporado: cuatro filas de stok, cinco UPBJJ y cuatro kategori.
// Las contraseñas quedan en texto plano; Load las hashea.
func Fallback() *entity.Catalog {
	return &entity.Catalog{
		Regions:    append([]string(nil), fallbackRegions...),
		Categories: append([]string(nil), fallbackCategories...),
		Stock: []entity.StockItem{
			{
				Code: "EKMA4116", Title: "Pengantar Manajemen", Category: "MK Wajib",
				Region: "UPBJJ Jakarta", ShelfLocation: "R1-A3",
				Price: decimal.NewFromInt(65000), Quantity: 28, SafetyThreshold: 20,
				NoteHTML: "<em>Edisi 2024</em>",
			},
			{
				Code: "EKMA4115", Title: "Pengantar Akuntansi", Category: "MK Wajib",
				Region: "UPBJJ Jakarta", ShelfLocation: "R1-A4",
				Price: decimal.NewFromInt(60000), Quantity: 7, SafetyThreshold: 15,
				NoteHTML: "<strong>Cetak ulang</strong>",
			},
			{
				Code: "BIOL4201", Title: "Biologi Umum (Praktikum)", Category: "Praktikum",
				Region: "UPBJJ Surabaya", ShelfLocation: "R3-B2",
				Price: decimal.NewFromInt(80000), Quantity: 12, SafetyThreshold: 10,
				NoteHTML: "Butuh <u>vial</u> & kit",
			},
			{
				Code: "FISI4201", Title: "Fisika Dasar", Category: "MK Pilihan",
				Region: "UPBJJ Makassar", ShelfLocation: "R2-C1",
				Price: decimal.NewFromInt(75000), Quantity: 0, SafetyThreshold: 8,
				NoteHTML: "",
			},
		},
		Tracking: map[string]entity.TrackingRecord{},
		Users: []entity.User{
			{Email: "admin@ut.ac.id", DisplayName: "Administrator", PasswordHash: FallbackDemoPassword, Role: entity.RoleAdmin},
		},
	}
}
