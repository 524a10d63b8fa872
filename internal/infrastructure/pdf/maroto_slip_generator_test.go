package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sitta-api/internal/domain/entity"
	"github.com/jhoicas/sitta-api/internal/infrastructure/pdf"
)

func TestGenerateSlipPDF(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	rec := &entity.TrackingRecord{
		OrderNumber:   "DO2025-0003",
		StudentID:     "202300123",
		RecipientName: "Dewi Lestari",
		Status:        entity.StatusProcessing,
		Carrier:       "JNE",
		ShipDate:      time.Date(2025, 3, 10, 0, 0, 0, 0, wib),
		PackageLabel:  "PAKET-UT-001 - Paket Manajemen",
		Total:         decimal.NewFromInt(120000),
		Journey: []entity.JourneyEntry{
			{Timestamp: time.Date(2025, 3, 10, 16, 45, 0, 0, wib), Note: "DO dibuat dengan status: Diproses"},
		},
	}

	out, err := pdf.NewMarotoSlipGenerator("").GenerateSlipPDF(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")

	_, err = pdf.NewMarotoSlipGenerator("").GenerateSlipPDF(context.Background(), nil)
	assert.Error(t, err)
}

func TestFormatRupiah(t *testing.T) {
	cases := map[string]decimal.Decimal{
		"Rp 0":         decimal.Zero,
		"Rp 950":       decimal.NewFromInt(950),
		"Rp 120.000":   decimal.NewFromInt(120000),
		"Rp 1.250.000": decimal.NewFromInt(1250000),
		"Rp -65.000":   decimal.NewFromInt(-65000),
		"Rp 65.001":    decimal.RequireFromString("65000.5"),
	}
	for want, in := range cases {
		assert.Equal(t, want, pdf.FormatRupiah(in), in.String())
	}
}
