// Package pdf genera el comprobante (surat jalan) de un Delivery Order.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: SITTA + UT     │  N° DO + Tgl Kirim   │
//	│  ───────────────────────────────────────────  │
//	│  PENERIMA: Nama + NIM + Ekspedisi + Status     │
//	│  ───────────────────────────────────────────  │
//	│  PAKET: label            │  TOTAL              │
//	│  ───────────────────────────────────────────  │
//	│  PERJALANAN: Waktu | Keterangan                │
//	│  ───────────────────────────────────────────  │
//	│  FOOTER: QR del N° DO                          │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sitta-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 51, Blue: 153}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSlipGenerator genera el surat jalan de un DO usando Maroto v2.
type MarotoSlipGenerator struct {
	issuer string
}

// NewMarotoSlipGenerator construye el generador. issuer aparece en el header y como autor.
func NewMarotoSlipGenerator(issuer string) *MarotoSlipGenerator {
	return &MarotoSlipGenerator{issuer: nonEmpty(issuer, "SITTA - Universitas Terbuka")}
}

// GenerateSlipPDF genera el PDF y devuelve sus bytes.
func (g *MarotoSlipGenerator) GenerateSlipPDF(_ context.Context, rec *entity.TrackingRecord) ([]byte, error) {
	if rec == nil {
		return nil, fmt.Errorf("pdf: DO nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Surat Jalan "+rec.OrderNumber, true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.issuer, rec))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(recipientRow(rec))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(packageRow(rec))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(journeyHeaderRow())
	for _, r := range journeyRows(rec.Journey) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(rec))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: emisor (izq) y N° DO + tanggal kirim (der).
func headerRow(issuer string, rec *entity.TrackingRecord) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(issuer, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1,
			}),
			text.New("Sistem Informasi Tiras dan Transaksi Bahan Ajar", props.Text{
				Size: 7, Top: 8, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SURAT JALAN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(rec.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6,
			}),
			text.New("Tgl Kirim: "+rec.ShipDate.Format("02/01/2006"), props.Text{
				Size: 7, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// recipientRow: mahasiswa penerima y datos de envío.
func recipientRow(rec *entity.TrackingRecord) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("PENERIMA", props.Text{
				Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1,
			}),
			text.New(rec.RecipientName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 5,
			}),
			text.New(fmt.Sprintf("NIM: %s   |   Ekspedisi: %s   |   Status: %s",
				rec.StudentID,
				nonEmpty(rec.Carrier, "-"),
				nonEmpty(string(rec.Status), "-"),
			), props.Text{Size: 7, Top: 11, Color: colorGray}),
		),
	)
}

// packageRow: paket enviado y total.
func packageRow(rec *entity.TrackingRecord) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("PAKET BAHAN AJAR", props.Text{
				Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(rec.PackageLabel, "-"), props.Text{Size: 8, Top: 6}),
		),
		col.New(4).Add(
			text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(FormatRupiah(rec.Total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 5,
			}),
		),
	)
}

func journeyHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1.5, Left: 1,
		}))
	}
	return row.New(6).Add(
		h("Waktu", 4),
		h("Keterangan", 8),
	)
}

// journeyRows: una fila por evento del timeline, en orden de registro.
func journeyRows(journey []entity.JourneyEntry) []core.Row {
	if len(journey) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Belum ada perjalanan.", props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray}),
		))}
	}
	out := make([]core.Row, 0, len(journey))
	for _, j := range journey {
		out = append(out, row.New(6).Add(
			col.New(4).Add(text.New(j.Timestamp.Format("02/01/2006 15:04"), props.Text{Size: 7, Top: 1, Left: 1})),
			col.New(8).Add(text.New(j.Note, props.Text{Size: 7, Top: 1, Left: 1})),
		))
	}
	return out
}

// footerRow: QR con el N° DO para la búsqueda de tracking.
func footerRow(rec *entity.TrackingRecord) core.Row {
	return row.New(30).Add(
		col.New(4).Add(code.NewQr(rec.OrderNumber, props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(
			text.New("Lacak pengiriman dengan nomor DO di halaman Tracking SITTA.", props.Text{
				Size: 7, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New(rec.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 14, Left: 3, Color: colorPrimary,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// FormatRupiah formatea un monto sin decimales con puntos de miles.
// Ej: 120000 → "Rp 120.000"
func FormatRupiah(d decimal.Decimal) string {
	s := d.StringFixed(0)
	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign, s = "-", s[1:]
	}
	return "Rp " + sign + formatThousands(s)
}

// formatThousands inserta puntos de miles en un string numérico sin decimales.
func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
