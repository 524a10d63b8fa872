package tracking_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sitta-api/internal/domain/entity"
	"github.com/jhoicas/sitta-api/internal/domain/tracking"
	"github.com/jhoicas/sitta-api/internal/domain/validation"
)

var jakarta = time.FixedZone("WIB", 7*3600)

// now a media tarde para comprobar que la hora del día no influye.
var now = time.Date(2025, time.March, 10, 16, 45, 0, 0, jakarta)

var packages = []entity.PackageOffer{
	{Code: "PAKET-UT-001", Name: "PAKET IPS Dasar", Price: decimal.NewFromInt(120000)},
}

func validDOForm() tracking.Form {
	return tracking.Form{
		StudentID:     "123456789",
		RecipientName: "Rina Wulandari",
		Carrier:       "JNE Regular",
		PackageCode:   "PAKET-UT-001",
		ShipDate:      "2025-03-10",
	}
}

func TestValidate_FechaHoyAceptada(t *testing.T) {
	d, fail := tracking.Validate(validDOForm(), now, packages)
	require.Nil(t, fail)
	assert.Equal(t, entity.StatusProcessing, d.Status, "estado por defecto Diproses")
	assert.Equal(t, "PAKET-UT-001", d.Package.Code)
	assert.Equal(t, tracking.Today(now), d.ShipDate)
}

func TestValidate_FechaAyerRechazada(t *testing.T) {
	f := validDOForm()
	f.ShipDate = "2025-03-09"
	_, fail := tracking.Validate(f, now, packages)
	require.NotNil(t, fail)
	assert.Equal(t, validation.GroupDate, fail.Group)
	assert.Equal(t, "Tanggal kirim tidak boleh di masa lalu!", fail.Message)
}

func TestValidate_FechaMalFormada(t *testing.T) {
	f := validDOForm()
	f.ShipDate = "10/03/2025"
	_, fail := tracking.Validate(f, now, packages)
	require.NotNil(t, fail)
	assert.Equal(t, validation.GroupDate, fail.Group)
}

func TestValidate_OrdenDeRequeridos(t *testing.T) {
	f := tracking.Form{}
	_, fail := tracking.Validate(f, now, packages)
	require.NotNil(t, fail)
	assert.Equal(t, "NIM dan Nama harus diisi!", fail.Message)

	f = validDOForm()
	f.Carrier = ""
	f.PackageCode = ""
	_, fail = tracking.Validate(f, now, packages)
	assert.Equal(t, "carrier", fail.Field)

	f = validDOForm()
	f.PackageCode = ""
	_, fail = tracking.Validate(f, now, packages)
	assert.Equal(t, "package_code", fail.Field)

	f = validDOForm()
	f.ShipDate = "  "
	_, fail = tracking.Validate(f, now, packages)
	assert.Equal(t, "ship_date", fail.Field)
	assert.Equal(t, validation.GroupRequired, fail.Group)
}

func TestValidate_NIM(t *testing.T) {
	for _, nim := range []string{"1234567", "12345abc", "NIM12345678"} {
		f := validDOForm()
		f.StudentID = nim
		_, fail := tracking.Validate(f, now, packages)
		require.NotNil(t, fail, nim)
		assert.Equal(t, validation.GroupFormat, fail.Group, nim)
	}
	f := validDOForm()
	f.StudentID = "12345678"
	_, fail := tracking.Validate(f, now, packages)
	assert.Nil(t, fail, "8 dígitos es el mínimo")
}

func TestValidate_PaketDesconocido(t *testing.T) {
	f := validDOForm()
	f.PackageCode = "PAKET-XX"
	_, fail := tracking.Validate(f, now, packages)
	require.NotNil(t, fail)
	assert.Equal(t, validation.GroupReference, fail.Group)
}

func TestValidate_Status(t *testing.T) {
	f := validDOForm()
	f.Status = "dalam perjalanan"
	d, fail := tracking.Validate(f, now, packages)
	require.Nil(t, fail)
	assert.Equal(t, entity.StatusInTransit, d.Status)

	f.Status = "Hilang"
	_, fail = tracking.Validate(f, now, packages)
	require.NotNil(t, fail)
	assert.Equal(t, "status", fail.Field)
}

func TestValidateLookup(t *testing.T) {
	assert.Nil(t, tracking.ValidateLookup("DO2025-0001"))
	assert.Equal(t, validation.GroupRequired, tracking.ValidateLookup("").Group)
	assert.Equal(t, validation.GroupFormat, tracking.ValidateLookup("DO25-1").Group)
}
