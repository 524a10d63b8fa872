package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sitta-api/pkg/logger"
)

func TestNew_JSONConComponente(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	stock := l.Component("stock")
	stock.Info().Str("code", "EKMA4116").Msg("bahan ajar agregado")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "stock", line["component"])
	assert.Equal(t, "EKMA4116", line["code"])
	assert.Equal(t, "info", line["level"])
}

func TestNew_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	l.Info().Msg("no se escribe")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("sí se escribe")
	assert.NotZero(t, buf.Len())
}

func TestNew_NivelDesconocidoEsInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "verbose", Out: &buf})
	l.Debug().Msg("filtrado")
	assert.Zero(t, buf.Len())
	l.Info().Msg("visible")
	assert.NotZero(t, buf.Len())
}
