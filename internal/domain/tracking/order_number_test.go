package tracking_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sitta-api/internal/domain"
	"github.com/jhoicas/sitta-api/internal/domain/tracking"
)

func TestNextOrderNumber_MaximoDelAño(t *testing.T) {
	got, err := tracking.NextOrderNumber([]string{"DO2024-0007", "DO2025-0001", "DO2025-0003"}, 2025)
	require.NoError(t, err)
	assert.Equal(t, "DO2025-0004", got)
}

func TestNextOrderNumber_SinClavesDelAño(t *testing.T) {
	got, err := tracking.NextOrderNumber([]string{"DO2024-0007"}, 2025)
	require.NoError(t, err)
	assert.Equal(t, "DO2025-0001", got)

	got, err = tracking.NextOrderNumber(nil, 2026)
	require.NoError(t, err)
	assert.Equal(t, "DO2026-0001", got)
}

func TestNextOrderNumber_IgnoraClavesMalformadas(t *testing.T) {
	keys := []string{"DO2025-00x9", "XX2025-0050", "DO2025-0002-1", "DO2025-", "DO2025-0002"}
	got, err := tracking.NextOrderNumber(keys, 2025)
	require.NoError(t, err)
	assert.Equal(t, "DO2025-0003", got)
}

func TestNextOrderNumber_SecuenciaAgotada(t *testing.T) {
	_, err := tracking.NextOrderNumber([]string{"DO2025-9999"}, 2025)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSequenceExhausted))
}

func TestNextOrderNumber_Monotono(t *testing.T) {
	keys := []string{}
	for i := 1; i <= 12; i++ {
		next, err := tracking.NextOrderNumber(keys, 2025)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("DO2025-%04d", i), next)
		assert.NotContains(t, keys, next)
		keys = append(keys, next)
	}
}

func TestValidOrderNumber(t *testing.T) {
	assert.True(t, tracking.ValidOrderNumber("DO2025-0001"))
	assert.False(t, tracking.ValidOrderNumber("DO25-1"))
	assert.False(t, tracking.ValidOrderNumber("DO2025-1"))
	assert.False(t, tracking.ValidOrderNumber("do2025-0001"))
	assert.False(t, tracking.ValidOrderNumber(" DO2025-0001"))
}
