package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sitta-api/pkg/jwt"
)

func TestGenerateYParse(t *testing.T) {
	token, err := jwt.Generate("secreto", "sitta-api", "admin@ut.ac.id", "Administrator", "admin", 60)
	require.NoError(t, err)

	claims, err := jwt.Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, "admin@ut.ac.id", claims.Email)
	assert.Equal(t, "admin@ut.ac.id", claims.Subject)
	assert.Equal(t, "Administrator", claims.DisplayName)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "sitta-api", claims.Issuer)
}

func TestParse_Rechaza(t *testing.T) {
	token, err := jwt.Generate("secreto", "sitta-api", "a@ut.ac.id", "A", "operator", 60)
	require.NoError(t, err)

	_, err = jwt.Parse("otro", token)
	assert.Error(t, err, "firma incorrecta")

	expired, err := jwt.Generate("secreto", "sitta-api", "a@ut.ac.id", "A", "operator", -1)
	require.NoError(t, err)
	_, err = jwt.Parse("secreto", expired)
	assert.Error(t, err, "token expirado")

	_, err = jwt.Generate("", "sitta-api", "a@ut.ac.id", "A", "operator", 60)
	assert.Error(t, err)
}
