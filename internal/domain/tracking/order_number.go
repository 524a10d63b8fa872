// Package tracking contiene la lógica pura de la página de tracking de Delivery Orders:
// generación del nomor DO, derivación de la lista y validación del formulario.
package tracking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jhoicas/sitta-api/internal/domain"
)

// MaxSequence último número de secuencia representable con 4 dígitos.
const MaxSequence = 9999

var orderNumberPattern = regexp.MustCompile(`^DO\d{4}-\d{4}$`)

// ValidOrderNumber informa si s tiene el formato DO<aaaa>-<nnnn>.
func ValidOrderNumber(s string) bool {
	return orderNumberPattern.MatchString(s)
}

// OrderPrefix prefijo "DO<año>-".
func OrderPrefix(year int) string {
	return fmt.Sprintf("DO%04d-", year)
}

// NextOrderNumber calcula el siguiente nomor DO del año: máximo sufijo entre las claves
// del año + 1 (0 si no hay). Claves con otro prefijo o sufijo no numérico se ignoran.
// No verifica colisiones: quien crea el DO debe rechazar duplicados.
func NextOrderNumber(keys []string, year int) (string, error) {
	prefix := OrderPrefix(year)
	maxSeq := 0
	for _, k := range keys {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		parts := strings.Split(k, "-")
		if len(parts) != 2 {
			continue
		}
		seq, err := strconv.Atoi(parts[1])
		if err != nil || seq < 0 {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	next := maxSeq + 1
	if next > MaxSequence {
		return "", fmt.Errorf("%w: %d", domain.ErrSequenceExhausted, year)
	}
	return fmt.Sprintf("%s%04d", prefix, next), nil
}
