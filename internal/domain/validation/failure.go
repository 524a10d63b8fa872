// Package validation define el resultado estructurado de las validaciones de formularios.
// Los validadores cortan en el primer fallo y reportan exactamente una razón.
package validation

import (
	"errors"
	"fmt"

	"github.com/jhoicas/sitta-api/internal/domain"
)

// Group familia de la regla que falló.
type Group string

const (
	GroupRequired   Group = "required"
	GroupNumeric    Group = "numeric"
	GroupFormat     Group = "format"
	GroupUniqueness Group = "uniqueness"
	GroupDate       Group = "date"
	GroupReference  Group = "reference"
)

// Severity nivel con el que se muestra el fallo (coincide con los tipos de alerta).
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Failure resultado de una validación fallida. Implementa error y envuelve domain.ErrValidation.
type Failure struct {
	Group    Group
	Field    string
	Severity Severity
	Title    string
	Message  string
}

// Error implementa error.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s (%s): %s", f.Field, f.Group, f.Message)
}

// Unwrap permite errors.Is(err, domain.ErrValidation).
func (f *Failure) Unwrap() error { return domain.ErrValidation }

// Warn construye un Failure con severidad warning.
func Warn(group Group, field, title, message string) *Failure {
	return &Failure{Group: group, Field: field, Severity: SeverityWarning, Title: title, Message: message}
}

// AsFailure extrae el Failure de una cadena de errores.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
