package notify

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/sitta-api/internal/application/dto"
	"github.com/jhoicas/sitta-api/internal/domain"
	"github.com/jhoicas/sitta-api/internal/domain/validation"
)

// Textos de la alerta de fallo inesperado.
const (
	UnexpectedTitle   = "Gagal Menyimpan!"
	UnexpectedMessage = "Terjadi kesalahan saat menyimpan data. Silakan coba lagi."
	NotFoundTitle     = "Data Tidak Ditemukan!"
)

// Guard ejecuta una acción de la página y enruta su fallo al canal que corresponde:
// validación → form; domain.ErrNotFound → page (info, con notFound como mensaje);
// cualquier otro error o pánico → form con el mensaje genérico, envuelto en
// domain.ErrUnexpected. El éxito lo anuncia fn.
func (b *Board) Guard(log zerolog.Logger, op, notFound string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", op, r)
		}
		if err == nil {
			return
		}
		if f, ok := validation.AsFailure(err); ok {
			log.Warn().Str("op", op).Str("field", f.Field).Str("group", string(f.Group)).Msg(f.Message)
			b.Form().Show(Kind(f.Severity), f.Title, f.Message)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			log.Info().Str("op", op).Err(err).Msg("no encontrado")
			b.Page().Show(KindInfo, NotFoundTitle, notFound)
			return
		}
		log.Error().Str("op", op).Err(err).Msg("fallo inesperado")
		b.Form().Show(KindDanger, UnexpectedTitle, UnexpectedMessage)
		err = fmt.Errorf("%w: %w", domain.ErrUnexpected, err)
	}()
	return fn()
}

// Responses convierte las alertas visibles al DTO de salida.
func Responses(ns []Notification) []dto.NotificationResponse {
	out := make([]dto.NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Channel:   string(n.Channel),
			Kind:      string(n.Kind),
			Title:     n.Title,
			Message:   n.Message,
			ShownAt:   n.ShownAt,
			ExpiresAt: n.ExpiresAt,
		})
	}
	return out
}
