package notify

import (
	"fmt"
	"time"

	"github.com/jhoicas/sitta-api/internal/domain"
)

// ChannelName identifica un canal de alertas independiente.
type ChannelName string

const (
	ChannelPage    ChannelName = "page"    // alerta de página
	ChannelForm    ChannelName = "form"    // alerta dentro del modal
	ChannelSuccess ChannelName = "success" // alerta de éxito centrada
	ChannelWarning ChannelName = "warning" // alerta de "no encontrado" centrada
)

// ChannelNames orden estable en que se reportan los canales.
var ChannelNames = []ChannelName{ChannelPage, ChannelForm, ChannelSuccess, ChannelWarning}

// Board agrupa los canales de una página. Los canales no se coordinan entre sí.
type Board struct {
	channels map[ChannelName]*Channel
}

// NewBoard crea los cuatro canales con la misma duración.
func NewBoard(duration time.Duration, clock Clock) *Board {
	b := &Board{channels: make(map[ChannelName]*Channel, len(ChannelNames))}
	for _, name := range ChannelNames {
		b.channels[name] = NewChannel(name, duration, clock)
	}
	return b
}

func (b *Board) Page() *Channel    { return b.channels[ChannelPage] }
func (b *Board) Form() *Channel    { return b.channels[ChannelForm] }
func (b *Board) Success() *Channel { return b.channels[ChannelSuccess] }
func (b *Board) Warning() *Channel { return b.channels[ChannelWarning] }

// Active alertas visibles en el orden de ChannelNames.
func (b *Board) Active() []Notification {
	out := make([]Notification, 0, len(ChannelNames))
	for _, name := range ChannelNames {
		if n, ok := b.channels[name].Current(); ok {
			out = append(out, n)
		}
	}
	return out
}

// Dismiss oculta el canal indicado. Canal desconocido → domain.ErrNotFound.
func (b *Board) Dismiss(name string) error {
	ch, ok := b.channels[ChannelName(name)]
	if !ok {
		return fmt.Errorf("canal %q: %w", name, domain.ErrNotFound)
	}
	ch.Dismiss()
	return nil
}
