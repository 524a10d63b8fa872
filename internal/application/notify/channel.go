// Package notify implementa las alertas transitorias de las páginas: cada canal guarda
// como máximo una notificación visible que se oculta sola al vencer su duración.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDuration duración por defecto de una alerta visible.
const DefaultDuration = 5000 * time.Millisecond

// Kind tipo visual de la alerta.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindDanger  Kind = "danger"
)

// Notification una alerta visible.
type Notification struct {
	ID        string
	Channel   ChannelName
	Kind      Kind
	Title     string
	Message   string
	ShownAt   time.Time
	ExpiresAt time.Time
}

// Channel máquina de estados Hidden → Shown → Hidden de un único slot.
type Channel struct {
	mu       sync.Mutex
	name     ChannelName
	clock    Clock
	duration time.Duration

	current *Notification
	timer   Timer
	gen     uint64 // invalida temporizadores de alertas ya reemplazadas
}

// NewChannel construye un canal oculto. duration <= 0 usa DefaultDuration.
func NewChannel(name ChannelName, duration time.Duration, clock Clock) *Channel {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Channel{name: name, clock: clock, duration: duration}
}

// Name nombre del canal.
func (c *Channel) Name() ChannelName { return c.name }

// Show muestra una alerta; si ya había una, la reemplaza y reinicia el temporizador.
func (c *Channel) Show(kind Kind, title, message string) Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.gen++
	gen := c.gen
	now := c.clock.Now()
	n := Notification{
		ID:        uuid.NewString(),
		Channel:   c.name,
		Kind:      kind,
		Title:     title,
		Message:   message,
		ShownAt:   now,
		ExpiresAt: now.Add(c.duration),
	}
	c.current = &n
	c.timer = c.clock.AfterFunc(c.duration, func() { c.expire(gen) })
	return n
}

// Dismiss oculta la alerta actual. Sobre un canal oculto no hace nada; devuelve si ocultó algo.
func (c *Channel) Dismiss() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return false
	}
	c.stopLocked()
	c.gen++
	c.current = nil
	return true
}

// Current devuelve la alerta visible, si la hay.
func (c *Channel) Current() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return Notification{}, false
	}
	return *c.current, true
}

func (c *Channel) expire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.current = nil
	c.timer = nil
}

func (c *Channel) stopLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
