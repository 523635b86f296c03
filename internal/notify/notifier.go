// Package notify carries realtime events to subscribed slot-viewers.
// Delivery is fire-and-forget: events are published to a redis channel
// at most once, with no retry and no persistence. A listener that
// reconnects later queries fresh state instead.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/onligro/salon-scheduler/internal/domain/booking"
)

// Channel is the redis pub/sub channel all events are published on.
// The event name travels inside the envelope.
const Channel = "salon:events"

type envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Dispatcher implements booking.Notifier over redis pub/sub. Emits are
// queued on a bounded channel and published by a background worker so a
// slow or down redis never blocks a booking request.
type Dispatcher struct {
	rdb   *redis.Client
	queue chan envelope
	log   zerolog.Logger
}

func NewDispatcher(rdb *redis.Client, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		rdb:   rdb,
		queue: make(chan envelope, 100),
		log:   log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		b, err := json.Marshal(ev)
		if err != nil {
			d.log.Error().Err(err).Str("event", ev.Event).Msg("notify marshal failed")
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := d.rdb.Publish(ctx, Channel, b).Err(); err != nil {
			d.log.Warn().Err(err).Str("event", ev.Event).Msg("notify publish failed")
		}
		cancel()
	}
}

func (d *Dispatcher) Emit(event string, payload any) {
	select {
	case d.queue <- envelope{Event: event, Payload: payload}:
	default:
		d.log.Warn().Str("event", event).Msg("notify queue full, dropping event")
	}
}

var _ booking.Notifier = (*Dispatcher)(nil)
