package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onligro/salon-scheduler/internal/domain/booking"
)

func TestDispatcherPublishesEvents(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := redis.NewClient(&redis.Options{
		Addr: s.Addr(),
	})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sub := client.Subscribe(ctx, Channel)
	defer sub.Close()

	// Wait for the subscription to be established before emitting.
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	d := NewDispatcher(client, zerolog.Nop())
	d.Emit(booking.EventSlotsUpdate, booking.SlotsUpdatePayload{
		SalonID: 42,
		Date:    "2030-01-07",
	})

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, Channel, msg.Channel)

	var got struct {
		Event   string `json:"event"`
		Payload struct {
			SalonID uint   `json:"salon_id"`
			Date    string `json:"date"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))

	assert.Equal(t, booking.EventSlotsUpdate, got.Event)
	assert.Equal(t, uint(42), got.Payload.SalonID)
	assert.Equal(t, "2030-01-07", got.Payload.Date)
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := redis.NewClient(&redis.Options{
		Addr: s.Addr(),
	})
	defer client.Close()

	d := &Dispatcher{
		rdb:   client,
		queue: make(chan envelope, 1),
		log:   zerolog.Nop(),
	}

	// No worker draining the queue, so the second emit must not block.
	d.Emit(booking.EventSlotsUpdate, booking.SlotsUpdatePayload{SalonID: 1, Date: "2030-01-07"})

	done := make(chan struct{})
	go func() {
		d.Emit(booking.EventSlotsUpdate, booking.SlotsUpdatePayload{SalonID: 2, Date: "2030-01-08"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked on a full queue")
	}
}
