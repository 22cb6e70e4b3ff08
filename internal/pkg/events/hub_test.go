package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	hub.Publish(Event{EmployeeID: "emp-1", Type: TypeSessionOpened, OccurredAt: time.Now()})

	select {
	case ev := <-ch:
		assert.Equal(t, TypeSessionOpened, ev.Type)
		assert.Equal(t, "emp-1", ev.EmployeeID)
	case <-time.After(time.Second):
		t.Fatal("expected event, got none")
	}
}

func TestHub_PublishIsScopedToEmployee(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	hub.Publish(Event{EmployeeID: "emp-2", Type: TypeSessionClosed})

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event for another employee: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()
	_, cleanup := hub.Subscribe("emp-1")
	require.Equal(t, 1, hub.SubscriberCount("emp-1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("emp-1"))
}

func TestHub_FullChannelDoesNotBlockPublish(t *testing.T) {
	hub := NewHub()
	_, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			hub.Publish(Event{EmployeeID: "emp-1", Type: TypeSessionOpened})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on full subscriber channel")
	}
}
