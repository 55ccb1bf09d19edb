package messaging

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"minerva/internal/shared/events"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublishReachesEverySubscriber(t *testing.T) {
	bus := NewBus(quietLogger())
	first := bus.Subscribe("question.created")
	second := bus.Subscribe("question.created")
	other := bus.Subscribe("answer.created")

	err := bus.Publish(context.Background(), "question.created", events.Envelope{
		EventID:   "evt-1",
		EventType: "question.created",
	})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	for i, ch := range []<-chan events.Envelope{first, second} {
		select {
		case event := <-ch:
			if event.EventID != "evt-1" {
				t.Fatalf("subscriber %d: expected evt-1, got %q", i, event.EventID)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d: no event received", i)
		}
	}

	select {
	case event := <-other:
		t.Fatalf("unrelated topic received %q", event.EventID)
	default:
	}
}

func TestPublishDropsForFullSubscriber(t *testing.T) {
	bus := NewBus(quietLogger())
	ch := bus.Subscribe("question.created")

	// The subscriber channel holds 64 events; the 65th is dropped instead of
	// blocking the publisher.
	for i := 0; i < 65; i++ {
		err := bus.Publish(context.Background(), "question.created", events.Envelope{EventID: "evt", EventType: "question.created"})
		if err != nil {
			t.Fatalf("publish %d failed: %v", i, err)
		}
	}

	drained := 0
	for {
		select {
		case <-ch:
			drained++
		default:
			if drained != 64 {
				t.Fatalf("expected 64 buffered events, got %d", drained)
			}
			return
		}
	}
}

func TestPublisherStampsEnvelope(t *testing.T) {
	bus := NewBus(quietLogger())
	ch := bus.Subscribe("question.created")
	publisher := NewPublisher(bus, "minerva-test")

	before := time.Now().UTC()
	err := publisher.Publish(context.Background(), "question.created", "question", "q-1", map[string]string{"title": "t"})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case event := <-ch:
		if event.EventID == "" {
			t.Fatalf("expected a generated event id")
		}
		if event.SourceService != "minerva-test" {
			t.Fatalf("expected source minerva-test, got %q", event.SourceService)
		}
		if event.EntityType != "question" || event.EntityID != "q-1" {
			t.Fatalf("unexpected entity stamp: %s/%s", event.EntityType, event.EntityID)
		}
		if event.PayloadVersion != 1 {
			t.Fatalf("expected payload version 1, got %d", event.PayloadVersion)
		}
		if event.OccurredAtUTC.Before(before.Add(-time.Second)) {
			t.Fatalf("occurred-at %v predates the publish", event.OccurredAtUTC)
		}
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}
