package services

import (
	"context"
	"log"
	"time"
)

const (
	CollectionBills          = "bills"
	CollectionMenuCategories = "menu_categories"
	CollectionMenuItems      = "menu_items"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event describes a change to one stored row.
type Event struct {
	Collection string    `json:"collection"`
	Action     string    `json:"action"`
	ID         uint      `json:"id"`
	Payload    any       `json:"payload,omitempty"`
	At         time.Time `json:"at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}

// EventPublisherFunc adapts a function to EventPublisher.
type EventPublisherFunc func(ctx context.Context, ev Event) error

func (f EventPublisherFunc) Publish(ctx context.Context, ev Event) error { return f(ctx, ev) }

// Publishers fans an event out to every publisher. A failing publisher does
// not stop the others.
type Publishers []EventPublisher

func (ps Publishers) Publish(ctx context.Context, ev Event) error {
	var first error
	for _, p := range ps {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, ev); err != nil {
			log.Printf("events: publish %s.%s #%d: %v", ev.Collection, ev.Action, ev.ID, err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// LogPublisher only logs, used when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, ev Event) error {
	log.Printf("events: %s.%s #%d", ev.Collection, ev.Action, ev.ID)
	return nil
}

// publish never fails the caller; the row is already committed.
func publish(ctx context.Context, p EventPublisher, collection, action string, id uint, payload any) {
	if p == nil {
		return
	}
	ev := Event{Collection: collection, Action: action, ID: id, Payload: payload, At: time.Now().UTC()}
	if err := p.Publish(ctx, ev); err != nil {
		log.Printf("events: %s.%s #%d not delivered: %v", collection, action, id, err)
	}
}
