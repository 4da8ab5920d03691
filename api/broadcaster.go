package api

import (
	"sync"

	"github.com/lookbusy1344/arm-disassembler/service"
)

// EventType labels the kind of event carried by a BroadcastEvent.
type EventType string

const (
	// EventTypeEntry carries one newly decoded service.Entry.
	EventTypeEntry EventType = "entry"
	// EventTypeDone signals that a session has finished decoding.
	EventTypeDone EventType = "done"
)

// BroadcastEvent is one message sent to subscribed WebSocket clients.
type BroadcastEvent struct {
	Type      EventType              `json:"type"`
	SessionID string                 `json:"sessionId"`
	Data      map[string]interface{} `json:"data"`
}

// Subscription is a client's filtered feed of broadcast events.
type Subscription struct {
	SessionID  string
	EventTypes map[EventType]bool
	Channel    chan BroadcastEvent
}

// Broadcaster fans decode-progress events out to WebSocket subscribers,
// one goroutine owning the subscription set so concurrent Subscribe,
// Unsubscribe and Broadcast calls never race.
type Broadcaster struct {
	mu            sync.RWMutex
	subscriptions map[*Subscription]bool
	broadcast     chan BroadcastEvent
	register      chan *Subscription
	unregister    chan *Subscription
	done          chan struct{}
}

// NewBroadcaster creates and starts a new event broadcaster.
func NewBroadcaster() *Broadcaster {
	b := &Broadcaster{
		subscriptions: make(map[*Subscription]bool),
		broadcast:     make(chan BroadcastEvent, 256),
		register:      make(chan *Subscription),
		unregister:    make(chan *Subscription),
		done:          make(chan struct{}),
	}
	go b.run()
	return b
}

func (b *Broadcaster) run() {
	for {
		select {
		case sub := <-b.register:
			b.mu.Lock()
			b.subscriptions[sub] = true
			b.mu.Unlock()

		case sub := <-b.unregister:
			b.mu.Lock()
			if b.subscriptions[sub] {
				delete(b.subscriptions, sub)
				close(sub.Channel)
			}
			b.mu.Unlock()

		case event := <-b.broadcast:
			b.mu.RLock()
			for sub := range b.subscriptions {
				if sub.SessionID != "" && sub.SessionID != event.SessionID {
					continue
				}
				if len(sub.EventTypes) > 0 && !sub.EventTypes[event.Type] {
					continue
				}
				select {
				case sub.Channel <- event:
				default:
					// client too slow, drop the event rather than block the broadcaster
				}
			}
			b.mu.RUnlock()

		case <-b.done:
			b.mu.Lock()
			for sub := range b.subscriptions {
				close(sub.Channel)
			}
			b.subscriptions = make(map[*Subscription]bool)
			b.mu.Unlock()
			return
		}
	}
}

// Subscribe creates a subscription filtered to sessionID (empty = all
// sessions) and eventTypes (empty = all types).
func (b *Broadcaster) Subscribe(sessionID string, eventTypes []EventType) *Subscription {
	eventTypeMap := make(map[EventType]bool)
	for _, et := range eventTypes {
		eventTypeMap[et] = true
	}
	sub := &Subscription{
		SessionID:  sessionID,
		EventTypes: eventTypeMap,
		Channel:    make(chan BroadcastEvent, 64),
	}
	b.register <- sub
	return sub
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	b.unregister <- sub
}

// Broadcast sends an event to all matching subscriptions, dropping it
// if the broadcaster's internal queue is full.
func (b *Broadcaster) Broadcast(event BroadcastEvent) {
	select {
	case b.broadcast <- event:
	default:
	}
}

// BroadcastEntry announces one freshly decoded instruction.
func (b *Broadcaster) BroadcastEntry(sessionID string, e service.Entry) {
	b.Broadcast(BroadcastEvent{
		Type:      EventTypeEntry,
		SessionID: sessionID,
		Data: map[string]interface{}{
			"address":    e.Address,
			"word":       e.Word,
			"mode":       e.Mode,
			"mnemonic":   e.Mnemonic,
			"halfwords":  e.Halfwords,
			"recognized": e.Recognized,
		},
	})
}

// BroadcastDone announces that a session has finished decoding.
func (b *Broadcaster) BroadcastDone(sessionID string, entryCount int, notRecognized uint64) {
	b.Broadcast(BroadcastEvent{
		Type:      EventTypeDone,
		SessionID: sessionID,
		Data: map[string]interface{}{
			"entryCount":    entryCount,
			"notRecognized": notRecognized,
		},
	})
}

// Close shuts down the broadcaster and closes all subscriptions.
func (b *Broadcaster) Close() {
	close(b.done)
}

// SubscriptionCount returns the number of active subscriptions.
func (b *Broadcaster) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscriptions)
}
