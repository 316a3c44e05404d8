package broker

import (
	"sync"

	"code.peerswap.io/peerswap/events"
	"code.peerswap.io/peerswap/logging"
)

// Subscriber receives the events it registered for. Push is called
// synchronously on the round's goroutine, subscribers must not block.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/subscriber_mock.go -package mocks code.peerswap.io/peerswap/broker Subscriber
type Subscriber interface {
	Push(evts ...events.Event)
	Types() []events.Type
}

type subscription struct {
	Subscriber
	id int
}

// Broker is the in-process observation channel: typed events raised by
// the engines fan out to every subscriber registered for their type.
type Broker struct {
	log *logging.Logger
	cfg Config

	mu    sync.Mutex
	tSubs map[events.Type]map[int]*subscription
	subs  map[int]*subscription
	seq   int
}

// New creates a new broker.
func New(log *logging.Logger, cfg Config) *Broker {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())
	return &Broker{
		log:   log,
		cfg:   cfg,
		tSubs: map[events.Type]map[int]*subscription{},
		subs:  map[int]*subscription{},
	}
}

// ReloadConf updates the internal configuration.
func (b *Broker) ReloadConf(cfg Config) {
	b.log.Info("reloading configuration")
	if b.log.GetLevel() != cfg.Level.Get() {
		b.log.Info("updating log level",
			logging.String("old", b.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		b.log.SetLevel(cfg.Level.Get())
	}
	b.cfg = cfg
}

// Subscribe registers a subscriber for the event types it reports,
// returning the key to unsubscribe with. A subscriber reporting the
// events.All type receives everything.
func (b *Broker) Subscribe(s Subscriber) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	sub := &subscription{Subscriber: s, id: b.seq}
	b.subs[sub.id] = sub
	for _, t := range s.Types() {
		if _, ok := b.tSubs[t]; !ok {
			b.tSubs[t] = map[int]*subscription{}
		}
		b.tSubs[t][sub.id] = sub
	}
	return sub.id
}

// Unsubscribe removes a subscriber, unknown keys are ignored.
func (b *Broker) Unsubscribe(k int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub, ok := b.subs[k]
	if !ok {
		return
	}
	for _, t := range sub.Types() {
		delete(b.tSubs[t], k)
	}
	delete(b.subs, k)
}

// Send pushes a single event to all interested subscribers. The set is
// snapshotted before pushing, a subscriber may subscribe or unsubscribe
// from inside Push.
func (b *Broker) Send(event events.Event) {
	if b.log.GetLevel() == logging.DebugLevel {
		b.log.Debug("sending event",
			logging.String("type", event.Type().String()),
			logging.String("trace-id", event.TraceID()),
		)
	}
	for _, sub := range b.subscribers(event.Type()) {
		sub.Push(event)
	}
}

func (b *Broker) subscribers(t events.Type) []*subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := make([]*subscription, 0, len(b.tSubs[t])+len(b.tSubs[events.All]))
	for _, sub := range b.tSubs[t] {
		subs = append(subs, sub)
	}
	for _, sub := range b.tSubs[events.All] {
		subs = append(subs, sub)
	}
	return subs
}

// SendBatch pushes a batch of events, event by event, preserving order.
func (b *Broker) SendBatch(evts []events.Event) {
	for _, e := range evts {
		b.Send(e)
	}
}
