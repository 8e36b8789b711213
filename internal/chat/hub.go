package chat

import (
	"sync"

	"github.com/go-stomp/stomp/v3/frame"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Hub tracks which sessions are subscribed to which destinations and fans
// SEND bodies out as MESSAGE frames. All state is guarded by a single mutex;
// delivery happens outside the lock on each session's own writer.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*session]map[string]struct{}
	log  zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		subs: make(map[string]map[*session]map[string]struct{}),
		log:  log,
	}
}

// Subscribe registers a session's subscription id against a destination.
func (h *Hub) Subscribe(sess *session, destination, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	byDest := h.subs[destination]
	if byDest == nil {
		byDest = make(map[*session]map[string]struct{})
		h.subs[destination] = byDest
	}
	ids := byDest[sess]
	if ids == nil {
		ids = make(map[string]struct{})
		byDest[sess] = ids
	}
	ids[id] = struct{}{}
	sess.subs[id] = destination
}

// Unsubscribe drops a single subscription by its client-assigned id.
func (h *Hub) Unsubscribe(sess *session, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(sess, id)
}

// Remove drops every subscription a departing session still holds.
func (h *Hub) Remove(sess *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id := range sess.subs {
		h.dropLocked(sess, id)
	}
}

func (h *Hub) dropLocked(sess *session, id string) {
	destination, ok := sess.subs[id]
	if !ok {
		return
	}
	delete(sess.subs, id)

	if byDest := h.subs[destination]; byDest != nil {
		if ids := byDest[sess]; ids != nil {
			delete(ids, id)
			if len(ids) == 0 {
				delete(byDest, sess)
			}
		}
		if len(byDest) == 0 {
			delete(h.subs, destination)
		}
	}
}

// Publish delivers a message body to every subscriber of the destination.
// One MESSAGE frame is written per subscription so each carries the correct
// subscription header.
func (h *Hub) Publish(destination, sender string, body []byte) {
	type target struct {
		sess *session
		id   string
	}

	h.mu.RLock()
	var targets []target
	for sess, ids := range h.subs[destination] {
		for id := range ids {
			targets = append(targets, target{sess: sess, id: id})
		}
	}
	h.mu.RUnlock()

	for _, t := range targets {
		msg := frame.New(frame.MESSAGE,
			frame.Destination, destination,
			frame.Subscription, t.id,
			frame.MessageId, uuid.NewString(),
			frame.ContentType, "text/plain",
			"sender", sender,
		)
		msg.Body = body
		if err := t.sess.deliver(msg); err != nil {
			h.log.Warn().
				Err(err).
				Str("destination", destination).
				Str("recipient", t.sess.username()).
				Msg("message delivery failed")
		}
	}
}
