package preview

import (
	"fmt"
	"net/http"
	"sync"
)

// ReloadHub manages SSE clients for rebuild broadcasts.
type ReloadHub struct {
	mu      sync.RWMutex
	nextID  int
	clients map[int]chan string
	closed  bool
}

// NewReloadHub creates an empty hub.
func NewReloadHub() *ReloadHub {
	return &ReloadHub{clients: map[int]chan string{}}
}

// ServeHTTP implements the SSE endpoint at /reload.
func (h *ReloadHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		http.Error(w, "preview shutting down", http.StatusServiceUnavailable)
		return
	}
	id := h.nextID
	h.nextID++
	ch := make(chan string, 4)
	h.clients[id] = ch
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, id)
		h.mu.Unlock()
	}()

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: reload\ndata: %s\n\n", event)
			flusher.Flush()
		}
	}
}

// Broadcast notifies all connected clients. Slow clients are skipped rather
// than blocking the rebuild loop.
func (h *ReloadHub) Broadcast(event string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.clients {
		select {
		case ch <- event:
		default:
		}
	}
}

// Close stops accepting clients and disconnects existing ones.
func (h *ReloadHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.clients {
		close(ch)
		delete(h.clients, id)
	}
}
