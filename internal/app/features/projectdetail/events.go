// internal/app/features/projectdetail/events.go
package projectdetail

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// keepAliveEvery is how often an SSE comment is written to hold the
// connection open through proxies.
const keepAliveEvery = 25 * time.Second

// ServeEvents relays upstream task-update pushes to the browser as an SSE
// stream of refresh events. Pushes are invalidation signals only: the board
// script reacts by re-fetching the board fragment, never by applying a
// delta. The stream ends when the client disconnects or the upstream
// subscription closes.
// GET /{orgSlug}/projects/{projectID}/events
func (h *Handler) ServeEvents(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	clientID := uuid.NewString()
	log := h.Log.With(
		zap.String("client", clientID),
		zap.String("project", projectID))

	sub, err := h.API.SubscribeTaskUpdated(r.Context(), projectID)
	if err != nil {
		log.Warn("upstream subscription failed", zap.Error(err))
		http.Error(w, "live updates unavailable", http.StatusBadGateway)
		return
	}
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	log.Info("event stream opened")
	defer log.Info("event stream closed")

	keepAlive := time.NewTicker(keepAliveEvery)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case _, open := <-sub.Signals:
			if !open {
				return
			}
			fmt.Fprint(w, "event: refresh\ndata: {}\n\n")
			flusher.Flush()
		case <-keepAlive.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		}
	}
}
