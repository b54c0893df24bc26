// internal/app/api/graphql/subscriptions.go
package graphql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Subscription pushes are advisory refresh triggers, never authoritative
// deltas: their payloads are discarded and each push is surfaced as a bare
// signal telling the consumer to re-fetch the collection it owns. Delivery
// order relative to in-flight mutations is not guaranteed, so redundant
// refreshes must be (and are) harmless.

const wsSubprotocol = "graphql-transport-ws"

// wsMessage is the graphql-transport-ws frame.
type wsMessage struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Subscription is one live feed keyed by a parent id. Signals carries an
// empty struct per push; it closes when the feed ends for any reason.
type Subscription struct {
	Signals <-chan struct{}

	cancel context.CancelFunc
}

// Close tears the feed down. Safe to call more than once.
func (s *Subscription) Close() { s.cancel() }

// SubscribeTaskUpdated opens a taskUpdated(projectId) feed.
func (c *Client) SubscribeTaskUpdated(ctx context.Context, projectID string) (*Subscription, error) {
	return c.subscribe(ctx, "TaskUpdated", subscriptionTaskUpdated, map[string]any{"projectId": projectID})
}

// SubscribeCommentAdded opens a commentAdded(taskId) feed.
func (c *Client) SubscribeCommentAdded(ctx context.Context, taskID string) (*Subscription, error) {
	return c.subscribe(ctx, "CommentAdded", subscriptionCommentAdded, map[string]any{"taskId": taskID})
}

// SubscribeProjectUpdated opens a projectUpdated(organizationSlug) feed.
func (c *Client) SubscribeProjectUpdated(ctx context.Context, orgSlug string) (*Subscription, error) {
	return c.subscribe(ctx, "ProjectUpdated", subscriptionProjectUpdated, map[string]any{"organizationSlug": orgSlug})
}

// subscribe dials the websocket endpoint, performs the
// graphql-transport-ws handshake, and starts one subscribe operation.
func (c *Client) subscribe(ctx context.Context, operationName, document string, variables map[string]any) (*Subscription, error) {
	dialer := websocket.Dialer{Subprotocols: []string{wsSubprotocol}}
	conn, _, err := dialer.DialContext(ctx, c.wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial subscription endpoint: %w", err)
	}

	if err := conn.WriteJSON(wsMessage{Type: "connection_init"}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("subscription init: %w", err)
	}

	var ack wsMessage
	if err := conn.ReadJSON(&ack); err != nil {
		conn.Close()
		return nil, fmt.Errorf("subscription ack: %w", err)
	}
	if ack.Type != "connection_ack" {
		conn.Close()
		return nil, fmt.Errorf("subscription ack: unexpected %q", ack.Type)
	}

	id := uuid.NewString()
	payload, err := json.Marshal(request{
		OperationName: operationName,
		Query:         document,
		Variables:     variables,
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("encode subscribe payload: %w", err)
	}
	if err := conn.WriteJSON(wsMessage{ID: id, Type: "subscribe", Payload: payload}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("start subscription: %w", err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	signals := make(chan struct{}, 1)

	// Closing the connection unblocks the read loop below.
	go func() {
		<-subCtx.Done()
		conn.Close()
	}()

	go func() {
		defer close(signals)
		defer cancel()

		for {
			var msg wsMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if subCtx.Err() == nil {
					c.log.Debug("subscription read ended",
						zap.String("operation", operationName),
						zap.Error(err))
				}
				return
			}

			switch msg.Type {
			case "next":
				// Payload dropped on purpose: refresh signal only.
				select {
				case signals <- struct{}{}:
				default:
					// A pending signal already means "refresh"; coalesce.
				}
			case "complete", "error":
				return
			case "ping":
				_ = conn.WriteJSON(wsMessage{Type: "pong"})
			}
		}
	}()

	return &Subscription{Signals: signals, cancel: cancel}, nil
}
