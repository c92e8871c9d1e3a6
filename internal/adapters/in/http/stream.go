package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/streaming"
	"tracker/internal/metrics"
	"tracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StreamOrderStatus handles GET /api/v1/orders/:id/stream.
//
// The response is a long-lived text/event-stream. A new subscriber
// first receives a snapshot event with the order's current status, is
// then registered for broadcasts, and the progression run is started
// for the order if one is not already active. When the order does not
// exist the stream emits a single error event and ends without
// registering anything.
//
//	@Summary		Stream order status changes
//	@Tags			orders
//	@Produce		text/event-stream
//	@Param			id				path	string	true	"Order id"
//	@Param			deterministic	query	bool	false	"Use fixed short delays between transitions"
//	@Success		200	{string}	string	"event stream"
//	@Failure		400	{object}	Error
//	@Router			/orders/{id}/stream [get]
func (s *Server) StreamOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	// Snapshot before registration, so the first event on the wire is
	// always the order's state as of subscription time.
	snapshot, err := s.fetchSnapshot(ctx, orderID)
	if err != nil {
		message := "Server error"
		if errors.Is(err, errs.ErrObjectNotFound) {
			message = "Order not found"
		}
		s.writeEvent(resp, streaming.NewErrorEvent(s.seq, message))
		return nil
	}
	if writeErr := s.writeEvent(resp, streaming.NewStatusEvent(s.seq, snapshot)); writeErr != nil {
		return nil
	}
	if snapshot.Status.IsTerminal() {
		return nil
	}

	sub := streaming.NewSubscriber()
	s.registry.Register(orderID, sub)
	defer func() {
		s.registry.Deregister(orderID, sub)
		sub.Close()
	}()

	policy := s.randomPolicy
	if ctx.QueryParam("deterministic") == "true" {
		policy = s.deterministicPolicy
	}
	s.simulator.Start(s.runCtx, orderID, policy)

	keepAlive := time.NewTicker(s.keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Request().Context().Done():
			return nil
		case <-sub.Done():
			return nil
		case event := <-sub.Events():
			if writeErr := s.writeEvent(resp, event); writeErr != nil {
				return nil
			}
			if streamEnds(event) {
				return nil
			}
		case <-keepAlive.C:
			if writeErr := s.writeKeepAlive(resp); writeErr != nil {
				return nil
			}
		}
	}
}

func (s *Server) fetchSnapshot(ctx echo.Context, orderID kernel.UUID) (streaming.OrderSnapshot, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return streaming.OrderSnapshot{}, err
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return streaming.OrderSnapshot{}, err
	}

	return streaming.OrderSnapshot{
		OrderID:           resp.ID,
		Status:            resp.Status,
		Carrier:           resp.Carrier,
		EstimatedDelivery: resp.EstimatedDelivery,
		UpdatedAt:         resp.UpdatedAt,
	}, nil
}

// streamEnds reports whether the stream should close after this event:
// every error event is terminal, and so is the final lifecycle status.
func streamEnds(event streaming.Event) bool {
	if event.Kind == streaming.KindError {
		return true
	}
	payload, ok := event.Data.(streaming.StatusPayload)
	return ok && payload.Status == order.Delivered.String()
}

// writeEvent writes one event-stream frame and flushes it.
func (s *Server) writeEvent(resp *echo.Response, event streaming.Event) error {
	data, err := json.Marshal(event.Data)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(resp, "id: %d\nevent: %s\ndata: %s\n\n", event.ID, event.Kind, data); err != nil {
		return err
	}
	resp.Flush()
	return nil
}

// writeKeepAlive writes a comment frame that clients ignore. It only
// exists to defeat idle-connection timeouts in intermediary proxies.
func (s *Server) writeKeepAlive(resp *echo.Response) error {
	if _, err := fmt.Fprint(resp, ": keep-alive\n\n"); err != nil {
		return err
	}
	resp.Flush()
	metrics.KeepAlivesTotal.Inc()
	return nil
}
