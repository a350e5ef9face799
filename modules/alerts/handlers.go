package alerts

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/alertkit/handler"
	"github.com/dmitrymomot/alertkit/pkg/alert"
	"github.com/dmitrymomot/alertkit/pkg/alertview"
	"github.com/dmitrymomot/alertkit/pkg/logger"
)

// StreamRequest opens the live region of one group. An empty client gets a
// fresh id, sent back in the alertClient signal.
type StreamRequest struct {
	Group  string `query:"group"`
	Client string `query:"client"`
}

// DismissRequest identifies one alert of a live view.
type DismissRequest struct {
	Group  string `query:"group"`
	Client string `query:"client"`
	Key    uint64 `query:"key"`
}

// NavigateRequest reports a host page navigation.
type NavigateRequest struct {
	Client   string `query:"client"`
	Location string `query:"location"`
}

// PublishRequest raises an alert; an empty message clears the group.
type PublishRequest struct {
	ID                   string `json:"id"`
	Type                 string `json:"type"`
	Message              string `json:"message"`
	AutoClose            bool   `json:"autoClose"`
	KeepAfterRouteChange bool   `json:"keepAfterRouteChange"`
}

// PublishResponse echoes what was published.
type PublishResponse struct {
	Group string `json:"group"`
	Clear bool   `json:"clear,omitempty"`
}

func groupOrDefault(id string) string {
	if id == "" {
		return alert.DefaultGroup
	}
	return id
}

func (s *Service) stream(ctx handler.Context, req StreamRequest) handler.Response {
	if !handler.IsDataStar(ctx.Request()) {
		return handler.Error(handler.ErrNotDataStar)
	}

	key := viewKey{client: req.Client, group: groupOrDefault(req.Group)}
	if key.client == "" {
		key.client = uuid.NewString()
	}

	lv, err := s.mount(key)
	if err != nil {
		return handler.Error(errors.Join(handler.ErrUnavailable, err))
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		defer s.release(key, lv)

		log := s.logger.With(logger.ClientID(key.client), logger.AlertGroup(key.group))
		log.DebugContext(stream, "alert stream opened")

		regionID := alertview.RegionID(key.group)
		target := handler.WithTarget("#" + regionID)
		dismiss := s.dismissURL(key)

		if err := stream.SendSignals(map[string]any{"alertClient": key.client}); err != nil {
			return err
		}
		if err := stream.SendComponent(alertview.Region(regionID, lv.view.Items(), dismiss), target); err != nil {
			return err
		}

		for {
			select {
			case <-stream.Done():
				log.DebugContext(stream, "alert stream closed")
				return nil
			case <-lv.done:
				log.DebugContext(stream, "alert view evicted")
				return nil
			case items := <-lv.updates:
				if err := stream.SendComponent(alertview.Region(regionID, items, dismiss), target); err != nil {
					log.LogAttrs(stream, slog.LevelWarn, "alert stream write failed", logger.Error(err))
					return nil
				}
			}
		}
	})
}

func (s *Service) dismiss(ctx handler.Context, req DismissRequest) handler.Response {
	key := viewKey{client: req.Client, group: groupOrDefault(req.Group)}
	lv, ok := s.views.Get(key)
	if !ok || !lv.view.Remove(req.Key) {
		return handler.Error(handler.ErrNotFound)
	}

	s.logger.LogAttrs(ctx, slog.LevelDebug, "alert dismissed",
		logger.ClientID(key.client),
		logger.AlertGroup(key.group),
		logger.AlertKey(req.Key),
	)
	return handler.Empty()
}

func (s *Service) navigate(ctx handler.Context, req NavigateRequest) handler.Response {
	if req.Client == "" {
		return handler.Error(handler.ErrBadRequest)
	}
	if s.Navigate(req.Client, req.Location) {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "client navigated",
			logger.ClientID(req.Client),
			logger.Location(req.Location),
		)
	}
	return handler.Empty()
}

func (s *Service) publish(_ handler.Context, req PublishRequest) handler.Response {
	group := groupOrDefault(req.ID)
	if req.Message == "" {
		s.bus.Clear(group)
		return handler.JSONWithStatus(http.StatusAccepted, PublishResponse{Group: group, Clear: true})
	}

	t, err := alert.ParseType(req.Type)
	if err != nil {
		return handler.Error(errors.Join(handler.ErrBadRequest, err))
	}

	s.bus.Publish(alert.Record{
		ID:                   group,
		Type:                 t,
		Message:              req.Message,
		AutoClose:            req.AutoClose,
		KeepAfterRouteChange: req.KeepAfterRouteChange,
	})
	return handler.JSONWithStatus(http.StatusAccepted, PublishResponse{Group: group})
}
