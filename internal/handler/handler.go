package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wpgtech/tech-events/internal/config"
	"github.com/wpgtech/tech-events/internal/event"
	"github.com/wpgtech/tech-events/internal/filter"
	"github.com/wpgtech/tech-events/internal/logger"
	"github.com/wpgtech/tech-events/internal/metrics"
	"github.com/wpgtech/tech-events/internal/source"
	"github.com/wpgtech/tech-events/internal/telegram"
)

// EventSource produces the events an invocation works on.
type EventSource interface {
	FetchEvents() []event.Event
}

// Notifier delivers digest and alert messages.
type Notifier interface {
	SendMessage(chatID, text string) error
	SendAlert(chatID, text string) error
}

// Trigger is the opaque invocation payload from the external scheduler.
type Trigger struct {
	Source string `json:"source,omitempty"`
}

// Response is the structured invocation result.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// successBody is the JSON body of a success-path Response.
type successBody struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	EventsCount int    `json:"events_count"`
	MessageSent bool   `json:"message_sent"`
	TestMode    bool   `json:"test_mode"`
	Timestamp   string `json:"timestamp"`
}

// failureBody is the JSON body of a failure-path Response.
type failureBody struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// Handler runs the fetch → filter → format → send pipeline.
type Handler struct {
	cfg      config.Config
	source   EventSource
	notifier Notifier
	now      func() time.Time
}

// New builds a Handler from configuration: the default provider adapter, and
// a Telegram client only when a bot token is present.
func New(cfg config.Config) *Handler {
	h := &Handler{
		cfg:    cfg,
		source: source.NewAdapter(cfg.City, cfg.Categories, time.Duration(cfg.PeriodDays)*24*time.Hour),
		now:    time.Now,
	}

	if cfg.BotToken != "" {
		client, err := telegram.NewClient(cfg.BotToken)
		if err != nil {
			logger.Error("Telegram client unavailable, running unconfigured", nil, err)
		} else {
			h.notifier = client
		}
	}

	return h
}

// NewWithDependencies builds a Handler with explicit collaborators, for tests
// and for callers that substitute a different event backend.
func NewWithDependencies(cfg config.Config, src EventSource, notifier Notifier, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{cfg: cfg, source: src, notifier: notifier, now: now}
}

// Handle runs one invocation. It always returns a structured Response:
// recoverable conditions are success paths, and any panic in the pipeline is
// recovered here, reported via a best-effort alert, and converted to the
// failure Response.
func (h *Handler) Handle(ctx context.Context, trigger Trigger) (resp Response) {
	runID := uuid.NewString()
	started := time.Now()

	defer func() {
		metrics.RunDuration.Observe(time.Since(started).Seconds())

		if r := recover(); r != nil {
			err := fmt.Errorf("%v", r)
			logger.Error("Invocation failed", logger.Fields{"run_id": runID}, err)
			metrics.RunsTotal.WithLabelValues("failure").Inc()

			h.sendAlert(fmt.Sprintf("Invocation failed: %v", r))
			resp = h.failureResponse(err)
		}
	}()

	logger.Info("Invocation started", logger.Fields{
		"run_id":     runID,
		"trigger":    trigger.Source,
		"city":       h.cfg.City,
		"categories": h.cfg.Categories,
		"test_mode":  h.cfg.TestMode,
	})

	events := h.source.FetchEvents()
	for _, evt := range events {
		metrics.EventsFetched.WithLabelValues(evt.Source).Inc()
	}

	now := h.now()
	future := filter.Future(events, now)
	logger.Info("Filtered to future events", logger.Fields{
		"run_id": runID,
		"total":  len(events),
		"future": len(future),
	})

	if len(future) == 0 {
		metrics.RunsTotal.WithLabelValues("success").Inc()
		return h.successResponse("No future events found", 0, false)
	}

	message := telegram.FormatDigest(future, now)
	if len(message) > telegram.MaxMessageLength {
		logger.Warn("Message exceeds length limit, truncating", logger.Fields{
			"run_id": runID,
			"length": len(message),
		})
		message = telegram.Truncate(message)
	}

	messageSent := false
	switch {
	case h.cfg.TestMode:
		logger.Info("Test mode: delivery suppressed", logger.Fields{"run_id": runID})
	case h.notifier != nil && h.cfg.ChatID != "":
		if err := h.notifier.SendMessage(h.cfg.ChatID, message); err != nil {
			logger.Error("Delivery failed", logger.Fields{"run_id": runID}, err)
			metrics.MessagesSent.WithLabelValues("failure").Inc()
		} else {
			messageSent = true
			metrics.MessagesSent.WithLabelValues("success").Inc()
		}
	default:
		logger.Warn("Telegram not configured, message not sent", logger.Fields{"run_id": runID})
	}

	metrics.RunsTotal.WithLabelValues("success").Inc()
	return h.successResponse("Events processed successfully", len(future), messageSent)
}

// Digest runs fetch, filter and format without delivering, for preview and
// HTTP surfaces. The returned events are the filtered future set.
func (h *Handler) Digest() ([]event.Event, string) {
	now := h.now()
	future := filter.Future(h.source.FetchEvents(), now)
	return future, telegram.Truncate(telegram.FormatDigest(future, now))
}

func (h *Handler) successResponse(message string, count int, sent bool) Response {
	body, _ := json.Marshal(successBody{
		Success:     true,
		Message:     message,
		EventsCount: count,
		MessageSent: sent,
		TestMode:    h.cfg.TestMode,
		Timestamp:   h.now().Format(time.RFC3339),
	})
	return Response{StatusCode: http.StatusOK, Body: string(body)}
}

func (h *Handler) failureResponse(err error) Response {
	body, _ := json.Marshal(failureBody{
		Success:   false,
		Error:     err.Error(),
		Timestamp: h.now().Format(time.RFC3339),
	})
	return Response{StatusCode: http.StatusInternalServerError, Body: string(body)}
}

// sendAlert is best effort: a failing or panicking alert path never masks the
// original failure.
func (h *Handler) sendAlert(text string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Alert delivery panicked", logger.Fields{"panic": fmt.Sprint(r)}, nil)
		}
	}()

	if h.notifier == nil || h.cfg.ChatID == "" {
		return
	}

	if err := h.notifier.SendAlert(h.cfg.ChatID, text); err != nil {
		logger.Error("Alert delivery failed", nil, err)
	}
}
