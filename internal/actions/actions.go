// Package actions runs the admin mutations: validate the form, forward it to
// the remote API, drop the cached reads it affects, then announce it.
package actions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-ecom-admin/internal/discount"
	"github.com/imrishuroy/go-ecom-admin/internal/events"
	"github.com/imrishuroy/go-ecom-admin/internal/metrics"
	"github.com/imrishuroy/go-ecom-admin/internal/remote"
	"github.com/imrishuroy/go-ecom-admin/internal/validation"
	"github.com/imrishuroy/go-ecom-admin/internal/variant"
)

// Result is what every action returns to the form that submitted it.
// Exactly one of Data, FieldErrors and Message is meaningful.
type Result struct {
	Success     bool                   `json:"success"`
	Data        json.RawMessage        `json:"data,omitempty"`
	FieldErrors validation.FieldErrors `json:"fieldErrors,omitempty"`
	Message     string                 `json:"message,omitempty"`

	status int
}

func ok(data json.RawMessage) Result {
	return Result{Success: true, Data: data, status: http.StatusOK}
}

func invalid(errs validation.FieldErrors) Result {
	return Result{FieldErrors: errs, status: http.StatusBadRequest}
}

func failed(err error) Result {
	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < 400 {
			status = http.StatusBadGateway
		}
		return Result{Message: apiErr.Message, status: status}
	}
	return Result{Message: err.Error(), status: http.StatusBadGateway}
}

// HTTPStatus maps the result onto a response code.
func (r Result) HTTPStatus() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// Caller identifies who triggered an action, for events.
type Caller struct {
	Actor     string
	RequestID string
}

// Service holds the collaborators of every action.
type Service struct {
	client    *remote.Client
	publisher events.Publisher
	recorder  metrics.Recorder
	forms     *validatorv10.Validate
	discounts *discount.Validator
	variants  *variant.Validator
	log       *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithPublisher announces successful mutations through p.
func WithPublisher(p events.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithRecorder records action outcomes through r.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithDiscountValidator replaces the default discount validator.
func WithDiscountValidator(v *discount.Validator) Option {
	return func(s *Service) { s.discounts = v }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService returns a Service forwarding to client.
func NewService(client *remote.Client, opts ...Option) *Service {
	s := &Service{
		client:    client,
		publisher: events.Nop{},
		recorder:  metrics.NewCloudWatchRecorder(nil, ""),
		forms:     validation.New(),
		discounts: discount.New(),
		variants:  variant.NewValidator(),
		log:       zap.L(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// mutation describes one remote write.
type mutation struct {
	name       string // metric dimension, e.g. "discount.create"
	tag        string
	action     string
	resourceID string
	also       []string // extra tags to invalidate
}

// run performs m once errs is known to be empty. The remote call is skipped
// when the form is invalid.
func (s *Service) run(ctx context.Context, c Caller, m mutation, errs validation.FieldErrors,
	call func(context.Context) (json.RawMessage, error)) Result {
	if len(errs) > 0 {
		s.record(ctx, m.name, metrics.ValidationFailed)
		return invalid(errs)
	}

	body, err := call(ctx)
	if err != nil {
		s.log.Warn("remote mutation failed", zap.String("action", m.name),
			zap.String("request_id", c.RequestID), zap.Error(err))
		s.record(ctx, m.name, metrics.RemoteFailed)
		return failed(err)
	}

	s.client.Invalidate(m.tag)
	for _, tag := range m.also {
		s.client.Invalidate(tag)
	}

	id := m.resourceID
	if id == "" {
		id = resourceIDFrom(body)
	}
	ev := events.NewMutation(m.tag, m.action, id, c.Actor, c.RequestID)
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.log.Error("publish mutation failed", zap.String("action", m.name),
			zap.String("event_id", ev.EventID), zap.Error(err))
	}

	s.record(ctx, m.name, metrics.ActionSucceeded)
	return ok(body)
}

func (s *Service) record(ctx context.Context, name string, outcome metrics.Outcome) {
	if err := s.recorder.Record(ctx, name, outcome); err != nil {
		s.log.Warn("record action outcome failed", zap.String("action", name), zap.Error(err))
	}
}

var idPaths = []string{"data._id", "_id", "*._id"}

// resourceIDFrom finds the id of a created resource in a response body.
func resourceIDFrom(body json.RawMessage) string {
	for _, p := range idPaths {
		if r := gjson.GetBytes(body, p); r.Exists() && r.Type == gjson.String {
			return r.String()
		}
	}
	return ""
}

// FromError reports a failed read the same way a failed action is reported.
func FromError(err error) Result {
	return failed(err)
}
