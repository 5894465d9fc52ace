package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/smm-orders/internal/domain"
	"github.com/TemirB/smm-orders/internal/observability"
	"github.com/TemirB/smm-orders/internal/panel"
	"github.com/TemirB/smm-orders/internal/report"
)

//go:generate mockgen -source internal/application/service/service.go -destination=internal/application/service/service_mock_test.go -package=service

var errNoCommentLines = errors.New("no comment lines to send")

type PanelClient interface {
	Post(ctx context.Context, endpoint string, form url.Values) (any, error)
}

type Catalog interface {
	Services() []domain.ServiceOrderSpec
	CommentService(p domain.Panel) (domain.ServiceOrderSpec, bool)
	Lookup(key string) (domain.ServiceOrderSpec, bool)
}

// Request is what the operator submits.
type Request struct {
	VideoLink     string
	RawComments   string
	OrderComments bool
	CommentPanel  domain.Panel
	Services      []string
}

// Plan is a validated batch ready for dispatch.
type Plan struct {
	VideoLink string
	Comments  domain.CommentBatch
	Specs     []domain.ServiceOrderSpec
}

// ProgressFunc is called after every completed order.
type ProgressFunc func(report.Step)

type Service struct {
	catalog Catalog
	creds   panel.Credentials
	client  PanelClient
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewService(catalog Catalog, creds panel.Credentials, client PanelClient, logger *zap.Logger, metrics observability.Metrics) *Service {
	return &Service{
		catalog: catalog,
		creds:   creds,
		client:  client,
		logger:  logger,
		metrics: metrics,
	}
}

// PanelUsable reports whether orders routed to p can be sent.
func (s *Service) PanelUsable(p domain.Panel) bool {
	return s.creds.Usable(p)
}

// Plan validates req and resolves the ordered list of specs to dispatch:
// the comment order first, then fixed-quantity services in catalog order.
func (s *Service) Plan(req Request) (Plan, error) {
	plan := Plan{
		VideoLink: strings.TrimSpace(req.VideoLink),
		Comments:  domain.BuildCommentBatch(req.RawComments),
	}
	if plan.VideoLink == "" {
		return Plan{}, domain.ErrEmptyLink
	}

	if req.OrderComments {
		p := req.CommentPanel
		if p == "" {
			p = domain.PanelMTP
		}
		spec, ok := s.catalog.CommentService(p)
		if !ok {
			return Plan{}, fmt.Errorf("%w: %q offers no comment service", domain.ErrUnknownPanel, p)
		}
		plan.Specs = append(plan.Specs, spec)
	}

	selected := make(map[string]bool, len(req.Services))
	for _, key := range req.Services {
		spec, ok := s.catalog.Lookup(key)
		if !ok || spec.Mode != domain.FixedQuantity {
			return Plan{}, fmt.Errorf("%w: %q", domain.ErrUnknownService, key)
		}
		selected[key] = true
	}
	for _, spec := range s.catalog.Services() {
		if selected[spec.Key] {
			plan.Specs = append(plan.Specs, spec)
		}
	}

	if len(plan.Specs) == 0 {
		return Plan{}, domain.ErrNothingSelected
	}
	if req.OrderComments && plan.Comments.Count() == 0 {
		return Plan{}, domain.ErrNoComments
	}
	return plan, nil
}

// Dispatch sends every order of plan strictly in sequence. A failed order
// never stops the ones after it; each yields exactly one outcome.
func (s *Service) Dispatch(ctx context.Context, plan Plan, progress ProgressFunc) []domain.OrderOutcome {
	start := time.Now()
	total := len(plan.Specs)
	outcomes := make([]domain.OrderOutcome, 0, total)
	succeeded := 0

	for i, spec := range plan.Specs {
		o := s.dispatchOne(ctx, spec, plan)
		outcomes = append(outcomes, o)
		if o.Succeeded() {
			succeeded++
		}
		if progress != nil {
			progress(report.Step{Index: i, Total: total, Outcome: o})
		}
	}

	durMs := observability.SinceMs(start)
	s.metrics.ObserveBatch(total, succeeded, durMs)
	s.logger.Info("Batch dispatched",
		zap.String("link", plan.VideoLink),
		zap.Int("orders", total),
		zap.Int("succeeded", succeeded),
		zap.Float64("dur_ms", durMs),
	)
	return outcomes
}

// Submit plans and dispatches req.
func (s *Service) Submit(ctx context.Context, req Request, progress ProgressFunc) ([]domain.OrderOutcome, error) {
	plan, err := s.Plan(req)
	if err != nil {
		return nil, err
	}
	return s.Dispatch(ctx, plan, progress), nil
}

func (s *Service) dispatchOne(ctx context.Context, spec domain.ServiceOrderSpec, plan Plan) domain.OrderOutcome {
	cred, ok := s.creds.Lookup(spec.Panel)
	if !ok {
		s.logger.Warn("Order skipped, panel has no credentials",
			zap.String("service", spec.Key),
			zap.String("panel", string(spec.Panel)),
		)
		s.metrics.ObserveOrder(string(spec.Panel), false, 0)
		return localFailure(spec, fmt.Errorf("%w %s", domain.ErrMissingKey, spec.Panel.Name()))
	}
	if spec.Mode == domain.CommentList && plan.Comments.Count() == 0 {
		s.metrics.ObserveOrder(string(spec.Panel), false, 0)
		return localFailure(spec, errNoCommentLines)
	}

	form := panel.Payload(cred, spec, plan.VideoLink, plan.Comments)

	t0 := time.Now()
	raw, err := s.client.Post(ctx, cred.URL, form)
	durMs := observability.SinceMs(t0)
	if err != nil {
		raw = panel.ErrorResponse(err)
	}

	o := domain.OrderOutcome{Spec: spec, Raw: raw, Result: panel.Classify(raw)}
	s.metrics.ObserveOrder(string(spec.Panel), o.Succeeded(), durMs)

	if o.Succeeded() {
		s.logger.Info("Order placed",
			zap.String("service", spec.Key),
			zap.Int64("service_id", spec.ServiceID),
			zap.String("panel", string(spec.Panel)),
			zap.Any("order", o.OrderOrError()),
			zap.Float64("dur_ms", durMs),
		)
	} else {
		s.logger.Error("Order failed",
			zap.String("service", spec.Key),
			zap.Int64("service_id", spec.ServiceID),
			zap.String("panel", string(spec.Panel)),
			zap.Any("response", raw),
			zap.Float64("dur_ms", durMs),
		)
	}
	return o
}

func localFailure(spec domain.ServiceOrderSpec, err error) domain.OrderOutcome {
	raw := panel.ErrorResponse(err)
	return domain.OrderOutcome{Spec: spec, Raw: raw, Result: domain.Failure{Detail: raw}}
}
