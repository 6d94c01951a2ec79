package order

import (
	"context"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/xenking/mofer-pos/internal/domain/audit"
	"github.com/xenking/mofer-pos/internal/domain/catalog"
	"github.com/xenking/mofer-pos/internal/domain/modifier"
	"github.com/xenking/mofer-pos/internal/domain/pricing"
)

// MaxExternalRefLength bounds the caller-supplied idempotency reference.
const MaxExternalRefLength = 64

const instrumentationName = "github.com/xenking/mofer-pos/internal/domain/order"

// SubmitRequest is a cart submitted by a terminal.
type SubmitRequest struct {
	OrganizationID   uuid.UUID
	LocationID       uuid.UUID
	ExternalOrderRef string
	TaxRate          decimal.Decimal
	Lines            []LineRequest
}

// LineRequest is one requested product with its selected modifier options.
type LineRequest struct {
	ProductID         uuid.UUID
	Quantity          int
	SelectedOptionIDs []uuid.UUID
}

// SubmitResult is the persisted order and its current payment. Replayed is
// set when the order already existed for the external reference.
type SubmitResult struct {
	Order    Order
	Payment  Payment
	Replayed bool
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for audit stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithPageLimits sets the default and maximum history page sizes.
func WithPageLimits(defaultSize, maxSize int) Option {
	return func(s *Service) {
		s.defaultPageSize = defaultSize
		s.maxPageSize = maxSize
	}
}

// WithMeterProvider sets the meter provider for submission metrics.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *Service) { s.meterProvider = mp }
}

// WithTracerProvider sets the tracer provider for submission spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) { s.tracerProvider = tp }
}

// Service coordinates order intake: idempotency, catalog validation,
// pricing and persistence.
type Service struct {
	catalog catalog.Repository
	orders  Repository

	now             func() time.Time
	defaultPageSize int
	maxPageSize     int
	meterProvider   metric.MeterProvider
	tracerProvider  trace.TracerProvider

	tracer      trace.Tracer
	submissions metric.Int64Counter
}

// NewService creates an order Service with the given dependencies.
func NewService(catalogRepo catalog.Repository, orders Repository, opts ...Option) (*Service, error) {
	s := &Service{
		catalog:         catalogRepo,
		orders:          orders,
		now:             time.Now,
		defaultPageSize: 25,
		maxPageSize:     200,
		meterProvider:   metricnoop.NewMeterProvider(),
		tracerProvider:  tracenoop.NewTracerProvider(),
	}
	for _, o := range opts {
		o(s)
	}

	s.tracer = s.tracerProvider.Tracer(instrumentationName)
	meter := s.meterProvider.Meter(instrumentationName)
	submissions, err := meter.Int64Counter("pos.order.submissions",
		metric.WithDescription("Order submissions by outcome"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create submissions counter")
	}
	s.submissions = submissions
	return s, nil
}

func (s *Service) record(ctx context.Context, outcome string) {
	s.submissions.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// Submit creates the order for req exactly once per external reference.
//
// A repeated reference returns the stored order and its latest payment
// without re-pricing; the new lines are ignored. When a concurrent
// submission wins the insert, the winner's order is returned.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	ctx, span := s.tracer.Start(ctx, "order.Submit", trace.WithAttributes(
		attribute.String("pos.organization_id", req.OrganizationID.String()),
		attribute.String("pos.location_id", req.LocationID.String()),
		attribute.Int("pos.lines", len(req.Lines)),
	))
	defer span.End()

	res, outcome, err := s.submit(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}
	s.record(ctx, outcome)
	return res, err
}

func (s *Service) submit(ctx context.Context, req SubmitRequest) (*SubmitResult, string, error) {
	lg := zctx.From(ctx)

	if err := validateSubmit(req); err != nil {
		return nil, "rejected", err
	}

	existing, err := s.orders.FindByExternalRef(ctx, req.OrganizationID, req.LocationID, req.ExternalOrderRef)
	switch {
	case err == nil:
		res, err := s.replay(ctx, existing)
		if err != nil {
			return nil, "failed", err
		}
		lg.Info("Returning existing order for external reference",
			zap.Stringer("order_id", existing.ID),
			zap.String("external_order_ref", req.ExternalOrderRef),
		)
		return res, "replayed", nil
	case !errors.Is(err, ErrNotFound):
		return nil, "failed", errors.Wrap(err, "find order by external ref")
	}

	o, err := s.build(ctx, req)
	if err != nil {
		return nil, "rejected", err
	}

	if err := s.orders.Create(ctx, o); err != nil {
		if !errors.Is(err, ErrDuplicateExternalRef) {
			return nil, "failed", errors.Wrap(err, "create order")
		}

		winner, ferr := s.orders.FindByExternalRef(ctx, req.OrganizationID, req.LocationID, req.ExternalOrderRef)
		if ferr != nil {
			return nil, "failed", errors.Wrap(ferr, "find order after conflict")
		}
		res, rerr := s.replay(ctx, winner)
		if rerr != nil {
			return nil, "failed", rerr
		}
		lg.Info("Concurrent submission won, returning its order",
			zap.Stringer("order_id", winner.ID),
			zap.String("external_order_ref", req.ExternalOrderRef),
		)
		return res, "recovered", nil
	}

	lg.Info("Order created",
		zap.Stringer("order_id", o.ID),
		zap.String("total", o.Total.StringFixed(2)),
		zap.Int("items", len(o.Items)),
	)
	return &SubmitResult{Order: *o, Payment: o.Payments[0]}, "created", nil
}

func (s *Service) replay(ctx context.Context, o *Order) (*SubmitResult, error) {
	p, err := s.orders.LatestPayment(ctx, o.ID)
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			return nil, errors.Errorf("order %s has no payment", o.ID)
		}
		return nil, errors.Wrap(err, "get latest payment")
	}
	return &SubmitResult{Order: *o, Payment: *p, Replayed: true}, nil
}

func validateSubmit(req SubmitRequest) error {
	if req.OrganizationID == uuid.Nil {
		return &ValidationError{Field: "organizationId", Reason: "is required"}
	}
	if req.LocationID == uuid.Nil {
		return &ValidationError{Field: "locationId", Reason: "is required"}
	}
	if strings.TrimSpace(req.ExternalOrderRef) == "" {
		return &ValidationError{Field: "externalOrderRef", Reason: "is required"}
	}
	if utf8.RuneCountInString(req.ExternalOrderRef) > MaxExternalRefLength {
		return &ValidationError{Field: "externalOrderRef", Reason: "must be at most 64 characters"}
	}
	if len(req.Lines) == 0 {
		return pricing.ErrEmptyOrder
	}
	if !pricing.ValidTaxRate(req.TaxRate) {
		return pricing.ErrInvalidTaxRate
	}
	return nil
}

// build validates the cart against the catalog and assembles the priced
// order graph. Nothing is written.
func (s *Service) build(ctx context.Context, req SubmitRequest) (*Order, error) {
	ok, err := s.catalog.LocationExists(ctx, req.OrganizationID, req.LocationID)
	if err != nil {
		return nil, errors.Wrap(err, "check location")
	}
	if !ok {
		return nil, ErrLocationNotFound
	}

	ids := distinctProductIDs(req.Lines)
	products, err := s.catalog.ProductsByIDs(ctx, req.OrganizationID, req.LocationID, ids)
	if err != nil {
		return nil, errors.Wrap(err, "get products")
	}
	byID := make(map[uuid.UUID]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	if len(byID) != len(ids) {
		var missing []uuid.UUID
		for _, id := range ids {
			if _, ok := byID[id]; !ok {
				missing = append(missing, id)
			}
		}
		return nil, &ProductNotFoundError{ProductIDs: missing}
	}

	lines := make([]pricing.Line, len(req.Lines))
	selections := make([][]modifier.Selection, len(req.Lines))
	for i, l := range req.Lines {
		p := byID[l.ProductID]
		if !p.IsActive {
			return nil, &LineError{Index: i, Err: &InactiveProductError{ProductID: p.ID, Name: p.Name}}
		}
		if l.Quantity < 1 {
			return nil, &LineError{Index: i, Err: &pricing.InvalidQuantityError{Line: i, Quantity: l.Quantity}}
		}

		sel, err := modifier.Resolve(p, l.SelectedOptionIDs)
		if err != nil {
			return nil, &LineError{Index: i, Err: err}
		}
		selections[i] = sel

		deltas := make([]decimal.Decimal, len(sel))
		for j, opt := range sel {
			deltas[j] = opt.PriceDelta
		}
		lines[i] = pricing.Line{
			Quantity:      l.Quantity,
			BaseUnitPrice: p.BasePrice,
			Deltas:        deltas,
		}
	}

	priced, err := pricing.Calculate(lines, req.TaxRate)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	o := &Order{
		ID:               uuid.New(),
		OrganizationID:   req.OrganizationID,
		LocationID:       req.LocationID,
		ExternalOrderRef: req.ExternalOrderRef,
		Status:           StatusDraft,
		Subtotal:         priced.Subtotal,
		TaxTotal:         priced.TaxTotal,
		Total:            priced.Total,
		Items:            make([]Item, len(req.Lines)),
		Fields:           audit.New(now),
	}
	for i, l := range req.Lines {
		pl := priced.Lines[i]
		item := Item{
			ID:                uuid.New(),
			OrderID:           o.ID,
			ProductID:         l.ProductID,
			ProductName:       byID[l.ProductID].Name,
			Quantity:          pl.Quantity,
			BaseUnitPrice:     pl.BaseUnitPrice,
			ModifierUnitTotal: pl.ModifierUnitTotal,
			FinalUnitPrice:    pl.FinalUnitPrice,
			LineTotal:         pl.LineTotal,
			SelectedOptions:   make([]SelectedOption, len(selections[i])),
			Fields:            audit.New(now),
		}
		for j, sel := range selections[i] {
			item.SelectedOptions[j] = SelectedOption{
				ID:          uuid.New(),
				OrderItemID: item.ID,
				GroupID:     sel.GroupID,
				OptionID:    sel.OptionID,
				GroupName:   sel.GroupName,
				OptionName:  sel.OptionName,
				PriceDelta:  sel.PriceDelta,
				Fields:      audit.New(now),
			}
		}
		o.Items[i] = item
	}
	o.Payments = []Payment{{
		ID:      uuid.New(),
		OrderID: o.ID,
		Method:  MethodCard,
		Status:  PaymentPending,
		Amount:  o.Total,
		Fields:  audit.New(now),
	}}
	return o, nil
}

func distinctProductIDs(lines []LineRequest) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(lines))
	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ProductID]; ok {
			continue
		}
		seen[l.ProductID] = struct{}{}
		ids = append(ids, l.ProductID)
	}
	return ids
}

// Get returns the stored order graph.
func (s *Service) Get(ctx context.Context, orgID, orderID uuid.UUID) (*Order, error) {
	if orgID == uuid.Nil {
		return nil, &ValidationError{Field: "organizationId", Reason: "is required"}
	}
	o, err := s.orders.Get(ctx, orgID, orderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "get order")
	}
	return o, nil
}

// List returns order history for an organization, newest first.
func (s *Service) List(ctx context.Context, q ListQuery) (*ListPage, error) {
	if q.OrganizationID == uuid.Nil {
		return nil, &ValidationError{Field: "organizationId", Reason: "is required"}
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = s.defaultPageSize
	}
	if q.PageSize > s.maxPageSize {
		q.PageSize = s.maxPageSize
	}
	if q.Page > math.MaxInt32/q.PageSize {
		return nil, &ValidationError{Field: "page", Reason: "is out of range"}
	}
	if q.From != nil && q.To != nil && !q.From.Before(*q.To) {
		return nil, &ValidationError{Field: "from", Reason: "must be earlier than 'to'"}
	}

	ok, err := s.catalog.OrganizationExists(ctx, q.OrganizationID)
	if err != nil {
		return nil, errors.Wrap(err, "check organization")
	}
	if !ok {
		return nil, ErrOrganizationNotFound
	}
	if q.LocationID != nil {
		ok, err := s.catalog.LocationExists(ctx, q.OrganizationID, *q.LocationID)
		if err != nil {
			return nil, errors.Wrap(err, "check location")
		}
		if !ok {
			return nil, ErrLocationNotFound
		}
	}

	page, err := s.orders.List(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	page.Query = q
	return page, nil
}
