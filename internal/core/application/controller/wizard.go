package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"moving/internal/core/application/usecases/commands"
	"moving/internal/core/application/usecases/queries"
	"moving/internal/core/domain/model/draft"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/region"
	"moving/internal/core/domain/model/wizard"
	"moving/internal/core/ports"
)

// PricingEngine prices a complete request.
type PricingEngine interface {
	Handle(ctx context.Context, query queries.EstimatePriceQuery) (kernel.Price, error)
}

// OrderRegistry stores a confirmed request and returns the order id.
type OrderRegistry interface {
	Handle(ctx context.Context, cmd commands.RegisterOrderCommand) (kernel.UUID, error)
}

// Wizard is the quote wizard state machine. It is safe for concurrent use;
// all per-customer state travels in Session.
type Wizard struct {
	regions  ports.RegionDirectory
	pricing  PricingEngine
	registry OrderRegistry
	rules    *draft.Rules
	observer Observer
	logger   *slog.Logger
	now      func() time.Time
}

type Option func(*Wizard)

// WithObserver reports transitions and collaborator calls to o.
func WithObserver(o Observer) Option {
	return func(w *Wizard) { w.observer = o }
}

// WithClock replaces time.Now for date validation and timing.
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) { w.now = now }
}

func NewWizard(
	regions ports.RegionDirectory,
	pricing PricingEngine,
	registry OrderRegistry,
	logger *slog.Logger,
	opts ...Option,
) *Wizard {
	w := &Wizard{
		regions:  regions,
		pricing:  pricing,
		registry: registry,
		observer: nopObserver{},
		logger:   logger.With("component", "wizard"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.rules = draft.NewRules(w.now)
	return w
}

// Top renders the landing page.
func (w *Wizard) Top(s Session) Result {
	return Result{View: View{Screen: wizard.Top, Draft: s.Draft}, Session: s}
}

// Enter renders an input screen with the session's draft, or an empty one
// for a new session.
func (w *Wizard) Enter(ctx context.Context, s Session, screen wizard.Screen) (Result, error) {
	if screen != wizard.Input && screen != wizard.InputDetail {
		return Result{}, fmt.Errorf("%s is not an input screen", screen)
	}
	req := w.begin(ctx, s)
	return req.show(screen, draft.Outcome{})
}

// Submit dispatches one posted form. actions are the submitted parameter
// names; exactly one of them must name an action valid for endpoint.
func (w *Wizard) Submit(
	ctx context.Context,
	s Session,
	endpoint wizard.Endpoint,
	actions []string,
	form draft.Form,
) (Result, error) {
	intent, err := wizard.ParseIntent(actions)
	if err == nil && !accepts(endpoint, intent) {
		err = fmt.Errorf("%w: %s is not accepted by %s", wizard.ErrUnrecognizedAction, intent, endpoint)
	}
	if err != nil {
		return w.reject(ctx, s, endpoint, err)
	}

	if intent == wizard.BackToTop {
		w.observer.Transition(endpoint, intent, wizard.Top, false)
		return Result{View: View{Screen: wizard.Top}, Session: NewSession(), Discard: true}, nil
	}

	req := w.begin(ctx, s.apply(form))

	var res Result
	switch intent { //nolint:exhaustive // accepts() filtered the rest
	case wizard.Confirm:
		if endpoint == wizard.EndpointSubmit {
			res, err = req.confirmFromInput()
		} else {
			res, err = req.price(wizard.Personal, wizard.Confirm)
		}
	case wizard.BackToInput:
		res, err = req.show(wizard.Input, draft.Outcome{})
	case wizard.Calculate:
		res, err = req.price(wizard.Personal, wizard.Personal)
	case wizard.BackToConfirm:
		res, err = req.backToConfirm()
	case wizard.CompleteOrder:
		res, err = req.complete()
	}
	if err != nil {
		return Result{}, err
	}

	w.observer.Transition(endpoint, intent, res.View.Screen, false)
	return res, nil
}

func (w *Wizard) reject(ctx context.Context, s Session, endpoint wizard.Endpoint, cause error) (Result, error) {
	w.logger.WarnContext(ctx, "rejected submission", "endpoint", endpoint, "error", cause)

	screen := endpoint.Origin()
	if screen == wizard.Unknown {
		screen = wizard.Top
	}
	res, err := w.begin(ctx, s).show(screen, draft.Outcome{})
	if err != nil {
		return Result{}, err
	}
	res.View.Rejected = true
	w.observer.Transition(endpoint, wizard.NoIntent, screen, true)
	return res, nil
}

func accepts(endpoint wizard.Endpoint, intent wizard.Intent) bool {
	switch endpoint {
	case wizard.EndpointSubmit:
		return intent == wizard.BackToTop || intent == wizard.Confirm
	case wizard.EndpointPersonal:
		return intent == wizard.BackToTop || intent == wizard.BackToInput ||
			intent == wizard.Calculate || intent == wizard.Confirm
	case wizard.EndpointOrder:
		return intent == wizard.BackToTop || intent == wizard.BackToConfirm || intent == wizard.CompleteOrder
	default:
		return false
	}
}

// request carries one submission through the wizard. The region list is
// loaded at most once.
type request struct {
	*Wizard
	ctx     context.Context
	session Session
	regions region.List
}

func (w *Wizard) begin(ctx context.Context, s Session) *request {
	return &request{Wizard: w, ctx: ctx, session: s}
}

func (r *request) regionList() (region.List, error) {
	if r.regions != nil {
		return r.regions, nil
	}
	regions, err := r.Wizard.regions.ListAll(r.ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookupUnavailable, err)
	}
	r.regions = regions
	return regions, nil
}

func (r *request) check(scope draft.Scope) (draft.Outcome, error) {
	regions, err := r.regionList()
	if err != nil {
		return draft.Outcome{}, err
	}
	return r.rules.Check(r.session.Draft, regions, scope), nil
}

// show renders screen with the current draft, attaching regions where the
// screen needs them and the held quote on price-bearing screens.
func (r *request) show(screen wizard.Screen, errs draft.Outcome) (Result, error) {
	view := View{Screen: screen, Draft: r.session.Draft, Errors: errs}
	if screen.ShowsRegions() {
		regions, err := r.regionList()
		if err != nil {
			return Result{}, err
		}
		view.Regions = regions
	}
	if screen == wizard.Personal || screen == wizard.Confirm {
		view.Price = r.session.Quote
	}
	return Result{View: view, Session: r.session}, nil
}

// confirmFromInput gates the input group only. A request whose personal block
// is not filled in yet continues to the personal screen without errors.
func (r *request) confirmFromInput() (Result, error) {
	move, err := r.check(draft.ScopeMove)
	if err != nil {
		return Result{}, err
	}
	if move.HasErrors() {
		return r.show(wizard.Input, move)
	}

	full, err := r.check(draft.ScopeFull)
	if err != nil {
		return Result{}, err
	}
	if full.HasErrors() {
		return r.show(wizard.Personal, draft.Outcome{})
	}

	return r.price(wizard.Input, wizard.Confirm)
}

// price gates the full draft, prices it and shows target. On gate failure
// origin is redisplayed.
func (r *request) price(origin, target wizard.Screen) (Result, error) {
	outcome, err := r.check(draft.ScopeFull)
	if err != nil {
		return Result{}, err
	}
	if outcome.HasErrors() {
		return r.show(origin, outcome)
	}

	details, err := draft.Complete(r.session.Draft)
	if err != nil {
		return Result{}, err
	}
	p, err := r.estimate(details)
	if err != nil {
		return Result{}, err
	}

	r.session = r.session.quoted(p)
	return r.show(target, draft.Outcome{})
}

func (r *request) estimate(details draft.Details) (kernel.Price, error) {
	query, err := queries.NewEstimatePriceQuery(details)
	if err != nil {
		return kernel.Price{}, err
	}

	started := r.now()
	p, err := r.pricing.Handle(r.ctx, query)
	r.observer.Priced(r.now().Sub(started), err)
	if err != nil {
		return kernel.Price{}, fmt.Errorf("%w: %w", ErrPricingFailure, err)
	}
	if err = p.Validate(); err != nil {
		return kernel.Price{}, fmt.Errorf("%w: %w", ErrPricingFailure, err)
	}
	return p, nil
}

// backToConfirm re-attaches the held quote. Without one (the draft changed
// or the session was lost) the request is gated and priced again.
func (r *request) backToConfirm() (Result, error) {
	if r.session.Quote != nil {
		return r.show(wizard.Confirm, draft.Outcome{})
	}
	return r.price(wizard.Confirm, wizard.Confirm)
}

func (r *request) complete() (Result, error) {
	outcome, err := r.check(draft.ScopeFull)
	if err != nil {
		return Result{}, err
	}
	if outcome.HasErrors() {
		return r.show(wizard.Confirm, outcome)
	}

	details, err := draft.Complete(r.session.Draft)
	if err != nil {
		return Result{}, err
	}

	if r.session.Quote == nil {
		p, priceErr := r.estimate(details)
		if priceErr != nil {
			return Result{}, priceErr
		}
		r.session = r.session.quoted(p)
	}

	cmd, err := commands.NewRegisterOrderCommand(r.session.Token, details, *r.session.Quote)
	if err != nil {
		return Result{}, err
	}

	id, err := r.registry.Handle(r.ctx, cmd)
	r.observer.Registered(err)
	if err != nil {
		r.logger.ErrorContext(r.ctx, "order registration failed",
			"session", r.session.Token.String(),
			"error", errors.Join(ErrRegistrationFailure, err))

		res, showErr := r.show(wizard.Confirm, draft.Outcome{})
		if showErr != nil {
			return Result{}, showErr
		}
		res.View.Notice = RegistrationFailedNotice
		return res, nil
	}

	r.logger.InfoContext(r.ctx, "order registered", "order_id", id.String())
	return Result{
		View:    View{Screen: wizard.Complete, Draft: r.session.Draft, Price: r.session.Quote, OrderID: id},
		Session: NewSession(),
		Discard: true,
	}, nil
}
