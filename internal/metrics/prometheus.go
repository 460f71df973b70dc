package metrics

import (
	"strconv"
	"time"

	"moving/internal/core/domain/model/wizard"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker"
)

// Metrics holds the service collectors. It implements controller.Observer and
// resilience.StateListener.
type Metrics struct {
	// TransitionsTotal counts wizard submissions by endpoint, action and the
	// screen shown in response.
	TransitionsTotal *prometheus.CounterVec

	// PricingDuration tracks pricing engine latency by outcome
	PricingDuration *prometheus.HistogramVec

	// RegistrationsTotal counts order registrations by outcome
	RegistrationsTotal *prometheus.CounterVec

	// CircuitBreakerState tracks circuit breaker state (0=closed, 1=open, 2=half-open)
	CircuitBreakerState *prometheus.GaugeVec

	// RequestsTotal tracks total HTTP requests
	RequestsTotal *prometheus.CounterVec

	// RequestDuration tracks HTTP request duration
	RequestDuration *prometheus.HistogramVec
}

// New registers every collector on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wizard_transitions_total",
				Help: "Total number of wizard submissions",
			},
			[]string{"endpoint", "action", "screen", "rejected"},
		),
		PricingDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wizard_pricing_duration_seconds",
				Help:    "Pricing engine call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		RegistrationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wizard_registrations_total",
				Help: "Total number of order registrations",
			},
			[]string{"outcome"},
		),
		CircuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"circuit_name"},
		),
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

func (m *Metrics) Transition(endpoint wizard.Endpoint, intent wizard.Intent, to wizard.Screen, rejected bool) {
	m.TransitionsTotal.WithLabelValues(
		string(endpoint),
		intent.String(),
		to.String(),
		strconv.FormatBool(rejected),
	).Inc()
}

func (m *Metrics) Priced(elapsed time.Duration, err error) {
	m.PricingDuration.WithLabelValues(outcome(err)).Observe(elapsed.Seconds())
}

func (m *Metrics) Registered(err error) {
	m.RegistrationsTotal.WithLabelValues(outcome(err)).Inc()
}

func (m *Metrics) BreakerState(name string, state gobreaker.State) {
	var value float64
	switch state {
	case gobreaker.StateClosed:
		value = 0
	case gobreaker.StateOpen:
		value = 1
	case gobreaker.StateHalfOpen:
		value = 2
	}
	m.CircuitBreakerState.WithLabelValues(name).Set(value)
}

// Middleware records request count and latency per route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.RequestsTotal.WithLabelValues(
				c.Request().Method,
				route,
				strconv.Itoa(c.Response().Status),
			).Inc()
			m.RequestDuration.WithLabelValues(
				c.Request().Method,
				route,
			).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}

func outcome(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
