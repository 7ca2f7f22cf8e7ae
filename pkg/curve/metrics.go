package curve

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/blockchainethdev/ethereum-util/pkg/log"
)

const (
	OpPointMultiply = "point_multiply"
	OpSign          = "sign"
	OpRecover       = "recover"
)

// Metrics holds the Prometheus collectors for engine operations.
type Metrics struct {
	Operations *prometheus.CounterVec
	Failures   *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

// NewMetricsWithRegistry creates the engine collectors and registers them with
// registry, or with the default registerer when registry is nil.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		Operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ethutil_curve_operations_total",
				Help: "The total number of curve operations",
			},
			[]string{"engine", "op"},
		),
		Failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ethutil_curve_failures_total",
				Help: "The total number of failed curve operations",
			},
			[]string{"engine", "op"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ethutil_curve_operation_duration_seconds",
				Help:    "Duration of curve operations",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"engine", "op"},
		),
	}
}

var _ Engine = (*instrumented)(nil)

type instrumented struct {
	next    Engine
	metrics *Metrics
	logger  log.Logger
}

// Instrument wraps engine so that every call is counted and timed in metrics.
// Failures are also logged at debug level. A nil metrics gets collectors on a
// private registry of its own.
func Instrument(engine Engine, metrics *Metrics, logger log.Logger) Engine {
	if metrics == nil {
		metrics = NewMetricsWithRegistry(prometheus.NewRegistry())
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &instrumented{
		next:    engine,
		metrics: metrics,
		logger:  logger.WithName("curve").WithKV("engine", engine.Name()),
	}
}

func (e *instrumented) Name() string { return e.next.Name() }

func (e *instrumented) PointMultiply(privateKey []byte) ([]byte, error) {
	defer e.observe(OpPointMultiply, time.Now())
	pub, err := e.next.PointMultiply(privateKey)
	e.record(OpPointMultiply, err)
	return pub, err
}

func (e *instrumented) SignDeterministic(digest, privateKey []byte) ([]byte, error) {
	defer e.observe(OpSign, time.Now())
	sig, err := e.next.SignDeterministic(digest, privateKey)
	e.record(OpSign, err)
	return sig, err
}

func (e *instrumented) RecoverPoint(digest, signature []byte) ([]byte, error) {
	defer e.observe(OpRecover, time.Now())
	pub, err := e.next.RecoverPoint(digest, signature)
	e.record(OpRecover, err)
	return pub, err
}

func (e *instrumented) observe(op string, start time.Time) {
	e.metrics.Duration.WithLabelValues(e.next.Name(), op).Observe(time.Since(start).Seconds())
}

func (e *instrumented) record(op string, err error) {
	e.metrics.Operations.WithLabelValues(e.next.Name(), op).Inc()
	if err != nil {
		e.metrics.Failures.WithLabelValues(e.next.Name(), op).Inc()
		e.logger.Debug("curve operation failed", "op", op, "error", err)
	}
}
