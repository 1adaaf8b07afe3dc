package grpc

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc/status"

	"UserCenter/internal/shared/service"
)

// Metrics 是 RPC 级别的 prometheus 指标。
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "usercenter",
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Unary RPCs handled, by full method and status code.",
		}, []string{"path", "code"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "usercenter",
			Subsystem: "rpc",
			Name:      "request_duration_seconds",
			Help:      "Unary RPC latency, by full method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
		inFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "usercenter",
			Subsystem: "rpc",
			Name:      "in_flight",
			Help:      "Unary RPCs currently in flight.",
		}),
	}
}

func (m *Metrics) Layer() service.Layer[UnaryCall, any] {
	return service.LayerFunc[UnaryCall, any](func(inner Service) Service {
		return &metricsService{inner: inner, m: m}
	})
}

// metricsService 在 Call 里同步调用内层，不需要交换句柄。
type metricsService struct {
	inner Service
	m     *Metrics
}

func (s *metricsService) PollReady(w service.Waker) (service.Poll, error) {
	return s.inner.PollReady(w)
}

func (s *metricsService) Call(ctx context.Context, call UnaryCall) *service.Future[any] {
	start := time.Now()
	s.m.inFlight.Inc()
	fut := s.inner.Call(ctx, call)

	m := s.m
	return service.Go(ctx, func(ctx context.Context) (any, error) {
		defer m.inFlight.Dec()
		resp, err := fut.Await(ctx)
		m.requests.WithLabelValues(call.FullMethod, status.Code(toStatus(err)).String()).Inc()
		m.duration.WithLabelValues(call.FullMethod).Observe(time.Since(start).Seconds())
		return resp, err
	})
}

func (s *metricsService) Clone() Service {
	return &metricsService{inner: s.inner.Clone(), m: s.m}
}

func (s *metricsService) Release() {
	service.Release(s.inner)
}
