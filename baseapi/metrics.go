package baseapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "chainapi"

type metrics struct {
	calls    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "base",
			Name:      "calls_total",
			Help:      "number of RPC calls issued to the node",
		}, []string{"method"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "base",
			Name:      "call_errors_total",
			Help:      "number of RPC calls that failed",
		}, []string{"method"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "base",
			Name:      "call_duration_seconds",
			Help:      "time spent waiting for RPC responses",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.calls, m.errors, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// otherMethod labels calls to methods outside the Client's own set, so
// arbitrary Request method names cannot grow the label space.
const otherMethod = "other"

var knownMethods = map[string]bool{
	MethodFinalizedHead:  true,
	MethodHeader:         true,
	MethodBlockHash:      true,
	MethodBlock:          true,
	MethodSubmit:         true,
	MethodMetadata:       true,
	MethodRuntimeVersion: true,
	MethodRPCMethods:     true,
}

func methodLabel(method string) string {
	if knownMethods[method] {
		return method
	}
	return otherMethod
}

func (m *metrics) observe(method string, start time.Time, err error) {
	method = methodLabel(method)
	m.calls.WithLabelValues(method).Inc()
	m.duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		m.errors.WithLabelValues(method).Inc()
	}
}
