package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal *prometheus.CounterVec
	formsCreated      *prometheus.CounterVec
	responsesTotal    prometheus.Counter
	viewsTotal        *prometheus.CounterVec
	registerOnce      sync.Once
)

// Register initializes Prometheus metrics on the default registry.
func Register() {
	registerOnce.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "surveys",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed by the survey API.",
		}, []string{"method", "path", "status"})
		formsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "surveys",
			Name:      "forms_created_total",
			Help:      "Forms created, by initial lifecycle status.",
		}, []string{"status"})
		responsesTotal = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "surveys",
			Name:      "survey_responses_total",
			Help:      "Survey responses accepted by the form store.",
		})
		viewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "surveys",
			Name:      "form_views_total",
			Help:      "Form view events, split by whether they were counted.",
		}, []string{"counted"})
	})
}

// IncRequest increments the http_requests_total counter with the given labels.
func IncRequest(method, path string, status int) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

func IncFormCreated(status string) {
	if formsCreated == nil {
		return
	}
	formsCreated.WithLabelValues(status).Inc()
}

func IncResponse() {
	if responsesTotal == nil {
		return
	}
	responsesTotal.Inc()
}

func IncView(counted bool) {
	if viewsTotal == nil {
		return
	}
	viewsTotal.WithLabelValues(strconv.FormatBool(counted)).Inc()
}
