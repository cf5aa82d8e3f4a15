package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeInvalid = "invalid"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HolidayFetchTotal   *prometheus.CounterVec
	SubmissionsTotal    *prometheus.CounterVec
	SubmissionDuration  prometheus.Histogram
	FormSessionsActive  prometheus.Gauge
}

// New создает и регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном registerer
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		HolidayFetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "holiday_fetch_total",
			Help:        "Holiday provider fetches by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		SubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "application_submissions_total",
			Help:        "Application submissions by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		SubmissionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "application_submission_duration_seconds",
			Help:        "Duration of the call to the submission endpoint",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}),

		FormSessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "form_sessions_active",
			Help:        "Number of form sessions held in memory",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HolidayFetchTotal,
		m.SubmissionsTotal,
		m.SubmissionDuration,
		m.FormSessionsActive,
	)

	return m
}

// ObserveHolidayFetch учитывает результат загрузки праздников
func (m *Metrics) ObserveHolidayFetch(outcome string) {
	if m == nil {
		return
	}
	m.HolidayFetchTotal.WithLabelValues(outcome).Inc()
}

// ObserveSubmission учитывает результат отправки анкеты
func (m *Metrics) ObserveSubmission(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.SubmissionsTotal.WithLabelValues(outcome).Inc()
	if seconds > 0 {
		m.SubmissionDuration.Observe(seconds)
	}
}

// SetActiveSessions выставляет количество активных сессий формы
func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.FormSessionsActive.Set(float64(n))
}
