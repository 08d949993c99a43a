package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ClinicMetrics exposes counters for billing, payments, appointments and recommendations.
type ClinicMetrics struct {
	billsIssued      *prometheus.CounterVec
	billedAmount     *prometheus.CounterVec
	paymentsTotal    *prometheus.CounterVec
	appointments     *prometheus.CounterVec
	recommendations  *prometheus.CounterVec
	archiveFailures  *prometheus.CounterVec
	requestLatencies *prometheus.HistogramVec
}

func NewClinicMetrics(reg prometheus.Registerer) *ClinicMetrics {
	m := &ClinicMetrics{
		billsIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meditrack",
			Subsystem: "billing",
			Name:      "bills_issued_total",
			Help:      "Total bills issued",
		}, []string{"strategy"}),
		billedAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meditrack",
			Subsystem: "billing",
			Name:      "billed_amount_total",
			Help:      "Sum of amount due over issued bills",
		}, []string{"currency"}),
		paymentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meditrack",
			Subsystem: "billing",
			Name:      "payments_total",
			Help:      "Total bill payments by outcome",
		}, []string{"status"}),
		appointments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meditrack",
			Subsystem: "appointments",
			Name:      "transitions_total",
			Help:      "Appointment status transitions",
		}, []string{"status"}),
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meditrack",
			Subsystem: "recommendations",
			Name:      "total",
			Help:      "Recommendations by suggested specialization",
		}, []string{"specialization", "doctor_found"}),
		archiveFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meditrack",
			Subsystem: "billing",
			Name:      "archive_failures_total",
			Help:      "Failed exports to the billing archive",
		}, []string{"kind"}),
		requestLatencies: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "meditrack",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.billsIssued, m.billedAmount, m.paymentsTotal, m.appointments,
		m.recommendations, m.archiveFailures, m.requestLatencies)
	return m
}

func (m *ClinicMetrics) ObserveBillIssued(strategy, currency string, amountDue float64) {
	if m == nil {
		return
	}
	m.billsIssued.WithLabelValues(strategy).Inc()
	m.billedAmount.WithLabelValues(currency).Add(amountDue)
}

func (m *ClinicMetrics) ObservePayment(status string) {
	if m == nil {
		return
	}
	m.paymentsTotal.WithLabelValues(status).Inc()
}

func (m *ClinicMetrics) ObserveAppointment(status string) {
	if m == nil {
		return
	}
	m.appointments.WithLabelValues(status).Inc()
}

func (m *ClinicMetrics) ObserveRecommendation(specialization string, doctorFound bool) {
	if m == nil {
		return
	}
	found := "false"
	if doctorFound {
		found = "true"
	}
	m.recommendations.WithLabelValues(specialization, found).Inc()
}

func (m *ClinicMetrics) ObserveArchiveFailure(kind string) {
	if m == nil {
		return
	}
	m.archiveFailures.WithLabelValues(kind).Inc()
}

func (m *ClinicMetrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestLatencies.WithLabelValues(method, route, status).Observe(seconds)
}
