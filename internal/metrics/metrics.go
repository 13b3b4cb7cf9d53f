package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Ledger Metrics
	TransactionsCreated *prometheus.CounterVec
	TransactionErrors   *prometheus.CounterVec
	PointsDelta         *prometheus.CounterVec
	CurrentUserPoints   *prometheus.GaugeVec

	// Database Metrics
	DBQueryDuration    *prometheus.HistogramVec
	DBQueriesTotal     *prometheus.CounterVec
	DBConnectionsInUse prometheus.Gauge
	DBConnectionsIdle  prometheus.Gauge
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalbox_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "loyalbox_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "loyalbox_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		TransactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalbox_transactions_created_total",
				Help: "Total number of ledger transactions recorded",
			},
			[]string{"type"},
		),
		TransactionErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalbox_transaction_errors_total",
				Help: "Total number of rejected or failed ledger operations",
			},
			[]string{"type", "code"},
		),
		PointsDelta: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalbox_points_total",
				Help: "Total points moved through the ledger",
			},
			[]string{"type"},
		),
		CurrentUserPoints: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "loyalbox_current_user_points",
				Help: "Current point balances per user",
			},
			[]string{"user_id"},
		),
		DBQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "loyalbox_db_query_duration_seconds",
				Help:    "Duration of database queries in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBQueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalbox_db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"operation", "table", "status"},
		),
		DBConnectionsInUse: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "loyalbox_db_connections_in_use",
				Help: "Number of database connections currently in use",
			},
		),
		DBConnectionsIdle: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "loyalbox_db_connections_idle",
				Help: "Number of idle database connections",
			},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordTransaction(txType string, points int64) {
	m.TransactionsCreated.WithLabelValues(txType).Inc()
	m.PointsDelta.WithLabelValues(txType).Add(float64(points))
}

func (m *Metrics) RecordTransactionError(txType, code string) {
	m.TransactionErrors.WithLabelValues(txType, code).Inc()
}

func (m *Metrics) UpdateUserPoints(userID string, points int64) {
	m.CurrentUserPoints.WithLabelValues(userID).Set(float64(points))
}

func (m *Metrics) RecordDBQuery(operation, table, status string, duration time.Duration) {
	m.DBQueriesTotal.WithLabelValues(operation, table, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}
