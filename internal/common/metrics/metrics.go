package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	PriceEstimates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deal_price_estimates_total",
			Help: "Price estimates produced, by condition and depreciation bucket",
		},
		[]string{"condition", "bucket"},
	)

	EstimatedMedianPrice = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "deal_estimated_median_price_dollars",
			Help:    "Distribution of estimated median prices",
			Buckets: []float64{5000, 10000, 20000, 30000, 40000, 60000, 80000, 120000, 200000, 400000},
		},
		[]string{"condition"},
	)

	AnalysesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deal_analyses_failed_total",
			Help: "Deal analyses that failed, by failing stage",
		},
		[]string{"stage"},
	)

	AccessGrants = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deal_access_grants_total",
			Help: "Access grants issued, split by whether they were remembered",
		},
		[]string{"remembered"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of API requests in seconds",
		},
		[]string{"route", "method", "status"},
	)
)
