package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "estore"

var (
	// HTTPRequestDuration 请求耗时，path 使用路由模板避免高基数
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestsTotal 请求总数
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestsInFlight 正在处理的请求数
	HTTPRequestsInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// CheckoutTotal 结算结果计数，result: success / not_found / empty_cart / error
	CheckoutTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_total",
			Help:      "Checkout attempts by result.",
		},
		[]string{"result"},
	)

	// OrdersCreatedTotal 结算生成的订单数
	OrdersCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Orders created by checkout.",
	})

	// QueueJobsProcessed 异步任务处理计数
	QueueJobsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "queue",
			Name:      "jobs_processed_total",
			Help:      "Queue jobs processed by type and status.",
		},
		[]string{"job_type", "status"},
	)

	// QueueJobDuration 异步任务耗时
	QueueJobDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "queue",
			Name:      "job_duration_seconds",
			Help:      "Duration of queue jobs in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"job_type"},
	)

	// CacheRequests 缓存命中情况，result: hit / miss / error
	CacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "requests_total",
			Help:      "Cache lookups by result.",
		},
		[]string{"result"},
	)
)

// Registry 应用指标注册表
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		HTTPRequestDuration,
		HTTPRequestsTotal,
		HTTPRequestsInFlight,
		CheckoutTotal,
		OrdersCreatedTotal,
		QueueJobsProcessed,
		QueueJobDuration,
		CacheRequests,
	)
}

// Handler 暴露 /metrics
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// ObserveHTTP 记录一次 HTTP 请求
func ObserveHTTP(method, path, status string, elapsed time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(elapsed.Seconds())
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordCheckout 记录结算结果与生成的订单数
func RecordCheckout(result string, orders int) {
	CheckoutTotal.WithLabelValues(result).Inc()
	if orders > 0 {
		OrdersCreatedTotal.Add(float64(orders))
	}
}

// RecordQueueJob 记录异步任务结果
func RecordQueueJob(jobType string, err error, start time.Time) {
	status := "success"
	if err != nil {
		status = "failed"
	}
	QueueJobsProcessed.WithLabelValues(jobType, status).Inc()
	QueueJobDuration.WithLabelValues(jobType).Observe(time.Since(start).Seconds())
}

// RecordCache 记录缓存查询结果
func RecordCache(hit bool, err error) {
	switch {
	case err != nil:
		CacheRequests.WithLabelValues("error").Inc()
	case hit:
		CacheRequests.WithLabelValues("hit").Inc()
	default:
		CacheRequests.WithLabelValues("miss").Inc()
	}
}
