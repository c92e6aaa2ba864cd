package metrics

import (
	"slices"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector exported by the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Matching
	matches            *prometheus.CounterVec
	matchLatency       *prometheus.HistogramVec
	matchDistance      prometheus.Histogram
	searches           *prometheus.CounterVec
	referenceTableSize prometheus.Gauge

	// Match cache
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	cacheSize   prometheus.Gauge

	// Image analysis
	imagesAnalyzed   prometheus.Counter
	imageSamples     prometheus.Histogram
	analysisLatency  prometheus.Histogram
	analysisJobs     *prometheus.CounterVec
	analysisJobsHeld prometheus.Gauge

	// Queue
	queueSize          prometheus.Gauge
	queueCapacity      prometheus.Gauge
	queueUtilization   prometheus.Gauge
	queueEnqueued      prometheus.Counter
	queueDequeued      prometheus.Counter
	queueEnqueueErrors prometheus.Counter

	// Workers
	workerActiveCount       prometheus.Gauge
	workerProcessingLatency prometheus.Histogram
	workerErrors            prometheus.Counter

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorsByComponent *prometheus.CounterVec
	errorsByEndpoint  *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// collectors pairs the active manager with the registry it registers on.
type collectors struct {
	manager  *Manager
	registry *prometheus.Registry
}

var global atomic.Pointer[collectors] //nolint:gochecknoglobals // process-wide metrics

func init() { //nolint:gochecknoinits // global metrics setup
	Configure()
}

// Configure replaces the process-wide manager with one built from opts on a
// fresh registry, so default Go collectors are never exported. It is meant
// to run once at startup; series recorded before the call are dropped.
func Configure(opts ...Option) *Manager {
	reg := prometheus.NewRegistry()
	m := NewManager(slices.Concat(opts, []Option{WithPrometheusRegistry(reg)})...)
	global.Store(&collectors{manager: m, registry: reg})
	return m
}

func current() *Manager {
	return global.Load().manager
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "swatch",
		subsystem:        "",
		histogramBuckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 1000},
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, Buckets: buckets, ConstLabels: m.constLabels}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.matches = auto.NewCounterVec(m.counterOpts("matches_total", "Color matches by match quality"), []string{"quality"})
	m.matchLatency = auto.NewHistogramVec(m.histogramOpts("match_latency_milliseconds", "Matcher latency in milliseconds by operation", m.histogramBuckets), []string{"operation"})
	m.matchDistance = auto.NewHistogram(m.histogramOpts("match_distance", "Distance between queried colors and their closest reference color",
		[]float64{1, 5, 10, 20, 30, 45, 60, 90, 150, 250, 442}))
	m.searches = auto.NewCounterVec(m.counterOpts("searches_total", "Reference table searches by kind"), []string{"kind"})
	m.referenceTableSize = auto.NewGauge(m.gaugeOpts("reference_table_size", "Number of entries in the loaded reference table"))

	m.cacheHits = auto.NewCounter(m.counterOpts("match_cache_hits_total", "Match cache hits"))
	m.cacheMisses = auto.NewCounter(m.counterOpts("match_cache_misses_total", "Match cache misses"))
	m.cacheSize = auto.NewGauge(m.gaugeOpts("match_cache_size", "Entries held by the match cache"))

	m.imagesAnalyzed = auto.NewCounter(m.counterOpts("images_analyzed_total", "Images analyzed for dominant colors"))
	m.imageSamples = auto.NewHistogram(m.histogramOpts("image_samples", "Pixels sampled per analyzed image",
		prometheus.ExponentialBuckets(10, 4, 8)))
	m.analysisLatency = auto.NewHistogram(m.histogramOpts("image_analysis_latency_milliseconds", "Image analysis latency in milliseconds", m.histogramBuckets))
	m.analysisJobs = auto.NewCounterVec(m.counterOpts("analysis_jobs_total", "Asynchronous analysis jobs by final status"), []string{"status"})
	m.analysisJobsHeld = auto.NewGauge(m.gaugeOpts("analysis_jobs_stored", "Analysis jobs currently held by the job store"))

	m.queueSize = auto.NewGauge(m.gaugeOpts("queue_size", "Current size of the analysis queue"))
	m.queueCapacity = auto.NewGauge(m.gaugeOpts("queue_capacity", "Maximum capacity of the analysis queue"))
	m.queueUtilization = auto.NewGauge(m.gaugeOpts("queue_utilization_ratio", "Analysis queue utilization (0.0 to 1.0)"))
	m.queueEnqueued = auto.NewCounter(m.counterOpts("queue_enqueue_total", "Jobs enqueued"))
	m.queueDequeued = auto.NewCounter(m.counterOpts("queue_dequeue_total", "Jobs dequeued"))
	m.queueEnqueueErrors = auto.NewCounter(m.counterOpts("queue_enqueue_errors_total", "Rejected enqueue attempts"))

	m.workerActiveCount = auto.NewGauge(m.gaugeOpts("worker_active_count", "Number of analysis workers"))
	m.workerProcessingLatency = auto.NewHistogram(m.histogramOpts("worker_processing_latency_milliseconds", "Worker job processing latency in milliseconds", m.histogramBuckets))
	m.workerErrors = auto.NewCounter(m.counterOpts("worker_errors_total", "Jobs that failed in a worker"))

	m.httpRequests = auto.NewCounterVec(m.counterOpts("http_requests_total", "HTTP requests by endpoint, method and status code"),
		[]string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"})

	m.errorsByComponent = auto.NewCounterVec(m.counterOpts("errors_by_component_total", "Errors by component and error type"),
		[]string{"component", "error_type"})
	m.errorsByEndpoint = auto.NewCounterVec(m.counterOpts("errors_by_endpoint_total", "Errors by endpoint, method and error type"),
		[]string{"endpoint", "method", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts("system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
		[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}))
}

// RecordMatch counts a match at the given quality and observes its distance.
func RecordMatch(quality string, distance float64) {
	current().matches.WithLabelValues(quality).Inc()
	current().matchDistance.Observe(distance)
}

// RecordMatchLatency records matcher latency for an operation in milliseconds.
func RecordMatchLatency(operation string, latencyMs float64) {
	current().matchLatency.WithLabelValues(operation).Observe(latencyMs)
}

// RecordSearch counts a table search of the given kind.
func RecordSearch(kind string) {
	current().searches.WithLabelValues(kind).Inc()
}

// UpdateReferenceTableSize sets the reference table size.
func UpdateReferenceTableSize(n int) {
	current().referenceTableSize.Set(float64(n))
}

// RecordCacheHit increments the match cache hit counter.
func RecordCacheHit() {
	current().cacheHits.Inc()
}

// RecordCacheMiss increments the match cache miss counter.
func RecordCacheMiss() {
	current().cacheMisses.Inc()
}

// UpdateCacheSize sets the match cache size.
func UpdateCacheSize(size int64) {
	current().cacheSize.Set(float64(size))
}

// RecordImageAnalysis counts an analyzed image and its sample count.
func RecordImageAnalysis(samples int, latencyMs float64) {
	current().imagesAnalyzed.Inc()
	current().imageSamples.Observe(float64(samples))
	current().analysisLatency.Observe(latencyMs)
}

// RecordAnalysisJob counts a job reaching a final status.
func RecordAnalysisJob(status string) {
	current().analysisJobs.WithLabelValues(status).Inc()
}

// UpdateAnalysisJobsStored sets the number of jobs held by the job store.
func UpdateAnalysisJobsStored(n int) {
	current().analysisJobsHeld.Set(float64(n))
}

// UpdateQueueSize sets the current queue size.
func UpdateQueueSize(size int) {
	current().queueSize.Set(float64(size))
}

// UpdateQueueCapacity sets the maximum queue capacity.
func UpdateQueueCapacity(capacity int) {
	current().queueCapacity.Set(float64(capacity))
}

// UpdateQueueUtilization sets the queue utilization ratio.
func UpdateQueueUtilization(utilization float64) {
	current().queueUtilization.Set(utilization)
}

// RecordQueueEnqueue increments the enqueue counter.
func RecordQueueEnqueue() {
	current().queueEnqueued.Inc()
}

// RecordQueueDequeue increments the dequeue counter.
func RecordQueueDequeue() {
	current().queueDequeued.Inc()
}

// RecordQueueEnqueueError increments the enqueue error counter.
func RecordQueueEnqueueError() {
	current().queueEnqueueErrors.Inc()
}

// UpdateWorkerActiveCount sets the number of active workers.
func UpdateWorkerActiveCount(count int) {
	current().workerActiveCount.Set(float64(count))
}

// RecordWorkerProcessingLatency records worker processing latency.
func RecordWorkerProcessingLatency(latencyMs float64) {
	current().workerProcessingLatency.Observe(latencyMs)
}

// RecordWorkerError increments the worker error counter.
func RecordWorkerError() {
	current().workerErrors.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	current().httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	current().httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	current().errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	current().errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	current().systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	current().systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	current().systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the registry the active manager registers on.
func GetRegistry() *prometheus.Registry {
	return global.Load().registry
}
