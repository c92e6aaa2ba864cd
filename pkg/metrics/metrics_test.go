package metrics

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given a fresh registry", t, func() {
		registry := prometheus.NewRegistry()

		Convey("When creating a manager with custom options", func() {
			m := NewManager(
				WithNamespace("test"),
				WithSubsystem("colors"),
				WithHistogramBuckets([]float64{1, 10}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			m.matches.WithLabelValues("exact").Inc()

			Convey("Then collectors are registered under the namespace", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				found := false
				for _, f := range families {
					if f.GetName() == "test_colors_matches_total" {
						found = true
						So(f.GetMetric()[0].GetLabel(), ShouldHaveLength, 2)
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When two managers share a registry", func() {
			NewManager(WithPrometheusRegistry(registry))
			Convey("Then the second registration panics", func() {
				So(func() { NewManager(WithPrometheusRegistry(registry)) }, ShouldPanic)
			})
		})
	})
}

func TestRecording(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording matches", func() {
			before := testutil.ToFloat64(current().matches.WithLabelValues("good"))
			RecordMatch("good", 14.5)
			RecordMatch("good", 20)

			Convey("Then the quality counter advances", func() {
				So(testutil.ToFloat64(current().matches.WithLabelValues("good")), ShouldEqual, before+2)
			})
		})

		Convey("When recording cache activity", func() {
			hits := testutil.ToFloat64(current().cacheHits)
			misses := testutil.ToFloat64(current().cacheMisses)
			RecordCacheHit()
			RecordCacheMiss()
			RecordCacheMiss()
			UpdateCacheSize(42)

			So(testutil.ToFloat64(current().cacheHits), ShouldEqual, hits+1)
			So(testutil.ToFloat64(current().cacheMisses), ShouldEqual, misses+2)
			So(testutil.ToFloat64(current().cacheSize), ShouldEqual, 42.0)
		})

		Convey("When updating gauges", func() {
			UpdateReferenceTableSize(102)
			UpdateQueueCapacity(64)
			UpdateQueueSize(16)
			UpdateQueueUtilization(0.25)
			UpdateWorkerActiveCount(4)
			UpdateAnalysisJobsStored(3)

			So(testutil.ToFloat64(current().referenceTableSize), ShouldEqual, 102.0)
			So(testutil.ToFloat64(current().queueCapacity), ShouldEqual, 64.0)
			So(testutil.ToFloat64(current().queueSize), ShouldEqual, 16.0)
			So(testutil.ToFloat64(current().queueUtilization), ShouldEqual, 0.25)
			So(testutil.ToFloat64(current().workerActiveCount), ShouldEqual, 4.0)
			So(testutil.ToFloat64(current().analysisJobsHeld), ShouldEqual, 3.0)
		})

		Convey("When recording the remaining series", func() {
			So(func() {
				RecordMatchLatency("closest", 0.2)
				RecordSearch("code")
				RecordImageAnalysis(10000, 12.5)
				RecordAnalysisJob("done")
				RecordQueueEnqueue()
				RecordQueueDequeue()
				RecordQueueEnqueueError()
				RecordWorkerProcessingLatency(3)
				RecordWorkerError()
				RecordHTTPRequest("/match", "GET", "200")
				RecordHTTPRequestDuration("/match", "GET", "200", 1.5)
				RecordErrorByComponent("queue", "full")
				RecordErrorByEndpoint("/match", "GET", "validation_error")
				CollectSystem()
				UpdateGCPauseAverage(0, 0)
			}, ShouldNotPanic)
		})

		Convey("When gathering the custom registry", func() {
			RecordSearch("name")
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)

			Convey("Then only swatch series are exposed", func() {
				for _, f := range families {
					So(strings.HasPrefix(f.GetName(), "swatch_"), ShouldBeTrue)
				}
			})
		})
	})
}

func TestRunSystemCollector(t *testing.T) {
	Convey("Given a cancelled context", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("Then the collector returns promptly", func() {
			done := make(chan struct{})
			go func() {
				RunSystemCollector(ctx, time.Millisecond)
				close(done)
			}()
			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("collector did not stop")
			}
		})

		Convey("Then a non-positive interval returns immediately", func() {
			RunSystemCollector(context.Background(), 0)
		})
	})
}

func TestConfigure(t *testing.T) {
	Convey("Given the process-wide collectors", t, func() {
		defer Configure()

		Convey("When they are reconfigured", func() {
			m := Configure(
				WithNamespace("tint"),
				WithSubsystem("api"),
				WithConstLabels(map[string]string{"region": "eu"}),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)
			RecordSearch("code")

			Convey("Then recordings land on the new manager", func() {
				So(current(), ShouldEqual, m)
				So(testutil.ToFloat64(m.searches.WithLabelValues("code")), ShouldEqual, 1.0)
			})

			Convey("Then the exported registry carries the new names and labels", func() {
				families, err := GetRegistry().Gather()
				So(err, ShouldBeNil)
				So(families, ShouldNotBeEmpty)
				for _, f := range families {
					So(strings.HasPrefix(f.GetName(), "tint_api_"), ShouldBeTrue)
				}
			})
		})
	})
}
