package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lingo-hub/lingo/internal/application/deadline/dto"
	"github.com/lingo-hub/lingo/internal/shared/logger"
)

// DeadlineRecorder exports deadline notifier runs on its own registry so a
// one-shot command can dump them to a node_exporter textfile.
type DeadlineRecorder struct {
	registry     *prometheus.Registry
	textfilePath string
	logger       logger.Interface

	runs              *prometheus.CounterVec
	notificationsSent prometheus.Counter
	skipped           *prometheus.CounterVec
	projectsScanned   prometheus.Gauge
	projectsMatched   prometheus.Gauge
	lastRun           prometheus.Gauge
	lastSuccess       prometheus.Gauge
	runDuration       prometheus.Histogram
}

func NewDeadlineRecorder(textfilePath string, logger logger.Interface) *DeadlineRecorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &DeadlineRecorder{
		registry:     reg,
		textfilePath: textfilePath,
		logger:       logger,
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lingo_deadline_runs_total",
				Help: "Deadline notifier runs by outcome",
			},
			[]string{"status"},
		),
		notificationsSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "lingo_deadline_notifications_sent_total",
			Help: "Deadline notifications stored",
		}),
		skipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lingo_deadline_notifications_skipped_total",
				Help: "Contributors not notified, by reason",
			},
			[]string{"reason"},
		),
		projectsScanned: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lingo_deadline_projects_scanned",
			Help: "Available projects examined by the last run",
		}),
		projectsMatched: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lingo_deadline_projects_matched",
			Help: "Projects on a reminder day in the last run",
		}),
		lastRun: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lingo_deadline_last_run_timestamp_seconds",
			Help: "Unix time the last run finished",
		}),
		lastSuccess: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lingo_deadline_last_success_timestamp_seconds",
			Help: "Unix time the last successful run finished",
		}),
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lingo_deadline_run_duration_seconds",
			Help:    "Deadline notifier run latency",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (r *DeadlineRecorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *DeadlineRecorder) RecordRun(result *dto.RunResult, runErr error) {
	status := "success"
	if runErr != nil {
		status = "failure"
	}
	r.runs.WithLabelValues(status).Inc()

	if result != nil {
		// partial counts of a failed run are real sends
		r.notificationsSent.Add(float64(result.NotificationsSent))
		r.skipped.WithLabelValues("policy").Add(float64(result.SkippedByPolicy))
		r.skipped.WithLabelValues("duplicate").Add(float64(result.SkippedDuplicates))
		r.projectsScanned.Set(float64(result.ProjectsScanned))
		r.projectsMatched.Set(float64(result.ProjectsMatched))
		r.runDuration.Observe(result.Duration().Seconds())

		finished := float64(result.FinishedAt.Unix())
		r.lastRun.Set(finished)
		if runErr == nil {
			r.lastSuccess.Set(finished)
		}
	}

	if r.textfilePath == "" {
		return
	}
	if err := prometheus.WriteToTextfile(r.textfilePath, r.registry); err != nil {
		r.logger.Warnw("failed to write metrics textfile",
			"path", r.textfilePath,
			"error", err,
		)
	}
}
