package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var evalDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "vigile_eval_duration_sec",
	Help: "Total duration of submission evaluation",
}, []string{"content_type"})

var verdictCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vigile_verdicts",
	Help: "Number of verdicts returned, by outcome",
}, []string{"outcome"})

var detectorHitCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vigile_detector_hits",
	Help: "Number of issues emitted, by kind",
}, []string{"kind"})

var historyDegradedCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "vigile_history_degraded",
	Help: "Number of evaluations that ran without offender history (store unavailable)",
})

var recordPersistErrorCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "vigile_record_persist_errors",
	Help: "Number of moderation record writes which failed",
})

var offenseIncrementErrorCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "vigile_offense_increment_errors",
	Help: "Number of offender counter increments which failed",
})

var notifySentCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "vigile_notifications_sent",
	Help: "Number of admin notifications delivered",
})

var notifyErrorCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "vigile_notification_errors",
	Help: "Number of admin notification deliveries which failed",
})
