// Package metrics exposes Prometheus instrumentation for the HTTP surface
// and the game economy.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var EventsPublished = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: MetricNameEventsPublished,
		Help: HelpTextEventsPublished,
	},
	[]string{LabelType},
)

// Economy Metrics
var (
	SeedsProduced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSeedsProduced,
			Help: HelpTextSeedsProduced,
		},
		[]string{LabelDisposition},
	)

	SeedsFired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSeedsFired,
			Help: HelpTextSeedsFired,
		},
	)

	CropsMerged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsMerged,
			Help: HelpTextCropsMerged,
		},
		[]string{LabelLucky},
	)

	Harvests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHarvests,
			Help: HelpTextHarvests,
		},
	)

	CoinsEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCoinsEarned,
			Help: HelpTextCoinsEarned,
		},
		[]string{LabelSource},
	)

	UpgradesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesPurchased,
			Help: HelpTextUpgradesPurchased,
		},
		[]string{LabelCategory, LabelID},
	)

	CellsUnlocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCellsUnlocked,
			Help: HelpTextCellsUnlocked,
		},
	)

	CellsFertilized = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCellsFertilized,
			Help: HelpTextCellsFertilized,
		},
	)

	HighestLevel = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHighestLevel,
			Help: HelpTextHighestLevel,
		},
	)

	Money = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameMoney,
			Help: HelpTextMoney,
		},
	)

	BoardOccupancy = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameBoardOccupancy,
			Help: HelpTextBoardOccupancy,
		},
	)
)
