package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameEventsPublished,
			Help:      HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameEventHandlerErrors,
			Help:      HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// AFK Metrics
var (
	AfkSessionsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameAfkSessionsStarted,
			Help:      HelpTextAfkSessionsStarted,
		},
		[]string{LabelRealm},
	)

	AfkSessionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameAfkSessionsCompleted,
			Help:      HelpTextAfkSessionsCompleted,
		},
		[]string{LabelRealm},
	)

	ExperienceAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameExperienceAwarded,
			Help:      HelpTextExperienceAwarded,
		},
		[]string{LabelRealm},
	)

	RewardItemsFound = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameRewardItemsFound,
			Help:      HelpTextRewardItemsFound,
		},
		[]string{LabelRealm},
	)
)

// Market Metrics
var (
	ListingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameListingsCreated,
			Help:      HelpTextListingsCreated,
		},
		[]string{LabelMode},
	)

	Purchases = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNamePurchases,
			Help:      HelpTextPurchases,
		},
	)

	MarketVolume = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameMarketVolume,
			Help:      HelpTextMarketVolume,
		},
	)

	MarketPurchaseNoops = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNamePurchaseNoops,
			Help:      HelpTextPurchaseNoops,
		},
		[]string{LabelReason},
	)
)

// Inventory and chat Metrics
var (
	ItemsEquipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameItemsEquipped,
			Help:      HelpTextItemsEquipped,
		},
		[]string{LabelSlot},
	)

	ChatMessages = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameChatMessages,
			Help:      HelpTextChatMessages,
		},
	)
)
