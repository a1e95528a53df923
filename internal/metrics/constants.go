package metrics

// Metric name prefix
const namespace = "idle_realms"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameAfkSessionsStarted   = "afk_sessions_started_total"
	MetricNameAfkSessionsCompleted = "afk_sessions_completed_total"
	MetricNameExperienceAwarded    = "experience_awarded_total"
	MetricNameRewardItemsFound     = "afk_reward_items_total"
	MetricNameListingsCreated      = "market_listings_created_total"
	MetricNamePurchases            = "market_purchases_total"
	MetricNameMarketVolume         = "market_volume_total"
	MetricNamePurchaseNoops        = "market_purchase_noops_total"
	MetricNameItemsEquipped        = "items_equipped_total"
	MetricNameChatMessages         = "chat_messages_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextAfkSessionsStarted   = "AFK sessions started"
	HelpTextAfkSessionsCompleted = "AFK sessions settled"
	HelpTextExperienceAwarded    = "Experience credited by AFK completion"
	HelpTextRewardItemsFound     = "Reward item units found during AFK sessions"
	HelpTextListingsCreated      = "Market listings created"
	HelpTextPurchases            = "Market listings purchased"
	HelpTextMarketVolume         = "Sum of total_price over purchased listings"
	HelpTextPurchaseNoops        = "Purchase requests that changed nothing"
	HelpTextItemsEquipped        = "Items equipped into a slot"
	HelpTextChatMessages         = "Chat messages sent"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelRealm  = "realm"
	LabelReason = "reason"
	LabelSlot   = "slot"
	LabelMode   = "mode"
)

// Listing mode label values
const (
	ModeAnnounce = "announce"
	ModeEscrow   = "escrow"
)

// UnmatchedRoute labels requests no route matched
const UnmatchedRoute = "unmatched"

// HTTPLatencyBuckets spans 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
