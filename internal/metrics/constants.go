package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "mergefarm_http_requests_total"
	MetricNameHTTPRequestDuration  = "mergefarm_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "mergefarm_http_requests_in_flight"

	MetricNameEventsPublished = "mergefarm_events_published_total"

	MetricNameSeedsProduced     = "mergefarm_seeds_produced_total"
	MetricNameSeedsFired        = "mergefarm_seeds_fired_total"
	MetricNameCropsMerged       = "mergefarm_crops_merged_total"
	MetricNameHarvests          = "mergefarm_harvests_total"
	MetricNameCoinsEarned       = "mergefarm_coins_earned_total"
	MetricNameUpgradesPurchased = "mergefarm_upgrades_purchased_total"
	MetricNameCellsUnlocked     = "mergefarm_cells_unlocked_total"
	MetricNameCellsFertilized   = "mergefarm_cells_fertilized_total"
	MetricNameHighestLevel      = "mergefarm_highest_plant_level"
	MetricNameMoney             = "mergefarm_money"
	MetricNameBoardOccupancy    = "mergefarm_board_occupancy"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextEventsPublished = "Total number of domain events published"

	HelpTextSeedsProduced     = "Total seeds produced by the seed meter, by disposition"
	HelpTextSeedsFired        = "Total seeds fired onto the board"
	HelpTextCropsMerged       = "Total successful crop merges, by lucky flag"
	HelpTextHarvests          = "Total harvest passes performed"
	HelpTextCoinsEarned       = "Total coins earned, by source"
	HelpTextUpgradesPurchased = "Total upgrade purchases, by category and id"
	HelpTextCellsUnlocked     = "Total board cells unlocked"
	HelpTextCellsFertilized   = "Total board cells fertilized"
	HelpTextHighestLevel      = "Highest crop level ever discovered"
	HelpTextMoney             = "Current session money balance"
	HelpTextBoardOccupancy    = "Number of crops currently on the board"
)

// Label names
const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelDisposition = "disposition"
	LabelLucky       = "lucky"
	LabelSource      = "source"
	LabelCategory    = "category"
	LabelID          = "id"
)

// HTTPLatencyBuckets are the histogram buckets for request latency.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}
