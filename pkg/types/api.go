package types

import "time"

// DistributionsResponse wraps the list returned by GET /v1/distributions.
type DistributionsResponse struct {
	// Registered distributions after a full refresh.
	Distributions []Distribution `json:"distributions"`
}

// AvailableResponse wraps the list returned by GET /v1/distributions/available.
type AvailableResponse struct {
	// Catalog definitions with no matching registration, sorted by name.
	Definitions []Definition `json:"definitions"`
}

// RunningResponse wraps the set returned by GET /v1/distributions/running.
type RunningResponse struct {
	// Names of currently running distributions, sorted ascending.
	// example: ["Debian","Ubuntu-24.04"]
	Running []string `json:"running"`
}

// RunningEvent is one NDJSON line on the watch stream: the complete
// running-name set observed by a poll tick.
type RunningEvent struct {
	// Names of currently running distributions, sorted ascending.
	// example: ["Debian","Ubuntu-24.04"]
	Running []string `json:"running"`
	// Time the poll tick observed the set.
	At time.Time `json:"at"`
}

// CommandResponse acknowledges a dispatched lifecycle command.
type CommandResponse struct {
	// Always "dispatched"; completion is observed via refresh or watch.
	// example: dispatched
	Status string `json:"status" example:"dispatched"`
	// Command verb that was dispatched.
	// example: launch
	Op string `json:"op" example:"launch"`
	// Target distribution name.
	// example: Ubuntu-24.04
	Distribution string `json:"distribution" example:"Ubuntu-24.04"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: distribution not found: Ubuntu-24.04
	Error string `json:"error" example:"distribution not found: Ubuntu-24.04"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}

// StatusResponse is returned by GET /v1/status.
type StatusResponse struct {
	// True once the daemon has heard back from the host at least once.
	// example: true
	Ready bool `json:"ready" example:"true"`
	// Number of distributions in the current registered list.
	// example: 3
	Registered int `json:"registered" example:"3"`
	// Number of those currently marked running.
	// example: 1
	Running int `json:"running" example:"1"`
	// Number of definitions in the catalog, 0 until first load.
	// example: 11
	CatalogSize int `json:"catalog_size" example:"11"`
	// Poll interval in seconds.
	// example: 60
	PollIntervalSeconds int64 `json:"poll_interval_seconds" example:"60"`
	// Completed poll ticks, successful and failed.
	// example: 42
	PollTicks uint64 `json:"poll_ticks" example:"42"`
	// Poll ticks that failed and were skipped.
	// example: 2
	PollFailures uint64 `json:"poll_failures" example:"2"`
	// Last time a poll tick published a running set (unix seconds, 0 if never).
	// example: 1700000000
	LastPollUnix int64 `json:"last_poll_unix" example:"1700000000"`
	// Uptime of the daemon in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
