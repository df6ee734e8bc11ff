// Package metrics holds shared metric conventions used across the application.
package metrics

// DefaultBuckets is the common set of latency histogram buckets, in seconds.
// The API is DB-bound, so the grid is dense below 500ms and sparse above; the
// 10s cap matches the server's request timeout.
var DefaultBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals
