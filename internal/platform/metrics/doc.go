// Package metrics exports Prometheus metrics for the HTTP layer and for
// business events such as registrations, comments and uploads.
package metrics
