// Package store defines interfaces for data persistence operations on the
// zoo's entities, the sentinel errors every implementation returns, and the
// transaction helper services use to group reads and writes.
package store
