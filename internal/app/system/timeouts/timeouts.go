// Package timeouts provides the shared deadline values for database and
// handler operations. Handlers that load data outside the request's own
// deadline (site config lookups, session user fetches) use these so one
// slow query cannot hold a page render open indefinitely.
package timeouts

import "time"

const (
	// Ping bounds health check round trips.
	Ping = 2 * time.Second

	// short is for single-document lookups on indexed fields.
	short = 5 * time.Second

	// medium is for multi-document queries and writes.
	medium = 10 * time.Second

	// long is for batch work such as index builds and seeding.
	long = 30 * time.Second
)

// Short returns the deadline for simple lookups.
func Short() time.Duration { return short }

// Medium returns the deadline for multi-document operations.
func Medium() time.Duration { return medium }

// Long returns the deadline for batch operations.
func Long() time.Duration { return long }
