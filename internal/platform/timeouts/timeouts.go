// Package timeouts defines shared timeout constants used across the
// application. Centralizing these values keeps the durations discoverable
// and prevents drift between layers.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// AIRequest caps the wait time for a single AI collaborator call. A slow
// call only delays its owning request, so the cap exists to keep one stuck
// upstream call from pinning a request forever.
const AIRequest = 15 * time.Second
