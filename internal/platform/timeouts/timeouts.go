// Package timeouts defines shared timeout constants used across authgate.
// Centralizing these values prevents drift between the store and provider
// boundaries and makes the durations discoverable.
package timeouts

import "time"

// StoreOp caps the time allowed for a single token store operation.
const StoreOp = 5 * time.Second

// ProviderHTTP caps an outbound HTTP call to the identity provider so a
// hung provider cannot hang a serving worker indefinitely.
const ProviderHTTP = 10 * time.Second
