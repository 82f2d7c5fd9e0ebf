package common

import "time"

// DefaultLookupTTL is the fallback freshness window for the network-backed
// lookups when no cache TTL is configured. The country catalog is
// slow-moving reference data; one hour matches the upstream cadence.
const DefaultLookupTTL = 1 * time.Hour
