package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// AvailabilityCachePrefix prefixes cached advisory availability responses.
const AvailabilityCachePrefix = "avail:"

// AvailabilityCacheTTL keeps advisory availability answers short-lived; the
// write path always re-checks inside the transaction.
const AvailabilityCacheTTL = 30 * time.Second
