package service

import "time"

// TTL for redis-cached counters. Writes invalidate the keys eagerly; the TTL
// only bounds staleness when an invalidation is lost.
const countCacheTTL = 10 * time.Minute
