// Package cache provides a bounded, thread-safe LRU map used to hold live
// per-client resources such as mounted alert views.
//
// Entries leaving the cache, whether evicted for capacity, removed or purged,
// are passed to the evict callback after the cache lock is released, so the
// callback may do blocking cleanup or call back into the cache.
//
//	views := cache.NewLRU[string, *alertview.View](1024,
//	    cache.WithEvictFunc(func(_ string, v *alertview.View) { v.Teardown() }),
//	)
package cache
