// Package cache provides a small generic LRU memo used to keep the results of
// pure computations, such as parsed type identifiers, keyed by their input.
//
// The cache is bounded: once it holds its configured number of entries, the
// least recently used one is dropped. All operations are O(1) and safe for
// concurrent use.
//
// # Usage
//
//	specs := cache.NewLRUCache[string, Spec](256)
//
//	spec, err := specs.GetOrLoad("NullOrInt", parse)
//	if err != nil {
//		// parse failed, nothing was cached
//	}
//
// GetOrLoad does not hold the lock while computing a missing value. Two
// goroutines missing the same key at once may both compute it; this is only
// suitable for loaders whose output depends on the key alone.
package cache
