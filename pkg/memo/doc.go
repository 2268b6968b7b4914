// Package memo caches derived values together with the inputs they were
// computed from.
//
// A Store entry is recomputed lazily: Resolve compares the dependency snapshot
// passed by the caller with the one recorded at the last computation and only
// calls compute when they differ (reflect.DeepEqual). Writes to the watched
// data never trigger work by themselves; the next read does.
//
//	s := memo.New[string, int](128)
//	v, recomputed := s.Resolve("total", []int{1, 2}, func() int { return 3 })
//
// The store is bounded: when capacity is exceeded the least recently resolved
// entry is evicted. All methods are safe for concurrent use, and compute runs
// without the store lock held so it may itself read from the store.
package memo
