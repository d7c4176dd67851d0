package randstr

// Stats summarises one Generate call.
type Stats struct {
	Accepted         int   // values returned
	Duplicates       int   // candidates rejected because the batch already held them
	Skipped          int   // candidates vetoed by the reject predicate
	DistinctRejected int   // size of the rejected set, bounded by the number of combinations
	Err              error // non nil if the call failed
}

// Observer receives Stats after every Generate call, failed calls included.
type Observer interface {
	Observe(stats Stats)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(stats Stats)

// Observe calls f(stats).
func (f ObserverFunc) Observe(stats Stats) {
	f(stats)
}
