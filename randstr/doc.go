// Package randstr generates random strings from a configurable charset using
// a cryptographically secure random source.
//
// A Config describes one batch: the charset, the number of sampled symbols,
// how many values to produce, an optional prefix and suffix, whether values
// must be distinct within the batch, and an optional predicate that vetoes
// candidates. Config is an immutable value built with chained With* calls:
//
//	cfg := randstr.NewConfig().
//		WithLength(10).
//		WithCount(5).
//		WithPrefix("inv_").
//		Unique().
//		WithRejectPredicate(func(s string) bool { return strings.Contains(s, "0") })
//
//	res, err := randstr.New(cfg).Generate()
//	if err != nil {
//		return err
//	}
//
//	for _, v := range res.Values() {
//		fmt.Println(v)
//	}
//
// Rejected candidates are retried. When the number of distinct rejected
// candidates reaches distinct charset symbols ^ length, Generate gives up with
// ErrCombinationsExhausted. The bound ignores values already accepted in
// unique mode, so it is an approximation of the remaining space.
//
// Configs can also be built from a generic option map with ConfigFromMap.
package randstr
