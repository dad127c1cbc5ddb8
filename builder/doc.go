// Package builder generates deterministic valve layouts for tests, examples
// and benchmarks.
//
// A layout is a list of core.Declaration values assembled by one or more
// Constructors. Every constructor emits tunnels in both directions, so the
// resulting declarations describe an undirected tunnel network, matching the
// shape of real inputs.
//
//	decls, err := builder.Build(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformRates(0, 25)},
//	    builder.Grid(4, 4),
//	)
//
// Constructors compose: identifiers produced by the configured ID scheme
// collide on purpose, so Path(5) followed by Star(5) glues the star's hub to
// the first valve of the path.
//
// Determinism: same options, seed and constructor order ⇒ identical
// declarations (valve order, tunnel order, rates).
package builder
