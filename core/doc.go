// Package core defines the immutable valve graph consumed by the distance and
// search packages.
//
// A Graph G = (V,E) is built once from a list of Declarations:
//
//   - every valve gets a dense index in [0,n) in declaration order;
//   - every valve with a positive flow rate additionally gets a flow slot in
//     [0,k), k ≤ MaxFlowValves, used as its bit position in activation masks;
//   - tunnels are stored as index adjacency, in the order they were declared.
//
// Nothing mutates a Graph after NewGraph returns, so a *Graph is safe for
// concurrent readers without locks. Activation state never lives here: it is a
// property of a search state, not of the topology.
//
// Configuration Options (GraphOption):
//
//	– WithUndirected()
//	    Mirrors every tunnel so inputs that list a tunnel on one side only
//	    still produce symmetric adjacency.
//
//	– WithSelfTunnels()
//	    Accepts "AA → AA" tunnels (ignored for adjacency). Without it they
//	    are rejected with ErrSelfTunnel.
//
// Errors:
//
// Every construction failure is a *StructuralError naming the offending
// identifier and wrapping one of the sentinels below, so both
//
//	errors.Is(err, core.ErrUnknownTunnel)
//	errors.As(err, &serr)
//
// work on the returned value.
//
//	ErrNoValves       - declaration list is empty.
//	ErrEmptyValveID   - a declaration or tunnel has an empty identifier.
//	ErrDuplicateValve - the same identifier is declared twice.
//	ErrUnknownTunnel  - a tunnel references an undeclared valve.
//	ErrSelfTunnel     - a valve lists itself as a neighbour.
//	ErrStartNotFound  - the start identifier is not declared.
//	ErrTooManyValves  - more than MaxFlowValves valves have a positive rate.
package core
