// Package node defines the configuration tree: the Node interface, the
// Missing sentinel, the errors node operations return, and the path
// resolver shared by every Node implementation.
//
// # Variants
//
// Every node is exactly one of:
//
//   - MapKind: string keyed members
//   - ArrayKind: 0-based ordered elements
//   - PrimitiveKind: a string, number or boolean scalar
//   - MissingKind: the result of addressing something that is not there
//
// A Missing node remembers the path that failed to resolve. Get on a
// Missing node yields another Missing node, so a chain such as
//
//	n.Get("a") -> Get("b") -> Get("c")
//
// never needs a nil check in between; the failure only surfaces, as a
// MissingNodeError, when a value is finally demanded.
//
// # Paths
//
// Traverse evaluates slash separated path expressions (see package
// npath for the grammar):
//
//	server/port        member lookups
//	hosts[2]/name      array indices
//	../sibling         parent navigation
//	/top/level         anchored at the root
//	@listener/port     the unique member named "listener", anywhere
//
// Resolution is fail-soft on absence and fail-fast on malformed input:
// an absent member yields a Missing node carrying the whole expression,
// while an ambiguous id or a broken bracket is an error.
//
// # Thread Safety
//
// Nodes are immutable once built. Any number of goroutines may read and
// traverse a tree concurrently.
//
// # Related Packages
//
//   - github.com/cfgtree/cfgtree/jsonconf - a Node implementation over decoded documents
//   - github.com/cfgtree/cfgtree/subst - variable substitution in string values
package node
