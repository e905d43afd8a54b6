// Package doc is the boundary between configuration trees and document
// syntax. It decodes JSON (with comments), YAML and CBOR into a small set
// of generic values and encodes generic values back out.
//
// # Values
//
// A decoded document is made of:
//
//   - *Object: string keyed members in document order
//   - []any: ordered arrays
//   - string, Number, bool: scalars
//   - nil: null
//
// Numbers keep their textual form (Number) so that integers larger than
// 2^53 survive a round trip through a JSON document.
//
// # Related Packages
//
//   - github.com/cfgtree/cfgtree/format - format and compression detection
//   - github.com/cfgtree/cfgtree/jsonconf - wraps decoded values as nodes
package doc
