// Package format names the document encodings a configuration can be
// read from or written to, and the compression wrappers that may sit
// around them on disk.
//
// # Usage
//
//	f, c := format.Detect("app.json.zst") // JSONFormat, ZstdCompression
//	raw, err := format.Decompress(data, c)
//
// Detection only looks at file name suffixes. Callers that know better
// can parse a format name with ParseFormat.
//
// # Related Packages
//
//   - github.com/cfgtree/cfgtree/doc - decodes and encodes documents
//   - github.com/cfgtree/cfgtree/jsonconf - loads configurations from files
package format
