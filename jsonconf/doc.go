// Package jsonconf builds configurations from decoded JSON-like
// documents.
//
// # Loading
//
//	cfg, err := jsonconf.Load("/etc/app/config.json")
//	...
//	n, err := cfg.Traverse("server/port")
//	...
//	port, err := node.IntOr(n, 8080)
//
// Load picks the decoder from the file name (.json, .jsonc, .yaml,
// .cbor, optionally followed by .lz4 or .zst). LoadBytes, LoadReader and
// FromValue cover documents that do not come from a file.
//
// # Variables
//
// String values may contain ${name} references, which are replaced when
// the value is read with AsString. The variables come, in order, from
//
//  1. config_dir, the absolute directory of a loaded file
//  2. the environment (os.Environ unless WithEnv is given), then any
//     dotenv files named with WithEnvFiles
//  3. the top level config_variables map of the document itself
//
// Each value is substituted against the variables defined before it, so
// config_variables entries may build on the environment and on earlier
// entries.
//
// # Nodes
//
// Nodes are created on demand, each time a member or element is
// addressed, and hold no state besides their position. A JSON null reads
// as a Missing node.
package jsonconf
