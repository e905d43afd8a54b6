package doc

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyPatches applies each patch in turn to the decoded value v and
// returns the patched value. A patch whose first non-space byte is '['
// is an RFC 6902 operation list, anything else is treated as an RFC 7386
// merge patch. Patched objects come back with their members sorted by
// key.
func ApplyPatches(v any, patches ...[]byte) (any, error) {
	if len(patches) == 0 {
		return v, nil
	}
	d, err := MarshalCompact(v)
	if err != nil {
		return nil, err
	}
	for i, p := range patches {
		p = bytes.TrimSpace(p)
		if len(p) == 0 {
			continue
		}
		if p[0] == '[' {
			ops, err := jsonpatch.DecodePatch(p)
			if err != nil {
				return nil, fmt.Errorf("%w: patch %d: %w", ErrPatch, i, err)
			}
			d, err = ops.Apply(d)
			if err != nil {
				return nil, fmt.Errorf("%w: patch %d: %w", ErrPatch, i, err)
			}
			continue
		}
		d, err = jsonpatch.MergePatch(d, p)
		if err != nil {
			return nil, fmt.Errorf("%w: merge patch %d: %w", ErrPatch, i, err)
		}
	}
	return DecodeJSON(d)
}
