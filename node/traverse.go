package node

import (
	"github.com/cfgtree/cfgtree/debug"
	"github.com/cfgtree/cfgtree/node/npath"
)

// Traverse resolves the path expression path starting at start.
//
// Absence is reported as a Missing node whose path is the whole
// expression, not the prefix that failed. Errors are reserved for
// expressions that are ill-formed against the tree: an id matching more
// than one node, broken brackets, indices out of range, or a member or
// index applied to the wrong variant.
func Traverse(start Node, path string) (Node, error) {
	abs, segs := npath.Split(path)
	missing := func() Node {
		return NewMissing(start.Config(), path)
	}
	cur := start
	switch {
	case abs:
		r, err := Root(cur)
		if err != nil {
			return nil, err
		}
		cur = r
	case npath.Classify(segs[0]) == npath.IDSegment:
		id := segs[0][1:]
		found, err := FindByName(cur, id)
		if err != nil {
			return nil, err
		}
		switch len(found) {
		case 0:
			return missing(), nil
		case 1:
			cur = found[0]
		default:
			paths := make([]string, len(found))
			for i, f := range found {
				paths[i] = f.Path()
			}
			return nil, &AmbiguousIDError{Path: path, ID: id, Matches: paths}
		}
		segs = segs[1:]
	}

	for _, seg := range segs {
		if debug.Traverse() {
			debug.Logf("traverse %q: at %q step %q\n", path, cur.Path(), seg)
		}
		switch npath.Classify(seg) {
		case npath.ParentSegment:
			p, err := cur.Parent()
			if err != nil {
				return nil, err
			}
			if p == nil {
				return missing(), nil
			}
			cur = p
		case npath.SelfSegment:
		default:
			next, err := member(cur, path, seg)
			if err != nil {
				return nil, err
			}
			if next.IsMissing() {
				return missing(), nil
			}
			cur = next
		}
	}
	return cur, nil
}

// member resolves one name[i][j] segment. The name is looked up before
// the indices are parsed, so a segment whose member is absent yields
// Missing whatever follows it. An empty name applies the indices to cur
// itself.
func member(cur Node, path, seg string) (Node, error) {
	name, rest := npath.SplitMember(seg)
	next := cur
	if name != "" || rest == "" {
		var err error
		next, err = cur.Get(name)
		if err != nil {
			return nil, err
		}
		if next.IsMissing() {
			return next, nil
		}
	}
	idx, err := npath.ParseIndices(rest)
	if err != nil {
		return nil, &MalformedPathError{Path: path, Segment: seg, Err: err}
	}
	for _, i := range idx {
		next, err = next.Index(i)
		if err != nil {
			return nil, err
		}
	}
	return next, nil
}

// FindByName returns every node in n's tree, in breadth first order from
// the root, which is reached from its parent map under the key name.
// The root and array elements have no key and never match. Missing
// members are skipped.
func FindByName(n Node, name string) ([]Node, error) {
	root, err := Root(n)
	if err != nil {
		return nil, err
	}
	type entry struct {
		key    string
		hasKey bool
		node   Node
	}
	var found []Node
	queue := []entry{{node: root}}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if e.hasKey && e.key == name {
			found = append(found, e.node)
		}
		switch {
		case e.node.IsMap():
			names, err := e.node.Names()
			if err != nil {
				return nil, err
			}
			for _, k := range names {
				c, err := e.node.Get(k)
				if err != nil {
					return nil, err
				}
				if c.IsMissing() {
					continue
				}
				queue = append(queue, entry{key: k, hasKey: true, node: c})
			}
		case e.node.IsArray():
			sz, err := e.node.Size()
			if err != nil {
				return nil, err
			}
			for i := 0; i < sz; i++ {
				c, err := e.node.Index(i)
				if err != nil {
					return nil, err
				}
				queue = append(queue, entry{node: c})
			}
		}
	}
	return found, nil
}
