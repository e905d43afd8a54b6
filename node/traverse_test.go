package node_test

import (
	"errors"
	"testing"

	"github.com/cfgtree/cfgtree/jsonconf"
	"github.com/cfgtree/cfgtree/node"
)

func load(t *testing.T, src string) *jsonconf.Configuration {
	t.Helper()
	cfg, err := jsonconf.LoadBytes([]byte(src), jsonconf.WithEnv(nil))
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func traverse(t *testing.T, n node.Node, path string) node.Node {
	t.Helper()
	res, err := n.Traverse(path)
	if err != nil {
		t.Fatalf("traverse %q: %v", path, err)
	}
	return res
}

const scenarioDoc = `{"a":{"b":[10,20,30]}}`

func TestScenario(t *testing.T) {
	cfg := load(t, scenarioDoc)
	n, err := cfg.Traverse("a/b[1]")
	if err != nil {
		t.Fatal(err)
	}
	v, err := n.AsInt()
	if err != nil {
		t.Fatal(err)
	}
	if v != 20 {
		t.Errorf("got %d want 20", v)
	}
	if !traverse(t, cfg.Root(), "a/c").IsMissing() {
		t.Error("a/c should be missing")
	}
	_, err = cfg.Traverse("a/b[5]")
	var oor *node.IndexOutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected IndexOutOfRangeError, got %v", err)
	}
	if oor.Index != 5 || oor.Size != 3 || oor.Path != "a.b" {
		t.Errorf("got %+v", oor)
	}
}

func TestEmptyPathIsRoot(t *testing.T) {
	cfg := load(t, scenarioDoc)
	root := cfg.Root()
	res := traverse(t, root, "")
	if res.Path() != "" || !res.IsMap() || node.Dump(res) != node.Dump(root) {
		t.Errorf("got %s at %q", node.Dump(res), res.Path())
	}
	deep := traverse(t, root, "a/b[2]")
	if got := traverse(t, deep, ""); got.Path() != "" || !got.IsMap() {
		t.Errorf("empty path from %q gave %q", deep.Path(), got.Path())
	}
	if got := traverse(t, deep, "/"); got.Path() != "" {
		t.Errorf("\"/\" gave %q", got.Path())
	}
}

func TestMissingChains(t *testing.T) {
	cfg := load(t, scenarioDoc)
	a, err := cfg.Root().Get("a")
	if err != nil {
		t.Fatal(err)
	}
	m, err := a.Get("zz")
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsMissing() || m.Path() != "a.zz" {
		t.Fatalf("got missing=%t path=%q", m.IsMissing(), m.Path())
	}
	mm, err := m.Get("anything")
	if err != nil {
		t.Fatal(err)
	}
	if !mm.IsMissing() || mm.Path() != "a.zz.anything" {
		t.Errorf("got missing=%t path=%q", mm.IsMissing(), mm.Path())
	}
	if _, err := mm.AsString(); !errors.Is(err, node.ErrMissing) {
		t.Errorf("expected ErrMissing, got %v", err)
	}
}

type traverseTest struct {
	doc     string
	from    string
	path    string
	missing bool
	resPath string
	dump    string
	err     error
}

var traverseTests = []traverseTest{
	{doc: scenarioDoc, path: "a/../a", resPath: "a", dump: "{b=[10,20,30]}"},
	{doc: scenarioDoc, path: "a/./b", resPath: "a.b"},
	{doc: scenarioDoc, path: " a / b[0] ", resPath: "a.b[0]", dump: "10"},
	{doc: scenarioDoc, path: "a/b/", resPath: "a.b"},
	{doc: scenarioDoc, path: "..", missing: true, resPath: ".."},
	{doc: scenarioDoc, path: "a/../../x", missing: true, resPath: "a/../../x"},
	{doc: scenarioDoc, path: "a/c/d/e", missing: true, resPath: "a/c/d/e"},
	{doc: scenarioDoc, path: "x[1", missing: true, resPath: "x[1"},
	{doc: scenarioDoc, path: "a/b[1", err: node.ErrMalformedPath},
	{doc: scenarioDoc, path: "a/b[one]", err: node.ErrMalformedPath},
	{doc: scenarioDoc, path: "a/b[1]x", err: node.ErrMalformedPath},
	{doc: scenarioDoc, path: "a/b[1][0]", err: node.ErrNotAnArray},
	{doc: scenarioDoc, path: "a/b/c", err: node.ErrNotAMap},
	{doc: scenarioDoc, path: "a/b[-1]", err: node.ErrIndexOutOfRange},
	{doc: `{"m": [[1, 2], [3, 4]]}`, path: "m[1][0]", resPath: "m[1][0]", dump: "3"},
	{doc: `{"m": [[1, 2], [3, 4]]}`, from: "m", path: "[1][1]", resPath: "m[1][1]", dump: "4"},
	{doc: `{"a": {"b": {"c": 1}}, "d": 2}`, from: "a/b", path: "/d", resPath: "d", dump: "2"},
	{doc: `{"a": {"b": {"c": 1}}, "d": 2}`, from: "a/b", path: "../../d", resPath: "d", dump: "2"},
	{doc: `{"a": null}`, path: "a", missing: true, resPath: "a"},
	{doc: `{"a": [1, null]}`, path: "a[1]", missing: true, resPath: "a[1]"},
	{doc: `{"a": {"id1": {"port": 1}}, "b": [{"id2": {"port": 2}}]}`, path: "@id1/port", resPath: "a.id1.port", dump: "1"},
	{doc: `{"a": {"id1": {"port": 1}}, "b": [{"id2": {"port": 2}}]}`, path: "@id2/port", resPath: "b[0].id2.port", dump: "2"},
	{doc: `{"a": {"id1": {"port": 1}}}`, path: "@nope/port", missing: true, resPath: "@nope/port"},
	{doc: `{"a": {"dup": 1}, "b": {"dup": 2}}`, path: "@dup", err: node.ErrAmbiguousID},
	{doc: `{"a": {"dup": 1}, "b": {"c": {"dup": 2}}}`, path: "@dup/x", err: node.ErrAmbiguousID},
	{doc: `{"a": {"x": {"y": 1}}}`, from: "a/x", path: "@x/y", resPath: "a.x.y", dump: "1"},
	{doc: `{"a": {"b": 1}}`, path: "a/@b", missing: true, resPath: "a/@b"},
}

func TestTraverse(t *testing.T) {
	for i := range traverseTests {
		tc := &traverseTests[i]
		cfg := load(t, tc.doc)
		from := cfg.Root()
		if tc.from != "" {
			from = traverse(t, from, tc.from)
		}
		res, err := from.Traverse(tc.path)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%s %q: got err %v want %v", tc.doc, tc.path, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s %q: %v", tc.doc, tc.path, err)
			continue
		}
		if res.IsMissing() != tc.missing {
			t.Errorf("%s %q: missing=%t want %t", tc.doc, tc.path, res.IsMissing(), tc.missing)
		}
		if res.Path() != tc.resPath {
			t.Errorf("%s %q: path %q want %q", tc.doc, tc.path, res.Path(), tc.resPath)
		}
		if tc.dump != "" && node.Dump(res) != tc.dump {
			t.Errorf("%s %q: got %s want %s", tc.doc, tc.path, node.Dump(res), tc.dump)
		}
	}
}

func TestParentRoundTrip(t *testing.T) {
	cfg := load(t, `{"a": {"x": [1, {"y": true}]}, "b": "s"}`)
	for _, start := range []string{"", "a", "a/x[1]"} {
		n := traverse(t, cfg.Root(), start)
		if !n.IsMap() {
			continue
		}
		names, err := n.Names()
		if err != nil {
			t.Fatal(err)
		}
		for _, k := range names {
			direct, err := n.Get(k)
			if err != nil {
				t.Fatal(err)
			}
			round := traverse(t, n, k+"/../"+k)
			if round.Path() != direct.Path() || node.Dump(round) != node.Dump(direct) {
				t.Errorf("%q/%s: %s at %q vs %s at %q", start, k,
					node.Dump(round), round.Path(), node.Dump(direct), direct.Path())
			}
		}
	}
}

func TestAmbiguousIDError(t *testing.T) {
	cfg := load(t, `{"a": {"dup": 1}, "b": {"dup": 2}}`)
	_, err := cfg.Traverse("@dup")
	var amb *node.AmbiguousIDError
	if !errors.As(err, &amb) {
		t.Fatalf("expected AmbiguousIDError, got %v", err)
	}
	if amb.ID != "dup" || amb.Path != "@dup" || len(amb.Matches) != 2 {
		t.Errorf("got %+v", amb)
	}
}

func TestMalformedPathError(t *testing.T) {
	cfg := load(t, scenarioDoc)
	_, err := cfg.Traverse("a/b[1")
	var mal *node.MalformedPathError
	if !errors.As(err, &mal) {
		t.Fatalf("expected MalformedPathError, got %v", err)
	}
	if mal.Path != "a/b[1" || mal.Segment != "b[1" {
		t.Errorf("got %+v", mal)
	}
}

func TestReference(t *testing.T) {
	cfg := load(t, `{
		"data": {"x": 5, "y": {"z": 6}},
		"links": {
			"rel": "../data/x",
			"abs": "/data/y/z",
			"up": "../../data/x",
			"sib": "../abs",
			"id": "@y/z",
			"gone": "/data/nope",
			"var": "/data/${which}"
		}
	}`)
	cfg.AddVariable("which", "x")
	tests := map[string]string{
		"links/abs": "6",
		"links/up":  "5",
		"links/sib": "/data/y/z",
		"links/id":  "6",
		"links/var": "5",
	}
	for path, want := range tests {
		ref, err := traverse(t, cfg.Root(), path).AsReference()
		if err != nil {
			t.Errorf("%s: %v", path, err)
			continue
		}
		if got := node.Dump(ref); got != want {
			t.Errorf("%s: got %s want %s", path, got, want)
		}
	}
	// relative to the link's position: links/data does not exist
	ref, err := traverse(t, cfg.Root(), "links/rel").AsReference()
	if err != nil {
		t.Fatal(err)
	}
	if !ref.IsMissing() {
		t.Errorf("links/rel: got %s", node.Dump(ref))
	}
	ref, err = traverse(t, cfg.Root(), "links/gone").AsReference()
	if err != nil {
		t.Fatal(err)
	}
	if !ref.IsMissing() || ref.Path() != "/data/nope" {
		t.Errorf("links/gone: missing=%t path=%q", ref.IsMissing(), ref.Path())
	}
	if _, err := traverse(t, cfg.Root(), "links").AsReference(); !errors.Is(err, node.ErrNoSuchValue) {
		t.Errorf("expected ErrNoSuchValue, got %v", err)
	}
	if _, err := traverse(t, cfg.Root(), "nope").AsReference(); !errors.Is(err, node.ErrMissing) {
		t.Errorf("expected ErrMissing, got %v", err)
	}
}

func TestFindByName(t *testing.T) {
	cfg := load(t, `{"k": {"k": [{"k": 1}]}, "j": null}`)
	found, err := node.FindByName(traverse(t, cfg.Root(), "k/k"), "k")
	if err != nil {
		t.Fatal(err)
	}
	var paths []string
	for _, f := range found {
		paths = append(paths, f.Path())
	}
	want := []string{"k", "k.k", "k.k[0].k"}
	if len(paths) != len(want) {
		t.Fatalf("got %v want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("got %v want %v", paths, want)
		}
	}
	if found, _ := node.FindByName(cfg.Root(), "j"); len(found) != 0 {
		t.Errorf("null member found: %v", found)
	}
}
