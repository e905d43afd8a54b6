package node_test

import (
	"errors"
	"testing"
	"time"

	"github.com/cfgtree/cfgtree/node"
	"github.com/google/go-cmp/cmp"
)

const accessorDoc = `{
	"config_variables": {"x": "1", "host": "db", "port": "5432"},
	"v": "${x}-${MISSING_VAR}",
	"url": "${host}:${port}",
	"n": 42,
	"f": 2.75,
	"neg": -3.9,
	"big": 9007199254740993,
	"t": true,
	"ts": " false ",
	"ns": "17",
	"word": "seventeen",
	"m": {"k": 1},
	"arr": [1, 2, 3],
	"fs": [0.5, 1],
	"bs": [true, "false"],
	"ss": ["a", "${x}", 3],
	"timeout": "1m30s",
	"wait": 250,
	"later": "${x}h",
	"bad": "soon",
	"hugeD": 1e20,
	"hugeS": "1e30",
	"maxI": 9223372036854775807,
	"mem": "64KiB",
	"disk": "10 MB",
	"raw": 4096,
	"file": "/var//log/../lib/app",
	"nul": null
}`

func TestSubstitution(t *testing.T) {
	cfg := load(t, accessorDoc)
	for _, tc := range []struct{ path, want string }{
		{"v", "1-${MISSING_VAR}"},
		{"url", "db:5432"},
		{"n", "42"},
		{"t", "true"},
	} {
		got, err := traverse(t, cfg.Root(), tc.path).AsString()
		if err != nil {
			t.Errorf("%s: %v", tc.path, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %q want %q", tc.path, got, tc.want)
		}
	}
}

func TestAsStringIdempotent(t *testing.T) {
	cfg := load(t, accessorDoc)
	n := traverse(t, cfg.Root(), "v")
	first, err := n.AsString()
	if err != nil {
		t.Fatal(err)
	}
	for range 3 {
		again, err := n.AsString()
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("got %q then %q", first, again)
		}
	}
}

func TestScalars(t *testing.T) {
	cfg := load(t, accessorDoc)
	get := func(p string) node.Node { return traverse(t, cfg.Root(), p) }

	if i, err := get("n").AsInt(); err != nil || i != 42 {
		t.Errorf("n: %d %v", i, err)
	}
	if i, err := get("f").AsInt(); err != nil || i != 2 {
		t.Errorf("f as int: %d %v", i, err)
	}
	if i, err := get("neg").AsInt64(); err != nil || i != -3 {
		t.Errorf("neg as int64: %d %v", i, err)
	}
	if i, err := get("big").AsInt64(); err != nil || i != 9007199254740993 {
		t.Errorf("big: %d %v", i, err)
	}
	if i, err := get("ns").AsInt(); err != nil || i != 17 {
		t.Errorf("ns: %d %v", i, err)
	}
	if f, err := get("f").AsFloat64(); err != nil || f != 2.75 {
		t.Errorf("f: %g %v", f, err)
	}
	if f, err := get("n").AsFloat64(); err != nil || f != 42 {
		t.Errorf("n as float: %g %v", f, err)
	}
	if b, err := get("t").AsBool(); err != nil || !b {
		t.Errorf("t: %t %v", b, err)
	}
	if b, err := get("ts").AsBool(); err != nil || b {
		t.Errorf("ts: %t %v", b, err)
	}
	if _, err := get("word").AsInt(); !errors.Is(err, node.ErrConversion) {
		t.Errorf("word as int: %v", err)
	}
	var conv *node.ConversionError
	if _, err := get("word").AsBool(); !errors.As(err, &conv) || conv.Path != "word" || conv.Want != "bool" {
		t.Errorf("word as bool: %v", err)
	}
	var nsv *node.NoSuchValueError
	if _, err := get("m").AsInt(); !errors.As(err, &nsv) || nsv.Kind != node.MapKind {
		t.Errorf("m as int: %v", err)
	}
	if _, err := get("arr").AsString(); !errors.Is(err, node.ErrNoSuchValue) {
		t.Errorf("arr as string: %v", err)
	}
}

func TestMissingAccessors(t *testing.T) {
	cfg := load(t, accessorDoc)
	m := traverse(t, cfg.Root(), "nope/deeper")
	if !m.IsMissing() || m.Kind() != node.MissingKind {
		t.Fatalf("got %s", m.Kind())
	}
	var mne *node.MissingNodeError
	if _, err := m.AsInt(); !errors.As(err, &mne) || mne.Path != "nope/deeper" {
		t.Errorf("AsInt: %v", err)
	}
	if _, err := m.AsBool(); !errors.Is(err, node.ErrNoSuchValue) {
		t.Errorf("AsBool should match ErrNoSuchValue: %v", err)
	}
	if _, err := m.Size(); !errors.Is(err, node.ErrMissing) {
		t.Errorf("Size: %v", err)
	}
	if _, err := m.Index(0); !errors.Is(err, node.ErrMissing) {
		t.Errorf("Index: %v", err)
	}
	if _, err := m.Parent(); !errors.Is(err, node.ErrMissing) {
		t.Errorf("Parent: %v", err)
	}
	if ok, err := m.Has("x"); ok || err != nil {
		t.Errorf("Has: %t %v", ok, err)
	}
	mp, err := m.AsMap()
	if err != nil || len(mp) != 0 {
		t.Errorf("AsMap: %v %v", mp, err)
	}
	if n := traverse(t, cfg.Root(), "nul"); !n.IsMissing() {
		t.Errorf("null member should be missing")
	}
	if ok, _ := cfg.Root().Has("nul"); !ok {
		t.Errorf("null member should still be named")
	}
}

func TestStructuralAccessors(t *testing.T) {
	cfg := load(t, accessorDoc)
	root := cfg.Root()
	m := traverse(t, root, "m")
	if ok, err := m.Has("k"); !ok || err != nil {
		t.Errorf("Has k: %t %v", ok, err)
	}
	if ok, err := m.Has("j"); ok || err != nil {
		t.Errorf("Has j: %t %v", ok, err)
	}
	if _, err := m.Size(); !errors.Is(err, node.ErrNotAnArray) {
		t.Errorf("Size of map: %v", err)
	}
	arr := traverse(t, root, "arr")
	if _, err := arr.Get("x"); !errors.Is(err, node.ErrNotAMap) {
		t.Errorf("Get on array: %v", err)
	}
	if _, err := arr.Names(); !errors.Is(err, node.ErrNotAMap) {
		t.Errorf("Names on array: %v", err)
	}
	// absent member is Missing, out-of-range index is an error
	if g, err := m.Get("zz"); err != nil || !g.IsMissing() {
		t.Errorf("Get zz: %v %v", g, err)
	}
	if _, err := arr.Index(3); !errors.Is(err, node.ErrIndexOutOfRange) {
		t.Errorf("Index 3: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"k": int64(1)}, mustMap(t, m)); diff != "" {
		t.Errorf("AsMap (-want +got):\n%s", diff)
	}
	sl, err := arr.AsSlice()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{int64(1), int64(2), int64(3)}, sl); diff != "" {
		t.Errorf("AsSlice (-want +got):\n%s", diff)
	}
	p, err := traverse(t, root, "arr[2]").Parent()
	if err != nil || p.Path() != "arr" {
		t.Errorf("Parent of arr[2]: %v %v", p, err)
	}
	if p, err := root.Parent(); p != nil || err != nil {
		t.Errorf("Parent of root: %v %v", p, err)
	}
}

func mustMap(t *testing.T, n node.Node) map[string]any {
	t.Helper()
	m, err := n.AsMap()
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestArrays(t *testing.T) {
	cfg := load(t, accessorDoc)
	get := func(p string) node.Node { return traverse(t, cfg.Root(), p) }
	ints, err := node.Ints(get("arr"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, ints); diff != "" {
		t.Errorf("Ints (-want +got):\n%s", diff)
	}
	fs, err := node.Float64s(get("fs"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{0.5, 1}, fs); diff != "" {
		t.Errorf("Float64s (-want +got):\n%s", diff)
	}
	bs, err := node.Bools(get("bs"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]bool{true, false}, bs); diff != "" {
		t.Errorf("Bools (-want +got):\n%s", diff)
	}
	ss, err := node.Strings(get("ss"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "1", "3"}, ss); diff != "" {
		t.Errorf("Strings (-want +got):\n%s", diff)
	}
	if _, err := node.Ints(get("m")); !errors.Is(err, node.ErrNotAnArray) {
		t.Errorf("Ints of map: %v", err)
	}
}

func TestDefaults(t *testing.T) {
	cfg := load(t, accessorDoc)
	get := func(p string) node.Node { return traverse(t, cfg.Root(), p) }

	if i, err := node.IntOr(get("absent"), 7); err != nil || i != 7 {
		t.Errorf("IntOr absent: %d %v", i, err)
	}
	if i, err := node.IntOr(get("n"), 7); err != nil || i != 42 {
		t.Errorf("IntOr n: %d %v", i, err)
	}
	if s, err := node.StringOr(get("absent/x"), "d"); err != nil || s != "d" {
		t.Errorf("StringOr: %q %v", s, err)
	}
	if b, err := node.BoolOr(get("nul"), true); err != nil || !b {
		t.Errorf("BoolOr null: %t %v", b, err)
	}
	if f, err := node.Float64Or(get("absent"), 1.5); err != nil || f != 1.5 {
		t.Errorf("Float64Or: %g %v", f, err)
	}
	if i, err := node.Int64Or(get("absent"), -1); err != nil || i != -1 {
		t.Errorf("Int64Or: %d %v", i, err)
	}
	// A default covers absence only. A present node of the wrong variant
	// or an unconvertible primitive still fails.
	if _, err := node.IntOr(get("m"), 7); !errors.Is(err, node.ErrNoSuchValue) {
		t.Errorf("IntOr map: %v", err)
	}
	if _, err := node.IntOr(get("word"), 7); !errors.Is(err, node.ErrConversion) {
		t.Errorf("IntOr word: %v", err)
	}
}

func TestDurations(t *testing.T) {
	cfg := load(t, accessorDoc)
	get := func(p string) node.Node { return traverse(t, cfg.Root(), p) }
	for _, tc := range []struct {
		path string
		want time.Duration
	}{
		{"timeout", 90 * time.Second},
		{"wait", 250 * time.Millisecond},
		{"later", time.Hour},
		{"f", 2750 * time.Microsecond},
	} {
		d, err := node.Duration(get(tc.path))
		if err != nil {
			t.Errorf("%s: %v", tc.path, err)
			continue
		}
		if d != tc.want {
			t.Errorf("%s: got %s want %s", tc.path, d, tc.want)
		}
	}
	for _, p := range []string{"bad", "hugeD", "hugeS", "maxI"} {
		if d, err := node.Duration(get(p)); !errors.Is(err, node.ErrConversion) {
			t.Errorf("%s: got %s %v, want ErrConversion", p, d, err)
		}
	}
	if _, err := node.Duration(get("m")); !errors.Is(err, node.ErrNoSuchValue) {
		t.Errorf("m: %v", err)
	}
	if _, err := node.Duration(get("absent")); !errors.Is(err, node.ErrMissing) {
		t.Errorf("absent: %v", err)
	}
	if d, err := node.DurationOr(get("absent"), time.Second); err != nil || d != time.Second {
		t.Errorf("DurationOr: %s %v", d, err)
	}
	if d, err := node.DurationStringOr(get("absent"), "2m"); err != nil || d != 2*time.Minute {
		t.Errorf("DurationStringOr: %s %v", d, err)
	}
	if d, err := node.DurationStringOr(get("timeout"), "2m"); err != nil || d != 90*time.Second {
		t.Errorf("DurationStringOr present: %s %v", d, err)
	}
}

func TestByteSizes(t *testing.T) {
	cfg := load(t, accessorDoc)
	get := func(p string) node.Node { return traverse(t, cfg.Root(), p) }
	for _, tc := range []struct {
		path string
		want uint64
	}{
		{"mem", 64 * 1024},
		{"disk", 10 * 1000 * 1000},
		{"raw", 4096},
	} {
		b, err := node.ByteSize(get(tc.path))
		if err != nil {
			t.Errorf("%s: %v", tc.path, err)
			continue
		}
		if b != tc.want {
			t.Errorf("%s: got %d want %d", tc.path, b, tc.want)
		}
	}
	if _, err := node.ByteSize(get("word")); !errors.Is(err, node.ErrConversion) {
		t.Errorf("word: %v", err)
	}
	if b, err := node.ByteSizeOr(get("absent"), 1); err != nil || b != 1 {
		t.Errorf("ByteSizeOr: %d %v", b, err)
	}
}

func TestFile(t *testing.T) {
	cfg := load(t, accessorDoc)
	f, err := node.File(traverse(t, cfg.Root(), "file"))
	if err != nil {
		t.Fatal(err)
	}
	if f != "/var/lib/app" {
		t.Errorf("got %q", f)
	}
	if f, err := node.FileOr(traverse(t, cfg.Root(), "absent"), "x.conf"); err != nil || f != "x.conf" {
		t.Errorf("FileOr: %q %v", f, err)
	}
}

func TestDump(t *testing.T) {
	cfg := load(t, `{"a": {"b": [1, "x", true], "c": {}}, "d": 1.5}`)
	want := "{a={b=[1,x,true], c={}}, d=1.5}"
	if got := node.Dump(cfg.Root()); got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if got := node.Dump(traverse(t, cfg.Root(), "zz")); got != "<missing zz>" {
		t.Errorf("got %s", got)
	}
}
