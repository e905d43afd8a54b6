package script

import (
	"testing"

	"github.com/cfgtree/cfgtree/jsonconf"
	"github.com/google/go-cmp/cmp"
)

const scriptDoc = `{
	"config_variables": {"env": "prod"},
	"servers": {
		"web": {"port": 8080, "replicas": 3, "backend": "../../db"},
		"db": {"port": 5432, "tags": ["a", "b"]}
	}
}`

type scriptTest struct {
	at     string
	script string
	env    Env
	want   any
	fails  bool
}

var scriptTests = []scriptTest{
	{at: "servers/web", script: `whereami()`, want: "servers.web"},
	{script: `cfg("servers/web/port") + 1 == 8081`, want: true},
	{at: "servers/web", script: `cfg("port") * cfg("replicas") == 24240`, want: true},
	{at: "servers/web", script: `ref("backend").port`, want: int64(5432)},
	{script: `cfg("servers/db/tags")`, want: []any{"a", "b"}},
	{script: `len(cfg("servers/db/tags"))`, want: 2},
	{script: `cfg("servers/nope") == nil`, want: true},
	{script: `exists("servers/web") && !exists("servers/nope")`, want: true},
	{script: `getvar("env") + "-" + getvar("nope")`, want: "prod-"},
	{script: `"${env}" == "prod"`, want: true},
	{script: `region + ":" + getvar("env")`, env: Env{"region": "eu"}, want: "eu:prod"},
	{script: `cfg("@web/port")`, want: int64(8080)},
	{script: `cfg("servers/web/port[0]")`, fails: true},
	{script: `ref("servers")`, fails: true},
}

func TestEval(t *testing.T) {
	cfg, err := jsonconf.LoadBytes([]byte(scriptDoc), jsonconf.WithEnv(nil))
	if err != nil {
		t.Fatal(err)
	}
	for i := range scriptTests {
		tc := &scriptTests[i]
		at, err := cfg.Traverse(tc.at)
		if err != nil {
			t.Fatal(err)
		}
		res, err := Eval(at, tc.script, tc.env)
		if tc.fails {
			if err == nil {
				t.Errorf("%s: expected error, got %v", tc.script, res)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tc.script, err)
			continue
		}
		if diff := cmp.Diff(tc.want, res); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.script, diff)
		}
	}
}

func TestCompileError(t *testing.T) {
	cfg, err := jsonconf.LoadBytes([]byte(`{}`), jsonconf.WithEnv(nil))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Compile(cfg.Root(), `cfg(`); err == nil {
		t.Error("expected compile error")
	}
}
