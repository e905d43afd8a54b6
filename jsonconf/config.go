package jsonconf

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/cfgtree/cfgtree/debug"
	"github.com/cfgtree/cfgtree/doc"
	"github.com/cfgtree/cfgtree/format"
	"github.com/cfgtree/cfgtree/node"
	"github.com/cfgtree/cfgtree/subst"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// Configuration owns a decoded document and the variables used to
// substitute its string values.
//
// The document is never modified. The variable table may grow through
// AddVariable; that is safe to call concurrently with reads, but a
// reader may or may not observe a variable added while it runs.
type Configuration struct {
	doc  any
	dir  string
	fs   afero.Fs
	log  *slog.Logger
	mu   sync.RWMutex
	vars map[string]string
}

var _ node.Config = (*Configuration)(nil)

// Root returns the root node of the document.
func (c *Configuration) Root() node.Node {
	return wrap(c, nil, "", c.doc)
}

// Traverse resolves path from the root.
func (c *Configuration) Traverse(path string) (node.Node, error) {
	return c.Root().Traverse(path)
}

// Document returns the decoded document the configuration wraps.
func (c *Configuration) Document() any {
	return c.doc
}

// Dir returns the directory the configuration was loaded from, or "".
func (c *Configuration) Dir() string {
	return c.dir
}

// Variables returns a copy of the variable table.
func (c *Configuration) Variables() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.vars)
}

func (c *Configuration) Lookup(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.vars[name]
	return v, ok
}

// AddVariable sets a variable. The value is stored as given, without
// substitution.
func (c *Configuration) AddVariable(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vars[name] = value
}

// Write encodes value, which is plain data and not a node, to w.
func (c *Configuration) Write(w io.Writer, value any, f format.Format) error {
	return doc.Encode(w, value, f)
}

// WriteFile encodes value to the file at path, choosing format and
// compression from its name.
func (c *Configuration) WriteFile(path string, value any) error {
	f, comp := format.Detect(path)
	d, err := doc.Marshal(value, f)
	if err != nil {
		return err
	}
	d, err = format.Compress(d, comp)
	if err != nil {
		return err
	}
	return afero.WriteFile(c.fs, path, d, 0644)
}

// FromValue wraps a document given as Go data. Decoded document values
// and ordinary maps, slices and scalars are accepted, see doc.FromGo;
// anything else fails with doc.ErrValue.
func FromValue(v any, opts ...Option) (*Configuration, error) {
	dv, err := doc.FromGo(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return build(dv, newOptions(opts))
}

// LoadBytes decodes data, as JSON unless WithFormat says otherwise.
func LoadBytes(data []byte, opts ...Option) (*Configuration, error) {
	o := newOptions(opts)
	f := format.JSONFormat
	if o.format != nil {
		f = *o.format
	}
	v, err := doc.Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return build(v, o)
}

func LoadReader(r io.Reader, opts ...Option) (*Configuration, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return LoadBytes(data, opts...)
}

// Load reads and decodes the file at path and makes its absolute
// directory available as ${config_dir}.
func Load(path string, opts ...Option) (*Configuration, error) {
	o := newOptions(opts)
	data, err := afero.ReadFile(o.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	f, comp := format.Detect(path)
	if o.format != nil {
		f = *o.format
	}
	data, err = format.Decompress(data, comp)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	v, err := doc.Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	o.dir = filepath.Dir(abs)
	return build(v, o)
}

func build(v any, o *options) (*Configuration, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, ErrNullDoc)
	}
	v, err := doc.ApplyPatches(v, o.patches...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	c := &Configuration{
		doc:  v,
		dir:  o.dir,
		fs:   o.fs,
		log:  debug.Logger(o.log),
		vars: map[string]string{},
	}
	if err := c.seedVariables(o); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	if debug.Load() {
		debug.Logf("load: dir=%q variables=%d\n", c.dir, len(c.vars))
	}
	c.log.Debug("configuration loaded", "dir", c.dir, "variables", len(c.vars))
	return c, nil
}

func (c *Configuration) seedVariables(o *options) error {
	lookup := subst.Map(c.vars)
	if o.dir != "" {
		c.vars[DirVariable] = o.dir
	}
	env, err := environment(o)
	if err != nil {
		return err
	}
	for _, k := range sortedKeys(env) {
		v, err := subst.Replace(env[k], lookup)
		if err != nil {
			return fmt.Errorf("environment variable %s: %w", k, err)
		}
		c.vars[k] = v
	}

	obj, ok := c.doc.(*doc.Object)
	if !ok {
		return nil
	}
	sect, _ := obj.Get(VariablesSection)
	vars, ok := sect.(*doc.Object)
	if !ok {
		return nil
	}
	for _, k := range vars.Keys() {
		raw, _ := vars.Get(k)
		path := VariablesSection + "." + k
		s, err := variableText(path, raw)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrVariables, err)
		}
		s, err = subst.Replace(s, lookup)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrVariables, path, err)
		}
		c.vars[k] = s
	}
	return nil
}

func variableText(path string, v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case doc.Number:
		return x.String(), nil
	case bool:
		return node.ConvString(path, x)
	default:
		return "", &node.NoSuchValueError{Path: path, Kind: kindOf(v), Want: "string"}
	}
}

// environment returns the environment variables to seed, with dotenv
// file entries filling in names the environment lacks.
func environment(o *options) (map[string]string, error) {
	env := map[string]string{}
	if o.envSet {
		maps.Copy(env, o.env)
	} else {
		for _, kv := range os.Environ() {
			k, v, ok := strings.Cut(kv, "=")
			if ok {
				env[k] = v
			}
		}
	}
	for _, p := range o.envFiles {
		d, err := afero.ReadFile(o.fs, p)
		if err != nil {
			return nil, fmt.Errorf("env file: %w", err)
		}
		fileEnv, err := godotenv.Parse(bytes.NewReader(d))
		if err != nil {
			return nil, fmt.Errorf("env file %s: %w", p, err)
		}
		for k, v := range fileEnv {
			if _, ok := env[k]; !ok {
				env[k] = v
			}
		}
	}
	return env, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
