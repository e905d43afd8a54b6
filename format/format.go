package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
	CBORFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":     JSONFormat,
		"json":  JSONFormat,
		"jsonc": JSONFormat,
		"y":     YAMLFormat,
		"yml":   YAMLFormat,
		"yaml":  YAMLFormat,
		"c":     CBORFormat,
		"cbor":  CBORFormat,
	}[strings.ToLower(v)]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case CBORFormat:
		return []byte("cbor"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }
func (f Format) IsCBOR() bool { return f == CBORFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case CBORFormat:
		return ".cbor"
	default:
		return ""
	}
}

// Detect guesses the format and compression of a file from its name.
// Unknown suffixes are reported as uncompressed JSON, which is what a
// configuration file without an extension almost always is.
func Detect(name string) (Format, Compression) {
	base := strings.ToLower(filepath.Base(name))
	comp := NoCompression
	for c, sfx := range compressionSuffixes {
		if strings.HasSuffix(base, sfx) {
			comp = c
			base = strings.TrimSuffix(base, sfx)
			break
		}
	}
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if ext == "" {
		return JSONFormat, comp
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return JSONFormat, comp
	}
	return f, comp
}
