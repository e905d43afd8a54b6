package npath

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrUnmatchedBracket = errors.New("unmatched [")
	ErrBadIndex         = errors.New("bad index")
	ErrTrailing         = errors.New("unexpected text after ]")
)

type Kind int

const (
	MemberSegment Kind = iota
	ParentSegment
	SelfSegment
	IDSegment
)

func (k Kind) String() string {
	switch k {
	case MemberSegment:
		return "member"
	case ParentSegment:
		return "parent"
	case SelfSegment:
		return "self"
	case IDSegment:
		return "id"
	default:
		return "<unknown segment>"
	}
}

// Split breaks a path expression into trimmed segments. abs reports
// whether the expression starts at the root, either because it starts
// with "/" or because it is empty. Trailing empty segments are dropped,
// so "a/b/" and "a/b" are the same expression.
func Split(path string) (abs bool, segs []string) {
	parts := strings.Split(path, "/")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return true, nil
	}
	if parts[0] == "" {
		return true, parts[1:]
	}
	return false, parts
}

// Classify reports what kind of segment seg is. Id references are only
// recognised by callers at the head of an expression; elsewhere an "@"
// segment is an ordinary member name.
func Classify(seg string) Kind {
	switch {
	case seg == "..":
		return ParentSegment
	case seg == ".":
		return SelfSegment
	case strings.HasPrefix(seg, "@"):
		return IDSegment
	default:
		return MemberSegment
	}
}

// SplitMember separates the bare name of a member segment from its
// bracketed index suffix, which is returned unparsed.
func SplitMember(seg string) (name, indices string) {
	i := strings.IndexByte(seg, '[')
	if i < 0 {
		return seg, ""
	}
	return seg[:i], seg[i:]
}

// ParseIndices parses a suffix of the form "[i][j]...".
func ParseIndices(s string) ([]int, error) {
	var res []int
	for len(s) > 0 {
		if s[0] != '[' {
			return nil, ErrTrailing
		}
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, ErrUnmatchedBracket
		}
		txt := strings.TrimSpace(s[1:end])
		i, err := strconv.Atoi(txt)
		if err != nil {
			return nil, errors.Join(ErrBadIndex, err)
		}
		res = append(res, i)
		s = s[end+1:]
	}
	return res, nil
}

// ParseMember is SplitMember followed by ParseIndices.
func ParseMember(seg string) (string, []int, error) {
	name, rest := SplitMember(seg)
	idx, err := ParseIndices(rest)
	if err != nil {
		return "", nil, err
	}
	return name, idx, nil
}

// Join returns the node path of member name under parent.
func Join(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// JoinIndex returns the node path of element i under parent.
func JoinIndex(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}
