package formvalidation

import (
	"strconv"
	"strings"
)

// PathSegment is one step of a [Path]: a record key or a list ordinal.
type PathSegment struct {
	key     string
	index   int
	isIndex bool
}

// Key returns a record-key segment.
func Key(k string) PathSegment { return PathSegment{key: k} }

// Index returns a list-ordinal segment.
func Index(i int) PathSegment { return PathSegment{index: i, isIndex: true} }

// IsIndex reports whether s is an ordinal.
func (s PathSegment) IsIndex() bool { return s.isIndex }

// Key returns the record key, empty for ordinals.
func (s PathSegment) Key() string { return s.key }

// Index returns the ordinal, zero for keys.
func (s PathSegment) Index() int { return s.index }

// String renders the segment as it appears in flat and tree views.
func (s PathSegment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// Path addresses a value inside a record. The empty path is the record root.
type Path []PathSegment

// PathOf builds a path of record keys.
func PathOf(keys ...string) Path {
	p := make(Path, len(keys))
	for i, k := range keys {
		p[i] = Key(k)
	}
	return p
}

// Key returns a copy of p extended by key k.
func (p Path) Key(k string) Path { return p.append(Key(k)) }

// Index returns a copy of p extended by ordinal i.
func (p Path) Index(i int) Path { return p.append(Index(i)) }

// Concat returns p followed by q. Neither input is modified.
func (p Path) Concat(q Path) Path { return p.append(q...) }

func (p Path) append(segs ...PathSegment) Path {
	out := make(Path, 0, len(p)+len(segs))
	out = append(out, p...)
	return append(out, segs...)
}

// HasPrefix reports whether q is a prefix of p. Every path has the empty
// prefix.
func (p Path) HasPrefix(q Path) bool {
	if len(q) > len(p) {
		return false
	}
	for i := range q {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Equal reports whether p and q address the same location.
func (p Path) Equal(q Path) bool {
	return len(p) == len(q) && p.HasPrefix(q)
}

// Overlaps reports whether one of p and q is a prefix of the other.
func (p Path) Overlaps(q Path) bool {
	return p.HasPrefix(q) || q.HasPrefix(p)
}

// String renders p as "emails.confirmEmail" or "tags[2]".
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if s.isIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.key)
	}
	return b.String()
}

// Pointer renders p as a JSON pointer ("/emails/confirmEmail"). The root is
// "/".
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range p {
		b.WriteByte('/')
		k := s.String()
		k = strings.ReplaceAll(k, "~", "~0")
		k = strings.ReplaceAll(k, "/", "~1")
		b.WriteString(k)
	}
	return b.String()
}
