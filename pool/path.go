// Package pool provides pooled builders for element paths.
package pool

import (
	"bytes"
	"strconv"
	"sync"
)

// PathBuilder builds FHIR element paths such as "Claim.item[2].servicedDate".
// It works as a stack: Field and Index return a mark that Truncate restores.
type PathBuilder struct {
	buf []byte
}

var pathBuilderPool = sync.Pool{
	New: func() any {
		return &PathBuilder{
			buf: make([]byte, 0, 256),
		}
	},
}

// AcquirePathBuilder gets a PathBuilder from the pool.
// Call Release() when done to return it to the pool.
func AcquirePathBuilder() *PathBuilder {
	pb := pathBuilderPool.Get().(*PathBuilder)
	pb.Reset()
	return pb
}

// Release returns the PathBuilder to the pool.
func (b *PathBuilder) Release() {
	if b == nil {
		return
	}
	// Don't return oversized buffers to the pool
	if cap(b.buf) <= 4096 {
		pathBuilderPool.Put(b)
	}
}

// Reset clears the buffer without deallocating.
func (b *PathBuilder) Reset() {
	b.buf = b.buf[:0]
}

// Len returns the current length of the path.
func (b *PathBuilder) Len() int {
	return len(b.buf)
}

// Truncate drops everything after mark, a value previously returned by Len, Field or Index.
func (b *PathBuilder) Truncate(mark int) {
	if mark >= 0 && mark <= len(b.buf) {
		b.buf = b.buf[:mark]
	}
}

// Field appends an element name, with a leading dot unless the path is empty,
// and returns the mark to restore afterwards.
func (b *PathBuilder) Field(name string) int {
	mark := len(b.buf)
	if mark > 0 {
		b.buf = append(b.buf, '.')
	}
	b.buf = append(b.buf, name...)
	return mark
}

// Index appends an array index in brackets and returns the mark to restore afterwards.
func (b *PathBuilder) Index(i int) int {
	mark := len(b.buf)
	b.buf = append(b.buf, '[')
	b.buf = strconv.AppendInt(b.buf, int64(i), 10)
	b.buf = append(b.buf, ']')
	return mark
}

// Sidecar rewrites the last element name to its "_" form, so "a.b[2]" becomes "a._b[2]",
// and returns the mark for Unsidecar.
func (b *PathBuilder) Sidecar() int {
	start := bytes.LastIndexByte(b.buf, '.') + 1
	b.buf = append(b.buf, 0)
	copy(b.buf[start+1:], b.buf[start:])
	b.buf[start] = '_'
	return start
}

// Unsidecar undoes Sidecar. Anything appended since must already be truncated.
func (b *PathBuilder) Unsidecar(mark int) {
	if mark < 0 || mark >= len(b.buf) || b.buf[mark] != '_' {
		return
	}
	copy(b.buf[mark:], b.buf[mark+1:])
	b.buf = b.buf[:len(b.buf)-1]
}

// String returns the built path as a string.
func (b *PathBuilder) String() string {
	return string(b.buf)
}

// BuildPath builds a path using a callback.
// The PathBuilder is returned to the pool after the callback.
//
//	path := pool.BuildPath(func(b *pool.PathBuilder) {
//	    b.Field("Claim")
//	    b.Field("item")
//	    b.Index(2)
//	})
func BuildPath(fn func(*PathBuilder)) string {
	pb := AcquirePathBuilder()
	defer pb.Release()
	fn(pb)
	return pb.String()
}

// JoinPath joins element names with dots.
func JoinPath(segments ...string) string {
	switch len(segments) {
	case 0:
		return ""
	case 1:
		return segments[0]
	}
	return BuildPath(func(b *PathBuilder) {
		for _, s := range segments {
			b.Field(s)
		}
	})
}

// IndexPath appends an array index to a base path.
func IndexPath(base string, index int) string {
	return BuildPath(func(b *PathBuilder) {
		b.buf = append(b.buf, base...)
		b.Index(index)
	})
}
