// Package bytespool pools the byte buffers used to encode snapshots.
package bytespool

import (
	"bytes"
	"sync"
)

var pool = sync.Pool{
	New: func() interface{} {
		return &bytes.Buffer{}
	},
}

func Get() *bytes.Buffer {
	return pool.Get().(*bytes.Buffer)
}

// Put resets b and returns it to the pool. Callers must not keep b.Bytes()
// after Put.
func Put(b *bytes.Buffer) {
	if b == nil {
		return
	}
	b.Reset()
	pool.Put(b)
}
