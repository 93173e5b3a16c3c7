// Package strpool pools the string builders used to render HUD text.
package strpool

import (
	"strings"
	"sync"
)

var pool = sync.Pool{
	New: func() interface{} {
		return &strings.Builder{}
	},
}

func Get() *strings.Builder {
	return pool.Get().(*strings.Builder)
}

// Put resets b and returns it to the pool. Strings already taken from b stay
// valid.
func Put(b *strings.Builder) {
	if b == nil {
		return
	}
	b.Reset()
	pool.Put(b)
}
