package util

import (
	"bytes"
	"sync"
)

// maxPooledBuf keeps one oversized input from pinning memory in the pool.
const maxPooledBuf = 4 << 20

// BufPool provides reusable read buffers for source images, reducing
// GC pressure when converting large trees.
var BufPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, DefaultBufSize))
	},
}

// GetBuf retrieves an empty buffer from the pool.  Callers must return
// it with [PutBuf] when finished.
func GetBuf() *bytes.Buffer {
	buf := BufPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuf returns a buffer to the pool for reuse.
func PutBuf(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledBuf {
		return
	}
	BufPool.Put(buf)
}
