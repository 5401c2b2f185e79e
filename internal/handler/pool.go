package handler

import (
	"bytes"
	"sync"
)

// responseBufferSize fits a full board snapshot with every cell occupied;
// upgrade listings and action outcomes come in well under it.
const responseBufferSize = 2048

// bufferPool recycles the encode buffers behind respondJSON so the hot
// tap endpoints do not allocate per request.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
