package pages

import (
	"bytes"
	"net/http"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func releaseBuffer(b *bytes.Buffer) {
	b.Reset()
	bufferPool.Put(b)
}

// buffered holds the body and status until close, so an error halfway through
// rendering can still produce a clean error response.
type buffered struct {
	http.ResponseWriter
	buf    *bytes.Buffer
	status int
}

func newBuffered(w http.ResponseWriter) *buffered {
	return &buffered{ResponseWriter: w, buf: getBuffer()}
}

func (w *buffered) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}

func (w *buffered) WriteHeader(code int) {
	w.status = code
}

func (w *buffered) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *buffered) close() error {
	defer releaseBuffer(w.buf)
	if w.status != 0 {
		w.ResponseWriter.WriteHeader(w.status)
	}
	_, err := w.ResponseWriter.Write(w.buf.Bytes())
	return err
}

func (w *buffered) discard() {
	releaseBuffer(w.buf)
}
