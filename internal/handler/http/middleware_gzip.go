package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/coffee-notes/internal/app"
	"github.com/MKhiriev/coffee-notes/internal/utils"
)

const compressionLevel = gzip.BestSpeed

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withCompression gzips JSON and plain-text responses for clients that accept it.
func withCompression(next http.Handler) http.Handler {
	return middleware.Compress(compressionLevel, "application/json", "text/plain")(next)
}

// withGZipBody transparently inflates request bodies sent with
// Content-Encoding: gzip. A body that is not valid gzip is rejected with 400.
func withGZipBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Body == nil || !strings.Contains(req.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		zr := gzipReaderPool.Get().(*gzip.Reader)
		if err := zr.Reset(req.Body); err != nil {
			gzipReaderPool.Put(zr)
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		req.Body = &pooledGZipBody{Reader: zr, source: req.Body}
		req.Header.Del("Content-Encoding")
		req.ContentLength = -1

		next.ServeHTTP(w, req)
	})
}

type pooledGZipBody struct {
	*gzip.Reader
	source io.Closer
	closed bool
}

func (b *pooledGZipBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	err := b.Reader.Close()
	gzipReaderPool.Put(b.Reader)
	if cerr := b.source.Close(); err == nil {
		err = cerr
	}
	return err
}
