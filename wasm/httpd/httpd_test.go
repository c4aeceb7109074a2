package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/reticle/test"
)

func TestHandler(t *testing.T) {
	dir := t.TempDir()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "reticle.wasm"), []byte{0x00, 0x61, 0x73, 0x6d}, 0600))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0600))

	hnd := Handler(dir)

	rec := httptest.NewRecorder()
	hnd.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reticle.wasm", nil))
	test.ExpectEquality(t, rec.Code, http.StatusOK)
	test.ExpectEquality(t, rec.Header().Get("Content-Type"), "application/wasm")

	rec = httptest.NewRecorder()
	hnd.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index.html", nil))
	test.ExpectEquality(t, rec.Code, http.StatusOK)
	test.ExpectInequality(t, rec.Header().Get("Content-Type"), "application/wasm")

	rec = httptest.NewRecorder()
	hnd.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing.wasm", nil))
	test.ExpectEquality(t, rec.Code, http.StatusNotFound)
}
