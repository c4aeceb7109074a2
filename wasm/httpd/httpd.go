// The httpd program serves the contents of the www directory for testing the
// wasm build locally
package main

import (
	"flag"
	"log"
	"net/http"
	"strings"
)

type handler struct {
	fileHandler http.Handler
}

// Handler returns an http.Handler serving files from the directory. wasm
// files are served with the correct content type
func Handler(dir string) *handler {
	hnd := handler{
		fileHandler: http.FileServer(http.Dir(dir)),
	}
	return &hnd
}

func (hnd *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("%s %s", r.Method, r.RequestURI)
	if strings.HasSuffix(r.URL.Path, ".wasm") {
		w.Header().Set("Content-Type", "application/wasm")
	}
	hnd.fileHandler.ServeHTTP(w, r)
}

func main() {
	addr := flag.String("addr", "localhost:12641", "address to listen on")
	dir := flag.String("dir", "www", "directory to serve")
	flag.Parse()

	log.Printf("reticle test server listening on %s", *addr)
	err := http.ListenAndServe(*addr, Handler(*dir))
	if err != nil {
		log.Fatalln(err.Error())
	}
}
