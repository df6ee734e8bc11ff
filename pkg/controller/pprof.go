package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux returns an http.ServeMux exposing the net/http/pprof handlers.
// The index at "/" also serves the named runtime profiles (heap, goroutine,
// and so on). Callers mount it under a debug prefix with http.StripPrefix.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", pprof.Index)
	for path, h := range map[string]http.HandlerFunc{
		"/cmdline": pprof.Cmdline,
		"/profile": pprof.Profile,
		"/symbol":  pprof.Symbol,
		"/trace":   pprof.Trace,
	} {
		mux.HandleFunc(path, h)
	}

	return mux
}
