// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/coffee-notes/internal/app"
	"github.com/MKhiriev/coffee-notes/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// When the path matches a registered route that does not handle the method,
// it answers 405 with an Allow header and a JSON error body. Paths without a
// route answer 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var found *chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				found = &route
				break
			}
		}

		if found == nil {
			http.NotFound(w, r)
			return
		}

		if _, ok := found.Handlers[r.Method]; ok {
			router.ServeHTTP(w, r)
			return
		}

		allowed := make([]string, 0, len(found.Handlers))
		for method := range found.Handlers {
			allowed = append(allowed, method)
		}
		slices.Sort(allowed)
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}
