// Homematch - Property Recommendation and Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homematch

package api

import (
	"net/http"
	"strings"
)

// webDir is the root directory for static frontend assets.
const webDir = "./web"

// Router sets up HTTP routes using the Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a new router with all routes configured.
// A nil middleware factory falls back to the secure defaults.
func NewRouter(handler *Handler, chiMw *ChiMiddleware) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}

	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
	}
}

// serveStaticOrIndex serves the search frontend and its static assets.
// Unknown paths return a JSON 404 rather than falling back to the index
// page so that mistyped API routes fail loudly.
func (router *Router) serveStaticOrIndex(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	// Set Cache-Control headers based on file type
	if strings.HasSuffix(path, ".js") || strings.HasSuffix(path, ".css") {
		// Long cache for versioned assets (1 year)
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	} else if strings.HasSuffix(path, ".png") || strings.HasSuffix(path, ".svg") || strings.HasSuffix(path, ".jpg") || strings.HasSuffix(path, ".webp") || strings.HasSuffix(path, ".avif") {
		// Cache images for 7 days
		w.Header().Set("Cache-Control", "public, max-age=604800")
	} else if path == "/" || path == "/index.html" {
		// Short cache for HTML to allow quick updates
		w.Header().Set("Cache-Control", "public, max-age=300")
	}

	if path == "/" || path == "/index.html" {
		http.ServeFile(w, r, webDir+"/index.html")
		return
	}

	if fileExists(path) {
		http.FileServer(http.Dir(webDir)).ServeHTTP(w, r)
		return
	}

	respondError(w, http.StatusNotFound, "Not found", nil)
}

// fileExists checks if a file exists under the web root
func fileExists(path string) bool {
	info, err := http.Dir(webDir).Open(path)
	if err != nil {
		return false
	}
	defer info.Close()

	stat, err := info.Stat()
	if err != nil {
		return false
	}

	return !stat.IsDir()
}
