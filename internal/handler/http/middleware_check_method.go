package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] intended to be registered
// as the router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This function overrides that behaviour and responds with
// HTTP 404 Not Found instead, hiding the existence of the route from
// callers that use an unsupported method.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
