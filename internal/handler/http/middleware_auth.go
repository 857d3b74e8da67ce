// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing and cross-origin
// concerns are all handled at this layer before requests are forwarded
// to the service layer.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/adhd-assistant/api/internal/logger"
	"github.com/adhd-assistant/api/internal/service"
	"github.com/adhd-assistant/api/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the access token from the "Authorization" header, resolves
// it into the active user via [service.AuthService.CurrentUser] and stores
// the user in the request context under [utils.CurrentUserCtxKey] before
// delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized and a
// "WWW-Authenticate: Bearer" challenge when the header is absent, the
// token cannot be extracted, or the token does not resolve to an active
// user (wrong type, expired, bad signature, unknown or deactivated account).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			unauthorized(w, err.Error())
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.CurrentUser(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidToken):
				log.Err(err).Msg("access token rejected")
				unauthorized(w, service.ErrInvalidToken.Error())
			default:
				log.Err(err).Msg("error occurred during token resolution")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can use it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// unauthorized writes a 401 response carrying the bearer challenge
// required by RFC 6750 for protected resources.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	http.Error(w, message, http.StatusUnauthorized)
}
