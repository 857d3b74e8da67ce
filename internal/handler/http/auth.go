package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adhd-assistant/api/internal/logger"
	"github.com/adhd-assistant/api/internal/service"
	"github.com/adhd-assistant/api/internal/utils"
	"github.com/adhd-assistant/api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req.Email, req.Password, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid registration data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			http.Error(w, service.ErrEmailAlreadyExists.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("user_id", user.ID.String()).Msg("user successfully registered")

	utils.WriteJSON(w, models.MessageResponse{Message: "user registered successfully"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	pair, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("login rejected")
			http.Error(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.NewTokenResponse(pair), http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	pair, err := h.services.AuthService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			log.Err(err).Msg("refresh token rejected")
			http.Error(w, service.ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during token refresh")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.NewTokenResponse(pair), http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetCurrentUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.AuthService.UpdateProfile(ctx, user.ID, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid profile data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidToken):
			log.Err(err).Msg("authenticated user no longer resolvable")
			unauthorized(w, service.ErrInvalidToken.Error())
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "ok"}, http.StatusOK)
}
