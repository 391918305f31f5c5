package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-measure-gateway/internal/logger"
	"github.com/MKhiriev/go-measure-gateway/internal/service"
	"github.com/MKhiriev/go-measure-gateway/internal/store"
	"github.com/MKhiriev/go-measure-gateway/internal/utils"
	"github.com/MKhiriev/go-measure-gateway/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, "invalid JSON was passed", models.CodeValidationError, 0)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Warn().Err(err).Msg("invalid data provided")
			writeError(w, r, "login and password are required", models.CodeValidationError, 0)
			return
		case errors.Is(err, store.ErrLoginAlreadyExists):
			log.Warn().Err(err).Str("login", user.Login).Msg("login already exists")
			writeErrorStatus(w, r, http.StatusConflict, "login already exists", models.CodeValidationError, 0)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, r, "registration failed", models.CodeInternalError, 0)
			return
		}
	}

	log.Info().Int64("id", registeredUser.UserID).Str("login", registeredUser.Login).Msg("user registered")

	response := models.RegisterResponse{
		Login:   registeredUser.Login,
		Message: "user registered successfully",
	}
	if _, err := utils.WriteJSON(w, response, http.StatusCreated); err != nil {
		log.Err(err).Msg("failed to write register response")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, "invalid JSON was passed", models.CodeValidationError, 0)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Warn().Err(err).Msg("invalid data provided")
			writeError(w, r, "login and password are required", models.CodeValidationError, 0)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Warn().Str("login", user.Login).Msg("authentication failed")
			writeError(w, r, "invalid credentials", models.CodeUnauthenticated, 0)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, r, "login failed", models.CodeInternalError, 0)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, "login failed", models.CodeInternalError, 0)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	response := models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write login response")
	}
}

// me returns the account record behind the presented token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in authenticated request context")
		writeError(w, r, "authentication required", models.CodeUnauthenticated, 0)
		return
	}

	log.Debug().Int64("id", userID).Msg("profile requested")

	user, err := h.services.AuthService.GetUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile lookup failed")
		writeError(w, r, "profile lookup failed", models.CodeInternalError, 0)
		return
	}

	response := models.UserInfoResponse{
		Login:  user.Login,
		Email:  user.Email,
		Active: user.Active,
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write profile response")
	}
}
