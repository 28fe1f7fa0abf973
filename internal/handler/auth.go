package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/inkpost/inkpost/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondInvalid(w, "Invalid request body")
		return
	}

	// Local validation runs before any service call; a password/confirm
	// mismatch never reaches the backend
	err = validate.Struct(req)
	if err != nil {
		respondInvalid(w, validationMessage(err))
		return
	}

	user, err := h.authService.SignUp(req.Name, req.Email, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate JWT", "error", err, "user_id", user.ID)
		respondError(w, r, err)
		return
	}

	h.authService.SetJWTCookie(w, token, time.Now().Add(h.authService.JWTExpiry()))

	slog.Info("user signed up", "user_id", user.ID, "email", user.Email)
	respondSuccess(w)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondInvalid(w, "Invalid request body")
		return
	}

	err = validate.Struct(req)
	if err != nil {
		respondInvalid(w, validationMessage(err))
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate JWT", "error", err, "user_id", user.ID)
		respondError(w, r, err)
		return
	}

	h.authService.SetJWTCookie(w, token, time.Now().Add(h.authService.JWTExpiry()))

	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)
	respondSuccess(w)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	respondSuccess(w)
}
