package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kunalverma25/gomart/internal/logger"
	"github.com/kunalverma25/gomart/internal/middleware"
	"github.com/kunalverma25/gomart/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
	log  *logger.Logger
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		auth: authService,
		log:  logger.New("auth-handler"),
	}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type LoginUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type VerifyResponse struct {
	Valid  bool  `json:"valid"`
	UserID int64 `json:"user_id"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	u, err := h.auth.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		status, message := statusFromError(err)
		if status == http.StatusInternalServerError {
			h.log.Error("Registration failed: %v", err)
		}
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		UserID:  u.ID,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	u, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		status, message := statusFromError(err)
		if status == http.StatusInternalServerError {
			h.log.Error("Login failed: %v", err)
		}
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Token: token,
		User: LoginUser{
			ID:    u.ID,
			Email: u.Email,
			Name:  u.Name,
		},
	})
}

// Verify lets callers check a token without any database access. It answers
// from the token and the shared secret alone.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	claims, err := h.auth.VerifyToken(middleware.BearerToken(r))
	if err != nil {
		status, message := statusFromError(err)
		respondError(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, VerifyResponse{
		Valid:  true,
		UserID: claims.UserID,
	})
}
