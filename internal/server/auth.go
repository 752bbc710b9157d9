package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ctxKey keeps context values private to this package.
type ctxKey int

const userIDContextKey ctxKey = iota

// requireAuth wraps a handler so it only runs for requests carrying a valid
// bearer token. The token's user ID is placed on the request context.
func (s *Server) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		userID, err := s.tokens.Verify(token)
		if err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// authenticatedUser returns the user ID requireAuth stored on the context.
func authenticatedUser(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(userIDContextKey).(uuid.UUID)
	return userID, ok
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the bearer token for subsequent requests.
type LoginResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"user_id"`
}

// handleLogin verifies credentials and issues a bearer token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := s.db.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	// An unknown email and a wrong password are indistinguishable to the
	// caller.
	if user == nil || !user.PasswordSet || !s.passwords.VerifyPassword(req.Password, user.PasswordHash) {
		s.errorResponse(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, LoginResponse{Token: token, UserID: user.ID})
}
