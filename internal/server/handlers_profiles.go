package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// handleGetProfile returns a stored profile by ID. Profiles are scoped to
// their owner; requests for another user's profile return 404.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(r)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	profile, err := s.db.GetProfileByID(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get profile: "+err.Error())
		return
	}
	if profile == nil || profile.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleListProfiles returns profile summaries for the authenticated user.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(r)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		var err error
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
	}

	summaries, err := s.db.ListProfilesByUser(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list profiles: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"profiles": summaries})
}

// handleDeleteProfile deletes a stored profile owned by the authenticated user.
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(r)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	// Ownership check before delete.
	profile, err := s.db.GetProfileByID(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get profile: "+err.Error())
		return
	}
	if profile == nil || profile.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	if err := s.db.DeleteProfile(r.Context(), profileID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete profile: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
