package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/parser"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
)

// ParseRequest represents the request body for /parse. Exactly one of
// text or url must be set.
type ParseRequest struct {
	Text       string `json:"text,omitempty" validate:"required_without=URL,excluded_with=URL"`
	URL        string `json:"url,omitempty" validate:"omitempty,url"`
	UseBrowser bool   `json:"use_browser,omitempty"` // render the URL in a headless browser first
	UseLLMHint bool   `json:"use_llm_hint,omitempty"`
	Save       bool   `json:"save,omitempty"` // persist the profile for the authenticated user
}

// ParseResponse represents the response for /parse
type ParseResponse struct {
	Profile   *types.StructuredProfile `json:"profile"`
	Metadata  *ingestion.Metadata      `json:"metadata"`
	ProfileID string                   `json:"profile_id,omitempty"`
}

// parseRequestError maps a ParseRequest validation failure to a client
// message.
func parseRequestError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Tag() {
		case "required_without":
			return "Either text or url is required"
		case "excluded_with":
			return "text and url are mutually exclusive"
		case "url":
			return "url is not a valid URL"
		}
	}
	return validationMessage(err)
}

// handleParse ingests resume text or a resume URL, runs the parser, and
// optionally persists the resulting profile.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, parseRequestError(err))
		return
	}

	var (
		cleaned string
		meta    *ingestion.Metadata
		source  string
	)
	if req.URL != "" {
		var err error
		cleaned, meta, err = ingestion.IngestFromURL(r.Context(), req.URL, req.UseBrowser, false)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch resume: "+err.Error())
			return
		}
		source = req.URL
	} else {
		cleaned = ingestion.CleanText(req.Text)
		meta = ingestion.NewMetadata(cleaned, "")
		source = "text"
	}

	var hint *types.StructuredProfile
	if req.UseLLMHint {
		if s.llmClient == nil {
			s.errorResponse(w, http.StatusBadRequest, "LLM hint requested but no API key configured")
			return
		}
		var err error
		hint, err = llm.BuildProfileHint(r.Context(), s.llmClient, cleaned)
		if err != nil {
			// Hint failures degrade to heuristic parsing.
			log.Printf("[parse] LLM hint failed, falling back to heuristics: %v", err)
			hint = nil
		}
	}

	profile, err := s.parser.ParseOrHint(cleaned, hint)
	if err != nil {
		var emptyErr *parser.EmptyInputError
		if errors.As(err, &emptyErr) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to parse resume: "+err.Error())
		return
	}

	resp := ParseResponse{
		Profile:  profile,
		Metadata: meta,
	}

	if req.Save {
		userID, ok := authenticatedUser(r)
		if !ok {
			s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := schemas.ValidateProfile(profile); err != nil {
			s.errorResponse(w, http.StatusUnprocessableEntity, "Profile failed schema validation: "+err.Error())
			return
		}

		profileID, err := s.db.SaveProfile(r.Context(), &db.ProfileCreateInput{
			UserID:  userID,
			Source:  source,
			RawText: cleaned,
			Profile: profile,
		})
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to save profile: "+err.Error())
			return
		}
		resp.ProfileID = profileID.String()
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
