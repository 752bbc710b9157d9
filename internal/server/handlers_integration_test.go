//go:build integration
// +build integration

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-parser/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const integrationResume = `EXPERIENCE

Acme Corp
Software Engineer    Jan 2020 - Dec 2022
- Reduced API latency by 30%
- Led migration to PostgreSQL

EDUCATION

BS Computer Science, State University, 2018

SKILLS

Go, Python, PostgreSQL, Docker`

// loginTestUser provisions a throwaway user and logs it in through the API,
// returning the user ID and a usable bearer token.
func loginTestUser(t *testing.T, server *Server, database *db.DB, email string) (uuid.UUID, string) {
	t.Helper()

	userID := createTestUser(t, server, database, email, "testpassword123")
	resp := loginAs(t, server, email, "testpassword123")
	return userID, resp.Token
}

func doJSON(t *testing.T, server *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(w, req)
	return w
}

func TestIntegration_ParseAndPersistFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	server, database := setupRouterTest(t)
	defer database.Close()

	_, token := loginTestUser(t, server, database, "parse-flow-"+uuid.NewString()+"@example.com")

	// Parse without auth is rejected.
	w := doJSON(t, server, http.MethodPost, "/parse", "", ParseRequest{Text: integrationResume})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Parse and save.
	w = doJSON(t, server, http.MethodPost, "/parse", token, ParseRequest{Text: integrationResume, Save: true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var parseResp ParseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parseResp))
	require.NotNil(t, parseResp.Profile)
	require.NotEmpty(t, parseResp.ProfileID)
	assert.NotEmpty(t, parseResp.Profile.Experience)
	assert.Equal(t, "Acme Corp", parseResp.Profile.Experience[0].Company)
	assert.NotEmpty(t, parseResp.Profile.Skills)

	profileID := parseResp.ProfileID

	// The saved profile shows up in the owner's list.
	w = doJSON(t, server, http.MethodGet, "/profiles", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Profiles []db.ResumeProfileSummary `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Profiles, 1)
	assert.Equal(t, profileID, listResp.Profiles[0].ID.String())
	assert.Equal(t, "text", listResp.Profiles[0].Source)

	// Fetch by ID round-trips the stored profile.
	w = doJSON(t, server, http.MethodGet, "/profiles/"+profileID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stored db.ResumeProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	require.NotNil(t, stored.Profile)
	assert.Equal(t, parseResp.Profile.Experience, stored.Profile.Experience)

	// Another user cannot see or delete it.
	_, otherToken := loginTestUser(t, server, database, "parse-other-"+uuid.NewString()+"@example.com")
	w = doJSON(t, server, http.MethodGet, "/profiles/"+profileID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, server, http.MethodDelete, "/profiles/"+profileID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Owner deletes it.
	w = doJSON(t, server, http.MethodDelete, "/profiles/"+profileID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, server, http.MethodGet, "/profiles/"+profileID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIntegration_ParseWithoutSave(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	server, database := setupRouterTest(t)
	defer database.Close()

	_, token := loginTestUser(t, server, database, "parse-nosave-"+uuid.NewString()+"@example.com")

	w := doJSON(t, server, http.MethodPost, "/parse", token, ParseRequest{Text: integrationResume})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var parseResp ParseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parseResp))
	assert.Empty(t, parseResp.ProfileID)

	// Nothing was persisted.
	w = doJSON(t, server, http.MethodGet, "/profiles", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Profiles []db.ResumeProfileSummary `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Profiles)
}
