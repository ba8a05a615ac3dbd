package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedLifecycle(t *testing.T) {
	_, app := setupTestServer(t)
	signup(t, app, "alice")
	bobID := signup(t, app, "bob")
	aliceToken := login(t, app, "alice")
	bobToken := login(t, app, "bob")

	// Build some history: alice posts, bob likes it, alice follows bob.
	resp := doJSON(t, app, http.MethodPost, "/posts/", aliceToken, map[string]string{"content": "hello"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	postID := uint(decodeBody(t, resp)["id"].(float64))

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/posts/%d/like", postID), bobToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/users/%d/follow", bobID), aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/activity/feed", aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer func() { _ = resp.Body.Close() }()

	var feed []struct {
		Message string `json:"message"`
		Verb    string `json:"verb"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	require.Len(t, feed, 3)

	// Newest first.
	assert.Equal(t, "alice followed bob", feed[0].Message)
	assert.Equal(t, "bob liked alice's post", feed[1].Message)
	assert.Equal(t, "alice made a post", feed[2].Message)

	// The feed requires authentication.
	resp = doJSON(t, app, http.MethodGet, "/activity/feed", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestFeedHidesBlockersHistory(t *testing.T) {
	_, app := setupTestServer(t)
	aliceID := signup(t, app, "alice")
	signup(t, app, "bob")
	aliceToken := login(t, app, "alice")
	bobToken := login(t, app, "bob")

	resp := doJSON(t, app, http.MethodPost, "/posts/", bobToken, map[string]string{"content": "bob's"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/posts/", aliceToken, map[string]string{"content": "alice's"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Bob blocks alice. Blocking itself writes nothing to the ledger, but
	// from now on every activity bob ever produced is invisible to alice.
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/users/%d/block", aliceID), bobToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/activity/feed", aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer func() { _ = resp.Body.Close() }()

	var feed []struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	require.Len(t, feed, 1)
	assert.Equal(t, "alice made a post", feed[0].Message)

	// Bob still sees everything; blocking is one-directional.
	resp = doJSON(t, app, http.MethodGet, "/activity/feed", bobToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer func() { _ = resp.Body.Close() }()
	feed = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	assert.Len(t, feed, 2)
}
