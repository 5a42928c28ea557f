package integration_tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	serverBinaryPath = "./bandserver_test_binary"
	testStorePath    = "./test_band.json"
	testLangPath     = "./test_band.lang"
	testPort         = "8091"
	serverBaseURL    = "http://localhost:" + testPort
	testJwtSecret    = "a-very-secure-secret-for-testing-only"
	adminPassword    = "integration-password"
	readinessTimeout = 15 * time.Second
	readinessPoll    = 200 * time.Millisecond
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// TestMain builds the real binary, runs it against temp store files and
// tears everything down afterwards.
func TestMain(m *testing.M) {
	log.Println("INFO: Building server binary for integration tests...")
	buildCmd := exec.Command("go", "build", "-o", serverBinaryPath, "..")
	buildCmd.Dir = "."
	if output, err := buildCmd.CombinedOutput(); err != nil {
		log.Fatalf("FATAL: Failed to build server binary: %v\nOutput:\n%s", err, string(output))
	}

	absBinaryPath, _ := filepath.Abs(serverBinaryPath)
	absStorePath, _ := filepath.Abs(testStorePath)
	absLangPath, _ := filepath.Abs(testLangPath)

	env := append(os.Environ(),
		fmt.Sprintf("BANDSERVER_STORE_FILE_PATH=%s", absStorePath),
		fmt.Sprintf("BANDSERVER_LANG_FILE_PATH=%s", absLangPath),
		fmt.Sprintf("BANDSERVER_JWT_SECRET=%s", testJwtSecret),
		fmt.Sprintf("BANDSERVER_LISTEN_PORT=%s", testPort),
		fmt.Sprintf("BANDSERVER_ADMIN_PASSWORD=%s", adminPassword),
		"BANDSERVER_LISTEN_ADDRESS=127.0.0.1",
		"BANDSERVER_SAVE_INTERVAL=100ms",
		"BANDSERVER_ENABLE_BACKUP=false",
	)

	log.Printf("INFO: Starting server on port %s (store: %s)", testPort, absStorePath)
	serverCmd := exec.Command(absBinaryPath)
	serverCmd.Env = env
	serverCmd.Stdout = os.Stdout
	serverCmd.Stderr = os.Stderr
	if err := serverCmd.Start(); err != nil {
		log.Fatalf("FATAL: Failed to start server process: %v", err)
	}

	exitCode := 1
	if waitForServerReady(serverBaseURL+"/site/content", readinessTimeout) {
		exitCode = m.Run()
	} else {
		log.Println("FATAL: Server did not become ready in time")
	}

	log.Println("INFO: Stopping server process...")
	_ = serverCmd.Process.Signal(syscall.SIGTERM)
	done := make(chan struct{})
	go func() { _ = serverCmd.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		_ = serverCmd.Process.Kill()
	}

	for _, path := range []string{serverBinaryPath, testStorePath, testLangPath} {
		_ = os.Remove(path)
	}

	os.Exit(exitCode)
}

func waitForServerReady(url string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := httpClient.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return true
			}
		}
		time.Sleep(readinessPoll)
	}
	return false
}

// doRequest sends a request with an optional JSON body and bearer token,
// decoding the JSON response into out when out is non-nil.
func doRequest(t *testing.T, method, path string, body interface{}, token string, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, serverBaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		if len(data) > 0 {
			require.NoError(t, json.Unmarshal(data, out), "Failed to decode response: %s", string(data))
		}
	}
	return resp.StatusCode
}

func login(t *testing.T) string {
	t.Helper()
	var resp struct {
		Token string `json:"token"`
	}
	status := doRequest(t, http.MethodPost, "/auth/login",
		map[string]string{"username": "admin", "password": adminPassword}, "", &resp)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// The whole CMS round trip against the live server: publish a release,
// moderate the fan wall, restyle the site, and watch it all land on the
// public endpoints.
func TestAdminPublishingWorkflow(t *testing.T) {
	token := login(t)

	// Admin routes are closed without a token.
	status := doRequest(t, http.MethodGet, "/admin/albums", nil, "", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	// Publish an album with one active song.
	var album struct {
		ID int64 `json:"id"`
	}
	status = doRequest(t, http.MethodPost, "/admin/albums", map[string]interface{}{
		"title":    "Integration LP",
		"genre":    "electronic",
		"isActive": true,
	}, token, &album)
	require.Equal(t, http.StatusCreated, status)
	require.NotZero(t, album.ID)

	var song struct {
		ID int64 `json:"id"`
	}
	status = doRequest(t, http.MethodPost, "/admin/songs", map[string]interface{}{
		"title":    "Integration Anthem",
		"albumId":  album.ID,
		"isActive": true,
	}, token, &song)
	require.Equal(t, http.StatusCreated, status)

	// A fan posts a comment; it starts pending and stays off the wall.
	var comment struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	status = doRequest(t, http.MethodPost, "/site/comments", map[string]string{
		"username": "integration-fan",
		"message":  "Che bomba!",
	}, "", &comment)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "pending", comment.Status)

	var wall []struct {
		ID int64 `json:"id"`
	}
	status = doRequest(t, http.MethodGet, "/site/comments", nil, "", &wall)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, wall)

	// Approve it.
	status = doRequest(t, http.MethodPut, fmt.Sprintf("/admin/comments/%d/approve", comment.ID), nil, token, nil)
	require.Equal(t, http.StatusOK, status)

	// Restyle the site; the revision counter moves.
	var theme struct {
		Revision int64 `json:"revision"`
	}
	status = doRequest(t, http.MethodPut, "/admin/settings/theme",
		map[string]string{"primaryColor": "#00ff88"}, token, &theme)
	require.Equal(t, http.StatusOK, status)
	assert.Greater(t, theme.Revision, int64(0))

	// The public payload now carries everything.
	var content struct {
		ThemeRevision int64 `json:"themeRevision"`
		Albums        []struct {
			ID int64 `json:"id"`
		} `json:"albums"`
		Comments []struct {
			ID int64 `json:"id"`
		} `json:"comments"`
		Theme struct {
			PrimaryColor string `json:"primaryColor"`
		} `json:"theme"`
	}
	status = doRequest(t, http.MethodGet, "/site/content", nil, "", &content)
	require.Equal(t, http.StatusOK, status)

	found := false
	for _, a := range content.Albums {
		if a.ID == album.ID {
			found = true
		}
	}
	assert.True(t, found, "The published album must appear on the public site")
	require.NotEmpty(t, content.Comments)
	assert.Equal(t, "#00ff88", content.Theme.PrimaryColor)
	assert.Equal(t, theme.Revision, content.ThemeRevision)

	// Pull the album; the cascade also takes the song off the site.
	status = doRequest(t, http.MethodDelete, fmt.Sprintf("/admin/albums/%d", album.ID), nil, token, nil)
	require.Equal(t, http.StatusNoContent, status)

	var songs []struct {
		ID int64 `json:"id"`
	}
	status = doRequest(t, http.MethodGet, "/admin/songs", nil, token, &songs)
	require.Equal(t, http.StatusOK, status)
	for _, s := range songs {
		assert.NotEqual(t, song.ID, s.ID, "Songs of a deleted album must be gone")
	}
}

func TestPasswordRotationWorkflow(t *testing.T) {
	token := login(t)

	// Rotate the password.
	status := doRequest(t, http.MethodPut, "/auth/password", map[string]string{
		"currentPassword": adminPassword,
		"newPassword":     "rotated-integration-pw",
	}, token, nil)
	require.Equal(t, http.StatusOK, status)

	// The old password is dead, the new one works.
	status = doRequest(t, http.MethodPost, "/auth/login",
		map[string]string{"username": "admin", "password": adminPassword}, "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	var resp struct {
		Token string `json:"token"`
	}
	status = doRequest(t, http.MethodPost, "/auth/login",
		map[string]string{"username": "admin", "password": "rotated-integration-pw"}, "", &resp)
	require.Equal(t, http.StatusOK, status)

	// Rotate back so other tests and reruns keep working.
	status = doRequest(t, http.MethodPut, "/auth/password", map[string]string{
		"currentPassword": "rotated-integration-pw",
		"newPassword":     adminPassword,
	}, resp.Token, nil)
	require.Equal(t, http.StatusOK, status)
}
