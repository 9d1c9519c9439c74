package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"arsipku/internal/config"
	"arsipku/internal/service"
	"arsipku/internal/store"
)

// newTestServer spins up the full router over a fresh on-disk store.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "arsip.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()

	h := NewHandler(
		service.NewAuthService(st.Users()),
		service.NewDocumentService(st.Documents()),
		service.NewStatsService(st.Documents()),
		logger,
		cfg,
	)
	srv := httptest.NewServer(h.Router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path string, body any, cookies []*http.Cookie) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, srv.URL+path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

// registerUser creates an account and returns the auth cookies.
func registerUser(t *testing.T, srv *httptest.Server, email, password string) []*http.Cookie {
	t.Helper()
	resp := postJSON(t, srv, "/api/user/register", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

// uploadDocument posts a multipart upload and returns the decoded DTO.
func uploadDocument(t *testing.T, srv *httptest.Server, cookies []*http.Cookie, folder, name, fileName string, payload []byte) DocumentDTO {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("folder", folder))
	require.NoError(t, mw.WriteField("name", name))
	fw, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/documents", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var dto DocumentDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dto))
	return dto
}

func doRequest(t *testing.T, srv *httptest.Server, method, path string, body io.Reader, cookies []*http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, body)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func docPath(id int64, suffix string) string {
	return fmt.Sprintf("/api/documents/%d%s", id, suffix)
}
