// internal/api/api_integration_test.go
package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "guestbook/internal"
	"guestbook/pkg/db"
)

// testApp is the global application instance for testing.
var testApp *app.Application

// testServer is the httptest server.
var testServer *httptest.Server

// TestMain boots the whole application against a throwaway sqlite database.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "guestbook-api-test")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	setupEnvVars(filepath.Join(dir, "guestbook.db"))

	testApp = app.NewApplication()
	if err := testApp.Initialize(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize test application: %v\n", err)
		os.RemoveAll(dir)
		os.Exit(1)
	}

	testServer = httptest.NewServer(testApp.HTTPHandler)

	code := m.Run()

	testServer.Close()
	if err := testApp.Shutdown(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to shutdown test application: %v\n", err)
		code = 1
	}
	os.RemoveAll(dir)
	os.Exit(code)
}

func setupEnvVars(path string) {
	os.Setenv("DB_DRIVER", db.DriverSQLite)
	os.Setenv("DB_PATH", path)
	os.Setenv("DB_INIT_SCHEMA", "true")
	os.Setenv("LOG_LEVEL", "error")
}

// clearDatabase removes all entries so each test starts from an empty guestbook.
func clearDatabase(t *testing.T) {
	_, err := testApp.DB.Exec("DELETE FROM guestbook")
	require.NoError(t, err)
}

type listBody struct {
	Data []struct {
		No      int64  `json:"no"`
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"data"`
	Count int `json:"count"`
}

func postForm(t *testing.T, path string, form url.Values) *http.Response {
	resp, err := http.PostForm(testServer.URL+path, form)
	require.NoError(t, err)
	return resp
}

func getList(t *testing.T) listBody {
	resp, err := http.Get(testServer.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body listBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestGuestbookFlowIntegration(t *testing.T) {
	clearDatabase(t)

	// Posting follows the redirect back to the list.
	resp := postForm(t, "/add", url.Values{"name": {"bob"}, "message": {"first"}, "password": {"pw"}})
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postForm(t, "/add", url.Values{"name": {"alice"}, "message": {"hi"}, "password": {"secret"}})
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")

	list := getList(t)
	require.Equal(t, 2, list.Count)
	newest := list.Data[0]
	assert.Equal(t, "alice", newest.Name)
	assert.Equal(t, "hi", newest.Message)
	assert.Greater(t, newest.No, list.Data[1].No)

	t.Run("DeleteFormDescribesEntry", func(t *testing.T) {
		resp, err := http.Get(fmt.Sprintf("%s/delete/%d", testServer.URL, newest.No))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("WrongPasswordKeepsEntry", func(t *testing.T) {
		resp := postForm(t, fmt.Sprintf("/delete/%d", newest.No), url.Values{"password": {"wrong"}})
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 2, getList(t).Count)
	})

	t.Run("CorrectPasswordDeletes", func(t *testing.T) {
		resp := postForm(t, fmt.Sprintf("/delete/%d", newest.No), url.Values{"password": {"secret"}})
		resp.Body.Close()

		list := getList(t)
		require.Equal(t, 1, list.Count)
		assert.Equal(t, "bob", list.Data[0].Name)
	})

	t.Run("DeletedEntryIsGone", func(t *testing.T) {
		resp, err := http.Get(fmt.Sprintf("%s/delete/%d", testServer.URL, newest.No))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestAddValidationIntegration(t *testing.T) {
	clearDatabase(t)

	resp, err := http.Post(testServer.URL+"/add", "application/x-www-form-urlencoded", strings.NewReader("name=&message=hi"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, getList(t).Count)
}
