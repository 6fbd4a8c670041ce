//go:build integration
// +build integration

package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/tuesday/internal/config"
	"github.com/bagdasarian/tuesday/internal/handler"
	"github.com/bagdasarian/tuesday/internal/handler/server"
)

func TestHTTPFlow(t *testing.T) {
	app := newTestApp(setupTestDB(t))
	h := handler.NewHandler(zerolog.Nop(), app.boards, app.tasks, app.users, app.overview, app.admin)
	srv := httptest.NewServer(server.NewRouter(h, config.HTTPConfig{AllowedOrigins: []string{"*"}}, zerolog.Nop()))
	t.Cleanup(srv.Close)

	do := func(method, path, body string) (*http.Response, map[string]any) {
		t.Helper()
		req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		var payload map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return resp, payload
	}

	t.Run("пустой заголовок доски", func(t *testing.T) {
		resp, payload := do(http.MethodPost, "/api/boards", `{"title":"  "}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.NotEmpty(t, payload["error"])

		resp, _ = do(http.MethodGet, "/api/boards", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("полный цикл доски", func(t *testing.T) {
		resp, board := do(http.MethodPost, "/api/boards", `{"title":"Roadmap"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		boardID := board["id"].(string)

		resp, column := do(http.MethodPost, "/api/boards/"+boardID+"/columns", `{"title":"Todo"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.EqualValues(t, 0, column["order"])
		assert.Equal(t, "#71717a", column["color"])
		columnID := column["id"].(string)

		resp, task := do(http.MethodPost, "/api/columns/"+columnID+"/tasks", `{"title":"Write docs"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "Unassigned", task["owner"])
		taskID := task["id"].(string)

		resp, task = do(http.MethodPut, "/api/tasks/"+taskID, `{"id":"hijack","status":"Done"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, taskID, task["id"])
		assert.Equal(t, "Done", task["status"])

		resp, payload := do(http.MethodDelete, "/api/tasks/"+taskID, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, payload["success"])

		resp, _ = do(http.MethodDelete, "/api/tasks/"+taskID, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("некорректные идентификаторы дают 404", func(t *testing.T) {
		resp, _ := do(http.MethodGet, "/api/boards/not-a-uuid", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, _ = do(http.MethodDelete, "/api/tasks/not-a-uuid", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("недельный обзор", func(t *testing.T) {
		resp, _ := do(http.MethodGet, "/api/overview/weekly", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp, user := do(http.MethodPost, "/api/admin/users", `{"name":"Alice","email":"alice@example.com"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		userID := user["id"].(string)

		resp, _ = do(http.MethodGet, "/api/overview/weekly?userId="+userID+"&weekStart=Feb%2023", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp, overview := do(http.MethodGet, "/api/overview/weekly?userId="+userID+"&weekStart=2026-02-23", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "2026-03-01", overview["weekEnd"])
		assert.Len(t, overview["days"], 7)
	})
}
