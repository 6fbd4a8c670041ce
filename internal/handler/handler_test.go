package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/tuesday/internal/mocks"
)

type serviceMocks struct {
	board    *mocks.MockBoardService
	task     *mocks.MockTaskService
	user     *mocks.MockUserService
	overview *mocks.MockOverviewService
	admin    *mocks.MockAdminService
}

func (m *serviceMocks) assertExpectations(t *testing.T) {
	m.board.AssertExpectations(t)
	m.task.AssertExpectations(t)
	m.user.AssertExpectations(t)
	m.overview.AssertExpectations(t)
	m.admin.AssertExpectations(t)
}

// setupHandler создает Handler на моках сервисов; логи пишутся в возвращаемый буфер
func setupHandler() (*Handler, *serviceMocks, *bytes.Buffer) {
	m := &serviceMocks{
		board:    new(mocks.MockBoardService),
		task:     new(mocks.MockTaskService),
		user:     new(mocks.MockUserService),
		overview: new(mocks.MockOverviewService),
		admin:    new(mocks.MockAdminService),
	}
	logs := new(bytes.Buffer)
	h := NewHandler(zerolog.New(logs), m.board, m.task, m.user, m.overview, m.admin)
	return h, m, logs
}

func newRequest(method, target, body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, target, nil)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func strPtr(s string) *string {
	return &s
}
