package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MiddlewareSuite struct {
	suite.Suite
	logs   *bytes.Buffer
	logger *slog.Logger
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareSuite))
}

func (s *MiddlewareSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	s.logger = slog.New(slog.NewJSONHandler(s.logs, nil))
}

func (s *MiddlewareSuite) lastLog() map[string]any {
	var entry map[string]any
	s.Require().NoError(json.Unmarshal(s.logs.Bytes(), &entry))
	return entry
}

func (s *MiddlewareSuite) TestLoggingRecordsStatusAndSize() {
	h := Logging(s.logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/analysis", nil))

	entry := s.lastLog()
	s.Equal("http request", entry["msg"])
	s.Equal("INFO", entry["level"])
	s.Equal("/api/v1/analysis", entry["path"])
	s.EqualValues(http.StatusCreated, entry["status"])
	s.EqualValues(5, entry["size"])
}

func (s *MiddlewareSuite) TestLoggingLevelFollowsStatus() {
	h := Logging(s.logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	s.Equal("WARN", s.lastLog()["level"])
}

func (s *MiddlewareSuite) TestRecoveryCallsPanicHandler() {
	var recovered any
	h := Recovery(s.logger, func(w http.ResponseWriter, r *http.Request, err any) {
		recovered = err
		w.WriteHeader(http.StatusTeapot)
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusTeapot, rec.Code)
	s.Equal("boom", recovered)
	s.Equal("panic recovered", s.lastLog()["msg"])
}
