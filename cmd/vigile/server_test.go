package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/plumesocial/vigile/moderation"
	"github.com/plumesocial/vigile/moderation/detectors"
	"github.com/plumesocial/vigile/moderation/engine"
	"github.com/plumesocial/vigile/moderation/modstore"
	"github.com/plumesocial/vigile/moderation/offenderstore"
)

func testServer() *Server {
	records := modstore.NewMemStore()
	eng := &moderation.Engine{
		Logger:    slog.Default(),
		Detectors: detectors.Defaults(),
		Offenders: offenderstore.NewMemOffenderStore(),
		Records:   records,
	}
	return &Server{
		logger:  slog.Default(),
		engine:  eng,
		records: records,
	}
}

func postEvaluate(t *testing.T, srv *Server, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/moderation/evaluate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	c := e.NewContext(req, rr)
	return rr, srv.handleEvaluate(c)
}

func TestHandleEvaluateClean(t *testing.T) {
	assert := assert.New(t)

	srv := testServer()
	rr, err := postEvaluate(t, srv, `{"content": "bonjour tout le monde", "contentType": "POST", "authorId": "user1"}`)
	assert.NoError(err)
	assert.Equal(200, rr.Code)

	var view engine.VerdictView
	assert.NoError(json.Unmarshal(rr.Body.Bytes(), &view))
	assert.True(view.IsClean)
	assert.False(view.ShouldBlock)
	assert.Equal(0, view.Score)
	assert.Empty(view.Issues)
}

func TestHandleEvaluateBlocked(t *testing.T) {
	assert := assert.New(t)

	srv := testServer()
	rr, err := postEvaluate(t, srv, `{"content": "salope salope salope", "contentType": "COMMENT", "authorId": "user1"}`)
	assert.NoError(err)
	assert.Equal(200, rr.Code)

	var view engine.VerdictView
	assert.NoError(json.Unmarshal(rr.Body.Bytes(), &view))
	assert.False(view.IsClean)
	assert.True(view.ShouldBlock)
	assert.Equal(engine.SeverityCritical, view.Severity)
	assert.NotEmpty(view.Suggestions)

	recs, err := srv.records.List(context.Background(), modstore.RecordQuery{})
	assert.NoError(err)
	assert.Equal(1, len(recs))
}

func TestHandleEvaluateValidation(t *testing.T) {
	assert := assert.New(t)

	srv := testServer()
	_, err := postEvaluate(t, srv, `{"content": "hello", "contentType": "STORY", "authorId": "user1"}`)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(ok)
	assert.Equal(http.StatusBadRequest, httpErr.Code)
}

func TestHandleListAndSummary(t *testing.T) {
	assert := assert.New(t)

	srv := testServer()
	_, err := postEvaluate(t, srv, `{"content": "salope salope salope", "contentType": "COMMENT", "authorId": "user1"}`)
	assert.NoError(err)
	_, err = postEvaluate(t, srv, `{"content": "contact-moi au 77 123 45 67", "contentType": "MESSAGE", "authorId": "user2"}`)
	assert.NoError(err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/moderation/records?severity=CRITICAL", nil)
	rr := httptest.NewRecorder()
	assert.NoError(srv.handleListRecords(e.NewContext(req, rr)))
	var recs []modstore.ModerationRecord
	assert.NoError(json.Unmarshal(rr.Body.Bytes(), &recs))
	assert.Equal(1, len(recs))
	assert.Equal("user1", recs[0].AuthorID)

	req = httptest.NewRequest(http.MethodGet, "/api/moderation/summary", nil)
	rr = httptest.NewRecorder()
	assert.NoError(srv.handleSummary(e.NewContext(req, rr)))
	var sum modstore.Summary
	assert.NoError(json.Unmarshal(rr.Body.Bytes(), &sum))
	assert.Equal(int64(1), sum.Warnings)
	assert.Equal(int64(1), sum.Blocks)
}
