package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"riftmates/internal/config"
	"riftmates/internal/domain"
	"riftmates/internal/riot"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubComparer struct {
	result *domain.ComparisonResult
	err    error

	gotPlayer1 string
	gotPlayer2 string
	gotRegion  string
	gotMode    domain.Mode
	calls      int
}

func (s *stubComparer) Compare(ctx context.Context, player1, player2, region string, mode domain.Mode) (*domain.ComparisonResult, error) {
	s.calls++
	s.gotPlayer1 = player1
	s.gotPlayer2 = player2
	s.gotRegion = region
	s.gotMode = mode
	return s.result, s.err
}

func newTestServer(comparer Comparer) *CompareServer {
	return NewCompareServer(comparer, riot.NewClient(&config.Config{}), zerolog.Nop())
}

func postCompare(t *testing.T, srv *CompareServer, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/compare", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.HandleCompare(rec, req)
	return rec
}

func TestHandleCompareSuccess(t *testing.T) {
	team := "Blue"
	stub := &stubComparer{
		result: &domain.ComparisonResult{
			Player1: domain.PlayerRef{GameName: "Alice", TagLine: "NA1"},
			Player2: domain.PlayerRef{GameName: "Bob", TagLine: "NA1"},
			Matches: []domain.MatchSummary{
				{
					MatchID:   "NA1_1",
					GameMode:  "CLASSIC",
					Timestamp: 1700000000000,
					Duration:  "23m 42s",
					Players: domain.MatchPlayers{
						Player1: domain.ClassicStats{Champion: "Jinx", Team: &team},
						Player2: domain.ClassicStats{Champion: "N/A"},
					},
				},
			},
		},
	}
	srv := newTestServer(stub)

	rec := postCompare(t, srv, `{"player1":"Alice#NA1","player2":"Bob#NA1","region":"na1","mode":"classic"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Alice#NA1", stub.gotPlayer1)
	assert.Equal(t, "Bob#NA1", stub.gotPlayer2)
	assert.Equal(t, "na1", stub.gotRegion)
	assert.Equal(t, domain.ModeClassic, stub.gotMode)

	var got domain.ComparisonResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Alice", got.Player1.GameName)
	require.Len(t, got.Matches, 1)
	assert.Equal(t, "NA1_1", got.Matches[0].MatchID)
}

func TestHandleCompareMalformedBody(t *testing.T) {
	stub := &stubComparer{}
	srv := newTestServer(stub)

	rec := postCompare(t, srv, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid player format. Use: Name#TAG"}`, rec.Body.String())
	assert.Zero(t, stub.calls, "a body that fails to parse never reaches the service")
}

func TestHandleCompareValidationError(t *testing.T) {
	stub := &stubComparer{err: &domain.ValidationError{Msg: "Invalid player format. Use: Name#TAG"}}
	srv := newTestServer(stub)

	rec := postCompare(t, srv, `{"player1":"NoTag","player2":"Bob#NA1","region":"na1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid player format. Use: Name#TAG"}`, rec.Body.String())
}

func TestHandleCompareConfigurationError(t *testing.T) {
	stub := &stubComparer{err: &domain.ConfigurationError{Msg: "Riot API credential is not configured"}}
	srv := newTestServer(stub)

	rec := postCompare(t, srv, `{"player1":"Alice#NA1","player2":"Bob#NA1","region":"na1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Riot API credential is not configured"}`, rec.Body.String())
}

func TestHandleCompareUpstreamError(t *testing.T) {
	stub := &stubComparer{err: &domain.UpstreamError{Op: "resolve account", StatusCode: 404, Message: "no results found for player"}}
	srv := newTestServer(stub)

	rec := postCompare(t, srv, `{"player1":"Alice#NA1","player2":"Ghost#NA1","region":"na1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "no results found for player")
}

func TestHandleCompareDefaultsToClassicMode(t *testing.T) {
	stub := &stubComparer{result: &domain.ComparisonResult{Matches: []domain.MatchSummary{}}}
	srv := newTestServer(stub)

	postCompare(t, srv, `{"player1":"Alice#NA1","player2":"Bob#NA1","region":"na1"}`)
	assert.Equal(t, domain.ModeClassic, stub.gotMode)

	postCompare(t, srv, `{"player1":"Alice#NA1","player2":"Bob#NA1","region":"na1","mode":"ranked"}`)
	assert.Equal(t, domain.ModeClassic, stub.gotMode, "unrecognized modes fall back to classic")

	postCompare(t, srv, `{"player1":"Alice#NA1","player2":"Bob#NA1","region":"na1","mode":"auto-battler"}`)
	assert.Equal(t, domain.ModeAutoBattler, stub.gotMode)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(&stubComparer{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.HandleHealth(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body, "rateLimit")
}
