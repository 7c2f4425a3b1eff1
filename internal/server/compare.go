package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"riftmates/internal/domain"
	"riftmates/internal/riot"

	"github.com/rs/zerolog"
)

// Comparer runs a full two-player comparison.
type Comparer interface {
	Compare(ctx context.Context, player1, player2, region string, mode domain.Mode) (*domain.ComparisonResult, error)
}

type CompareServer struct {
	compareSvc Comparer
	riot       *riot.Client
	logger     zerolog.Logger
}

func NewCompareServer(compareSvc Comparer, riotClient *riot.Client, logger zerolog.Logger) *CompareServer {
	return &CompareServer{compareSvc: compareSvc, riot: riotClient, logger: logger}
}

type compareRequest struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
	Region  string `json:"region"`
	Mode    string `json:"mode"`
}

// HandleCompare handles POST /api/compare.
func (s *CompareServer) HandleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid player format. Use: Name#TAG")
		return
	}

	result, err := s.compareSvc.Compare(r.Context(), req.Player1, req.Player2, req.Region, domain.ParseMode(req.Mode))
	if err != nil {
		s.writeCompareError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// writeCompareError maps the error taxonomy onto HTTP statuses: validation
// faults are the caller's to fix, everything else is a 500 carrying the
// error's message.
func (s *CompareServer) writeCompareError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, ve.Error())
		return
	}

	var ce *domain.ConfigurationError
	if errors.As(err, &ce) {
		s.logger.Error().Err(err).Msg("comparison rejected by configuration")
		writeError(w, http.StatusInternalServerError, ce.Error())
		return
	}

	s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("comparison failed")

	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		writeError(w, http.StatusInternalServerError, ue.Error())
		return
	}

	msg := err.Error()
	if msg == "" {
		msg = "comparison failed"
	}
	writeError(w, http.StatusInternalServerError, msg)
}

// HandleHealth handles GET /api/health. The rate-limit snapshot gives
// operators a view of how close the upstream budget is to exhaustion.
func (s *CompareServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"rateLimit": s.riot.GetRateLimitInfo(),
	})
}
