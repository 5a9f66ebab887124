package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/thermo-data-etl/internal/domain"
)

const (
	maxBodyBytes = 1 << 20
	maxBatchLen  = 1000
)

// handleNormalize accepts a single measurement object or an array of them and
// answers with the same shape. ?round=true applies the captured precision.
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	round, err := parseRound(r.URL.Query().Get("round"))
	if err != nil {
		s.badRequest(w, err)
		return
	}

	var body json.RawMessage
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		s.badRequest(w, fmt.Errorf("decode body: %w", err))
		return
	}

	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '[' {
		var reqs []domain.TemperatureInput
		if err := json.Unmarshal(trimmed, &reqs); err != nil {
			s.badRequest(w, fmt.Errorf("decode measurements: %w", err))
			return
		}
		if len(reqs) > maxBatchLen {
			s.badRequest(w, fmt.Errorf("batch of %d exceeds limit of %d", len(reqs), maxBatchLen))
			return
		}
		out := make([]domain.TemperatureOutput, len(reqs))
		for i, req := range reqs {
			out[i] = domain.NormalizeInput(req, round)
		}
		s.metrics.NormalizeRequests.WithLabelValues("ok").Inc()
		sharedobs.WriteJSON(w, http.StatusOK, out)
		return
	}

	var req domain.TemperatureInput
	if err := json.Unmarshal(body, &req); err != nil {
		s.badRequest(w, fmt.Errorf("decode measurement: %w", err))
		return
	}
	s.metrics.NormalizeRequests.WithLabelValues("ok").Inc()
	sharedobs.WriteJSON(w, http.StatusOK, domain.NormalizeInput(req, round))
}

func (s *Server) badRequest(w http.ResponseWriter, err error) {
	s.metrics.NormalizeRequests.WithLabelValues("bad_request").Inc()
	s.logger.Debug("rejected normalize request", "error", err)
	sharedobs.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func parseRound(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, errors.New("round must be a boolean")
	}
	return b, nil
}
