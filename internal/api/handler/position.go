package handler

import (
	"net/http"

	"github.com/mcoot/othello/internal/api/request"
	"github.com/mcoot/othello/internal/api/response"
	"github.com/mcoot/othello/internal/model"
	"github.com/mcoot/othello/internal/services/rules"
	"github.com/mcoot/othello/internal/services/scoring"
)

// PositionHandler answers questions about encoded positions without storing anything
type PositionHandler struct {
	rulesService   *rules.Service
	scoringService *scoring.Service
}

// NewPositionHandler creates a new position handler
func NewPositionHandler(rulesService *rules.Service, scoringService *scoring.Service) *PositionHandler {
	return &PositionHandler{
		rulesService:   rulesService,
		scoringService: scoringService,
	}
}

// Analyze handles POST /api/v1/positions/analyze
func (h *PositionHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req request.AnalyzeRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	p, err := model.DecodePosition(req.Position)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.AnalysisFromOutcome(
		p,
		string(h.rulesService.Status(p)),
		h.rulesService.LegalMoves(p),
		h.scoringService.Outcome(p),
	)
	response.JSON(w, http.StatusOK, resp)
}

// Apply handles POST /api/v1/positions/apply
func (h *PositionHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req request.ApplyRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	p, err := model.DecodePosition(req.Position)
	if err != nil {
		WriteError(w, err)
		return
	}

	action := model.Action{Row: req.Row, Col: req.Col}
	flipped := h.rulesService.Flips(p, action)
	next, err := h.rulesService.Apply(p, action)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ApplyResponse{
		Position: next.Encode(),
		Flipped:  flipped,
	})
}
