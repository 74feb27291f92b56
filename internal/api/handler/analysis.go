package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/connectfour-go/internal/api/apierr"
	"github.com/mcoot/connectfour-go/internal/api/request"
	"github.com/mcoot/connectfour-go/internal/api/response"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/analysis"
)

// DefaultLookahead is used when an analysis request does not set one
const DefaultLookahead = 3

// maxAnalysisBody bounds the request body in bytes
const maxAnalysisBody = 64 << 10

// AnalysisLimits bounds the work a single analysis request may ask for
type AnalysisLimits struct {
	MaxLookahead int
	MaxHeight    int
	MaxWidth     int
}

// AnalysisHandler handles position analysis endpoints
type AnalysisHandler struct {
	service *analysis.Service
	limits  AnalysisLimits
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service *analysis.Service, limits AnalysisLimits) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
		limits:  limits,
	}
}

// Analyze handles POST /api/v1/analysis
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req request.AnalysisRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxAnalysisBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	analysisReq := analysis.Request{
		Height:    model.DefaultHeight,
		Width:     model.DefaultWidth,
		Moves:     req.Moves,
		Tiebreak:  model.TiebreakLeft,
		Lookahead: DefaultLookahead,
	}
	if req.Height != 0 {
		analysisReq.Height = req.Height
	}
	if req.Width != 0 {
		analysisReq.Width = req.Width
	}
	if req.Checker != "" {
		checker, err := model.ParseChecker(req.Checker)
		if err != nil {
			WriteError(w, err)
			return
		}
		analysisReq.Checker = checker
	}
	if req.Tiebreak != "" {
		analysisReq.Tiebreak = model.Tiebreak(req.Tiebreak)
	}
	if req.Lookahead != nil {
		analysisReq.Lookahead = *req.Lookahead
	}

	if analysisReq.Height > h.limits.MaxHeight || analysisReq.Width > h.limits.MaxWidth {
		WriteError(w, apierr.NewBoardTooLargeError(h.limits.MaxHeight, h.limits.MaxWidth))
		return
	}
	if analysisReq.Lookahead > h.limits.MaxLookahead {
		WriteError(w, apierr.NewLookaheadTooLargeError(h.limits.MaxLookahead))
		return
	}

	result, err := h.service.Analyze(analysisReq)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AnalysisFromResult(result))
}
