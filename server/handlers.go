package server

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/yschiang/sampling-wizard/sampling"
	"github.com/yschiang/sampling-wizard/sampling/recipe"
	"github.com/yschiang/sampling-wizard/sampling/score"
)

// PlanRequest is the shared request document for the selection-driven
// endpoints: the three context objects, the strategy to run, and its raw
// configuration.
type PlanRequest struct {
	WaferMap       sampling.WaferMapSpec      `json:"wafer_map"`
	ProcessContext sampling.ProcessContext    `json:"process_context"`
	ToolProfile    sampling.ToolProfile       `json:"tool_profile"`
	StrategyID     string                     `json:"sampling_strategy_id"`
	StrategyConfig sampling.RawStrategyConfig `json:"strategy_config"`
}

// ScoreRequest evaluates an existing plan instead of generating one.
type ScoreRequest struct {
	WaferMap       sampling.WaferMapSpec   `json:"wafer_map"`
	ProcessContext sampling.ProcessContext `json:"process_context"`
	ToolProfile    sampling.ToolProfile    `json:"tool_profile"`
	SamplingOutput sampling.SamplingOutput `json:"sampling_output"`
}

// StrategyInfo is one entry in the strategy listing.
type StrategyInfo struct {
	ID      string `json:"sampling_strategy_id"`
	Version string `json:"version"`
}

// RecipeResponse bundles the generated recipe with the plan and score that
// produced it so callers can audit the full chain.
type RecipeResponse struct {
	Recipe   recipe.ToolRecipe     `json:"recipe"`
	Plan     sampling.SelectResult `json:"plan"`
	Score    score.Report          `json:"score"`
	Warnings []sampling.Warning    `json:"warnings,omitempty"`
}

func (s *Server) handleListStrategies(w http.ResponseWriter, r *http.Request) {
	infos := make([]StrategyInfo, 0)
	for _, id := range sampling.StrategyIDs() {
		engine, ok := sampling.Lookup(id)
		if !ok {
			continue
		}
		infos = append(infos, StrategyInfo{ID: id, Version: engine.Version()})
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	result, err := sampling.Select(req.WaferMap, req.ProcessContext, req.ToolProfile,
		req.StrategyID, req.StrategyConfig)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	report, err := score.Evaluate(req.WaferMap, req.ProcessContext, req.ToolProfile, req.SamplingOutput)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleGenerateRecipe(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	plan, err := sampling.Select(req.WaferMap, req.ProcessContext, req.ToolProfile,
		req.StrategyID, req.StrategyConfig)
	if err != nil {
		writeError(w, err)
		return
	}
	report, err := score.Evaluate(req.WaferMap, req.ProcessContext, req.ToolProfile, plan.Output)
	if err != nil {
		writeError(w, err)
		return
	}
	toolRecipe, translateWarnings, err := recipe.Translate(req.WaferMap, req.ToolProfile, plan.Output, &report)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RecipeResponse{
		Recipe:   toolRecipe,
		Plan:     *plan,
		Score:    report,
		Warnings: translateWarnings,
	})
}

func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, sampling.NewValidationError(sampling.CodeValidation,
			"malformed request body: %v", err))
		return false
	}
	return true
}

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error *sampling.Error `json:"error"`
}

func writeError(w http.ResponseWriter, err error) {
	classified, ok := sampling.AsError(err)
	if !ok {
		classified = sampling.NewInternalError("%v", err)
	}

	status := http.StatusBadRequest
	if classified.Type == sampling.TypeInternal {
		status = http.StatusInternalServerError
		logrus.WithField("code", classified.Code).Error(classified.Message)
	}
	writeJSON(w, status, errorBody{Error: classified})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("encode response")
	}
}
