package api

import (
	"encoding/json"
	"net/http"

	"dialogen/adapters/jsonl"
	"dialogen/app"
	"dialogen/domain/core"
	"dialogen/internal/errors"
)

type generateRequest struct {
	Count    int    `json:"count"`
	Filename string `json:"filename,omitempty"`
}

type generateResponse struct {
	RunID     string `json:"run_id"`
	Requested int    `json:"requested"`
	Generated int    `json:"generated"`
	Path      string `json:"path"`
}

type mineRequest struct {
	InputDir        string `json:"input_dir"`
	SamplesPerLabel int    `json:"samples_per_label"`
	Seed            *int64 `json:"seed,omitempty"`
	RunID           string `json:"run_id,omitempty"`
	Filename        string `json:"filename,omitempty"`
}

type mineResponse struct {
	RunID       string         `json:"run_id"`
	Total       int            `json:"total"`
	LabelCounts map[string]int `json:"label_counts"`
	Path        string         `json:"path"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Count < 1 {
		writeError(w, http.StatusBadRequest, "count must be at least 1")
		return
	}

	runID := core.NewRunID()
	records, err := a.generation.GenerateBatch(r.Context(), req.Count)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	report := app.BuildReport(records, a.cfg.Generation, a.cfg.LLM)
	path, err := a.writer.SaveRecords(records, req.Filename, report)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		RunID:     string(runID),
		Requested: req.Count,
		Generated: len(records),
		Path:      path,
	})
}

func (a *App) handleMine(w http.ResponseWriter, r *http.Request) {
	var req mineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.InputDir == "" {
		req.InputDir = a.cfg.Output.Dir
	}
	if req.SamplesPerLabel < 1 {
		req.SamplesPerLabel = a.cfg.Mining.SamplesPerLabel
	}
	seed := a.cfg.Mining.Seed
	if req.Seed != nil {
		seed = *req.Seed
	}

	grouped, err := jsonl.MergeAndGroup(req.InputDir)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	runID := core.NewRunID()
	if req.RunID != "" {
		if runID, err = core.ParseRunID(req.RunID); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	result, err := a.mining.Mine(r.Context(), app.MiningRequest{
		RunID:           runID,
		Grouped:         grouped,
		SamplesPerLabel: req.SamplesPerLabel,
		Seed:            seed,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	path, err := a.writer.SaveSamples(result.Samples, req.Filename)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	counts := make(map[string]int, len(result.LabelCounts))
	for label, n := range result.LabelCounts {
		counts[string(label)] = n
	}
	writeJSON(w, http.StatusOK, mineResponse{
		RunID:       string(runID),
		Total:       len(result.Samples),
		LabelCounts: counts,
		Path:        path,
	})
}

func statusFor(err error) int {
	if errors.HasCode(err, errors.CodeConfig) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
