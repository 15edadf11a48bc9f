package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/pitwall-app/pitwall/app/preset"
	"github.com/pitwall-app/pitwall/app/setting"
	"github.com/pitwall-app/pitwall/app/setting/request"
)

// APIStatusResponse is the JSON response for /api/v1/status
type APIStatusResponse struct {
	ActivePreset string         `json:"active_preset"`
	Engine       setting.Status `json:"engine"`
	Telemetry    APITelemetry   `json:"telemetry"`
	Version      string         `json:"version"`
	Timestamp    time.Time      `json:"timestamp"`
}

// APITelemetry summarizes the simulator connection in JSON API responses
type APITelemetry struct {
	Connected bool   `json:"connected"`
	Sim       string `json:"sim,omitempty"`
}

// APIPreset represents a preset in JSON API responses
type APIPreset struct {
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
	Active  bool      `json:"active"`
}

// APISaveResponse is the JSON response for /api/v1/save
type APISaveResponse struct {
	Status string         `json:"status"`
	Engine setting.Status `json:"engine"`
}

// APISaveEvent represents one completed save pass in JSON API responses
type APISaveEvent struct {
	Category string    `json:"category"`
	File     string    `json:"file"`
	Outcome  string    `json:"outcome"`
	Attempts int       `json:"attempts"`
	TookMS   int64     `json:"took_ms"`
	At       time.Time `json:"at"`
}

// toAPISaveEvent converts request.SaveEvent to APISaveEvent
func toAPISaveEvent(ev request.SaveEvent) APISaveEvent {
	return APISaveEvent{
		Category: ev.Category,
		File:     ev.File,
		Outcome:  ev.Outcome.String(),
		Attempts: ev.Attempts,
		TookMS:   ev.Took.Milliseconds(),
		At:       ev.At,
	}
}

// handleStatus returns the engine, preset and telemetry state - designed for CLI/jq consumption
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	resp := APIStatusResponse{
		ActivePreset: s.settings.ActivePreset(),
		Engine:       s.engine.Status(),
		Version:      s.version,
		Timestamp:    time.Now(),
	}
	if s.telemetry != nil {
		snap := s.telemetry.Get()
		resp.Telemetry = APITelemetry{Connected: snap.Connected, Sim: snap.Sim}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleTelemetry returns the latest snapshot collected from the simulator
func (s *Server) handleTelemetry(w http.ResponseWriter, _ *http.Request) {
	if s.telemetry == nil {
		s.writeJSONError(w, http.StatusNotFound, "telemetry is not enabled")
		return
	}
	s.writeJSON(w, http.StatusOK, s.telemetry.Get())
}

// handleGetSettings returns the full state of one category
func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	cat, err := setting.Parse(r.PathValue("category"))
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "unknown category")
		return
	}

	data, err := s.settings.Get(cat)
	if err != nil {
		log.Printf("[WARN] can't get %s settings: %v", cat, err)
		s.writeJSONError(w, http.StatusNotFound, "category not loaded")
		return
	}
	s.writeJSON(w, http.StatusOK, data)
}

// handleUpdateSettings merges a JSON patch into one category and queues a save
func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	cat, err := setting.Parse(r.PathValue("category"))
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "unknown category")
		return
	}

	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(patch) == 0 {
		s.writeJSONError(w, http.StatusBadRequest, "empty patch")
		return
	}

	if err := s.settings.Update(cat, patch); err != nil {
		log.Printf("[WARN] can't update %s settings: %v", cat, err)
		s.writeJSONError(w, http.StatusNotFound, "category not loaded")
		return
	}

	updated, err := s.settings.Get(cat)
	if err != nil {
		log.Printf("[WARN] can't read back %s settings: %v", cat, err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to read updated settings")
		return
	}
	s.writeJSON(w, http.StatusOK, updated)
}

// handleSave queues an immediate save for every loaded category. With ?wait=1
// the handler blocks until the queue drains.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	s.settings.SaveAll(0)

	if r.URL.Query().Get("wait") != "1" {
		s.writeJSON(w, http.StatusAccepted, APISaveResponse{Status: "queued", Engine: s.engine.Status()})
		return
	}

	// wait has to finish before the server write timeout kicks in
	waitCtx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	if err := s.engine.Wait(waitCtx); err != nil {
		log.Printf("[WARN] save queue not drained: %v", err)
		s.writeJSONError(w, http.StatusGatewayTimeout, "save did not complete in time")
		return
	}
	s.writeJSON(w, http.StatusOK, APISaveResponse{Status: "saved", Engine: s.engine.Status()})
}

// handleListPresets returns all presets, newest first, with the active one marked
func (s *Server) handleListPresets(w http.ResponseWriter, _ *http.Request) {
	active := s.settings.ActivePreset()
	infos := s.presets.List()

	res := make([]APIPreset, 0, len(infos))
	for _, info := range infos {
		res = append(res, APIPreset{
			Name:    info.Name,
			Size:    info.Size,
			ModTime: info.ModTime,
			Active:  info.Name == active,
		})
	}
	s.writeJSON(w, http.StatusOK, res)
}

// handleCreatePreset makes a new preset from the default template
func (s *Server) handleCreatePreset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.presets.Create(req.Name); err != nil {
		s.presetError(w, "create", req.Name, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"name": req.Name})
}

// handleActivatePreset switches the active preset
func (s *Server) handleActivatePreset(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if !s.presets.Exists(name) {
		s.writeJSONError(w, http.StatusNotFound, "preset not found")
		return
	}

	if err := s.settings.Load(name); err != nil {
		log.Printf("[ERROR] can't activate preset %q: %v", name, err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to activate preset")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"active_preset": s.settings.ActivePreset()})
}

// handleDuplicatePreset copies a preset under a new name
func (s *Server) handleDuplicatePreset(w http.ResponseWriter, r *http.Request) {
	src := r.PathValue("name")
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" {
		s.writeJSONError(w, http.StatusBadRequest, "target name is required")
		return
	}

	if err := s.presets.Duplicate(r.Context(), src, req.Name); err != nil {
		s.presetError(w, "duplicate", src, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"name": req.Name})
}

// handleRenamePreset moves a preset to a new name. Renaming the active preset
// reloads it under the new name so the engine keeps writing the right file.
func (s *Server) handleRenamePreset(w http.ResponseWriter, r *http.Request) {
	src := r.PathValue("name")
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" {
		s.writeJSONError(w, http.StatusBadRequest, "target name is required")
		return
	}

	wasActive := src == s.settings.ActivePreset()
	if err := s.presets.Rename(r.Context(), src, req.Name); err != nil {
		s.presetError(w, "rename", src, err)
		return
	}

	if wasActive {
		if err := s.settings.Load(req.Name); err != nil {
			log.Printf("[ERROR] can't reload renamed preset %q: %v", req.Name, err)
			s.writeJSONError(w, http.StatusInternalServerError, "preset renamed but failed to reload")
			return
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"name": req.Name})
}

// handleDeletePreset removes a preset file. The active preset is protected.
func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == s.settings.ActivePreset() {
		s.writeJSONError(w, http.StatusConflict, "cannot delete the active preset")
		return
	}

	if err := s.presets.Delete(r.Context(), name); err != nil {
		s.presetError(w, "delete", name, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleGetPrimaryPreset returns the preset pinned to a simulator
func (s *Server) handleGetPrimaryPreset(w http.ResponseWriter, r *http.Request) {
	sim := r.URL.Query().Get("sim")
	if sim == "" {
		s.writeJSONError(w, http.StatusBadRequest, "sim query parameter is required")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"sim": sim, "name": s.settings.PrimaryPreset(sim)})
}

// handleSetPrimaryPreset pins a preset to a simulator for auto-activation
func (s *Server) handleSetPrimaryPreset(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	var req struct {
		Sim string `json:"sim"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Sim == "" {
		s.writeJSONError(w, http.StatusBadRequest, "sim is required")
		return
	}
	if !s.presets.Exists(name) {
		s.writeJSONError(w, http.StatusNotFound, "preset not found")
		return
	}

	if err := s.settings.SetPrimaryPreset(req.Sim, name); err != nil {
		log.Printf("[WARN] can't set primary preset for %q: %v", req.Sim, err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to set primary preset")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"sim": req.Sim, "name": name})
}

// handleDriverStats returns accumulated driver records, optionally for one track
func (s *Server) handleDriverStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		s.writeJSONError(w, http.StatusNotFound, "stats are not enabled")
		return
	}

	records, err := s.stats.ListDriverStats(r.Context(), r.URL.Query().Get("track"))
	if err != nil {
		log.Printf("[WARN] can't list driver stats: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to load driver stats")
		return
	}
	s.writeJSON(w, http.StatusOK, records)
}

// handleTracks returns the distinct tracks with recorded stats
func (s *Server) handleTracks(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		s.writeJSONError(w, http.StatusNotFound, "stats are not enabled")
		return
	}

	tracks, err := s.stats.ListTracks(r.Context())
	if err != nil {
		log.Printf("[WARN] can't list tracks: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to load tracks")
		return
	}
	s.writeJSON(w, http.StatusOK, tracks)
}

// handleSaveHistory returns the most recent save passes, newest first
func (s *Server) handleSaveHistory(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		s.writeJSONError(w, http.StatusNotFound, "stats are not enabled")
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l < 1 {
			s.writeJSONError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = l
	}

	events, err := s.stats.ListSaveEvents(r.Context(), limit)
	if err != nil {
		log.Printf("[WARN] can't list save events: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to load save history")
		return
	}

	res := make([]APISaveEvent, 0, len(events))
	for _, ev := range events {
		res = append(res, toAPISaveEvent(ev))
	}
	s.writeJSON(w, http.StatusOK, res)
}

// presetError maps preset manager errors to HTTP status codes
func (s *Server) presetError(w http.ResponseWriter, op, name string, err error) {
	log.Printf("[WARN] can't %s preset %q: %v", op, name, err)
	switch {
	case errors.Is(err, preset.ErrNotFound):
		s.writeJSONError(w, http.StatusNotFound, "preset not found")
	case errors.Is(err, preset.ErrExists):
		s.writeJSONError(w, http.StatusConflict, "preset already exists")
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		s.writeJSONError(w, http.StatusServiceUnavailable, "save queue is busy")
	default:
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
	}
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[WARN] failed to encode JSON response: %v", err)
	}
}

// writeJSONError writes a JSON error response
func (s *Server) writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[WARN] failed to encode JSON error response: %v", err)
	}
}
