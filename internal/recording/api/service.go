// Package api exposes the recording store over plain HTTP/JSON.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"gridlife/internal/recording"
	"gridlife/internal/recording/sqlite"
)

// Service routes recording requests to a store.
type Service struct {
	store recording.Store
	mux   *http.ServeMux
}

// NewService builds the HTTP handler set around the provided store.
func NewService(store recording.Store) *Service {
	s := &Service{store: store, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /recordings", s.createRecording)
	s.mux.HandleFunc("GET /recordings", s.listRecordings)
	s.mux.HandleFunc("GET /recordings/{id}", s.getRecording)
	s.mux.HandleFunc("DELETE /recordings/{id}", s.deleteRecording)
	s.mux.HandleFunc("POST /recordings/{id}/frames", s.appendFrame)
	s.mux.HandleFunc("GET /recordings/{id}/frames", s.listFrames)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type createRecordingRequest struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
}

func (s *Service) createRecording(w http.ResponseWriter, r *http.Request) {
	var req createRecordingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "decode create request"))
		return
	}
	rec, err := s.store.CreateRecording(r.Context(), req.Name, req.Rows, req.Cols)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "create recording"))
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Service) listRecordings(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.ListRecordings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.Wrap(err, "list recordings"))
		return
	}
	if list == nil {
		list = []recording.Recording{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Service) getRecording(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rec, err := s.store.GetRecording(r.Context(), id)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.Wrap(err, "get recording"))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Service) deleteRecording(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	err := s.store.DeleteRecording(r.Context(), id)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.Wrap(err, "delete recording"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) appendFrame(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var frame recording.Frame
	if err := json.NewDecoder(r.Body).Decode(&frame); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "decode frame"))
		return
	}
	err := s.store.AppendFrame(r.Context(), id, frame)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "append frame"))
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Service) listFrames(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	frames, err := s.store.Frames(r.Context(), id)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.Wrap(err, "list frames"))
		return
	}
	if frames == nil {
		frames = []recording.Frame{}
	}
	writeJSON(w, http.StatusOK, frames)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "parse recording id"))
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		log.Printf("recording api: %v", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
