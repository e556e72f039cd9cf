package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"slices"
	"testing"

	"gridlife/internal/recording"
	"gridlife/internal/recording/sqlite"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "recordings.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	srv := httptest.NewServer(NewService(store))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestRecordingLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/recordings", map[string]any{
		"name": "session one", "rows": 2, "cols": 3,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, expected 201", resp.StatusCode)
	}
	rec := decodeBody[recording.Recording](t, resp)
	if rec.Name != "session one" || rec.Rows != 2 || rec.Cols != 3 {
		t.Fatalf("created recording = %+v", rec)
	}

	cells := []uint8{1, 0, 1, 0, 1, 0}
	frameURL := fmt.Sprintf("%s/recordings/%d/frames", srv.URL, rec.ID)
	resp = postJSON(t, frameURL, recording.Frame{Generation: 3, Population: 3, Alive: cells})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("append frame status = %d, expected 201", resp.StatusCode)
	}
	resp.Body.Close()

	listResp, err := http.Get(srv.URL + "/recordings")
	if err != nil {
		t.Fatalf("list recordings: %v", err)
	}
	list := decodeBody[[]recording.Recording](t, listResp)
	if len(list) != 1 || list[0].FrameCount != 1 {
		t.Fatalf("list = %+v, expected one recording with one frame", list)
	}

	framesResp, err := http.Get(frameURL)
	if err != nil {
		t.Fatalf("list frames: %v", err)
	}
	frames := decodeBody[[]recording.Frame](t, framesResp)
	if len(frames) != 1 || frames[0].Generation != 3 {
		t.Fatalf("frames = %+v", frames)
	}
	if !slices.Equal(frames[0].Alive, cells) {
		t.Fatal("frame cells did not survive the HTTP round trip")
	}

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/recordings/%d", srv.URL, rec.ID), nil)
	if err != nil {
		t.Fatalf("build delete request: %v", err)
	}
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete recording: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d, expected 204", delResp.StatusCode)
	}

	missing, err := http.Get(fmt.Sprintf("%s/recordings/%d", srv.URL, rec.ID))
	if err != nil {
		t.Fatalf("get deleted recording: %v", err)
	}
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("get deleted status = %d, expected 404", missing.StatusCode)
	}
}

func TestCreateRecordingValidation(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/recordings", map[string]any{"name": "", "rows": 2, "cols": 2})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty name status = %d, expected 400", resp.StatusCode)
	}

	resp = postJSON(t, srv.URL+"/recordings", map[string]any{"name": "x", "rows": 0, "cols": 2})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("zero rows status = %d, expected 400", resp.StatusCode)
	}
}

func TestBadRecordingID(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/recordings/not-a-number")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", resp.StatusCode)
	}
}
