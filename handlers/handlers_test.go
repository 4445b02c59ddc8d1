package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	api.Post("/download", HandleDownload)
	api.Post("/validate", HandleValidate)
	app.Get("/health", HandleHealth)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("Invalid JSON response %q: %v", raw, err)
	}
	return resp.StatusCode, parsed
}

func TestHandleValidate_SoundCloudPlaylist(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/api/validate", `{"url":"https://soundcloud.com/artist/sets/album"}`)
	if status != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if body["ok"] != true || body["valid"] != true {
		t.Errorf("Expected ok+valid, got %v", body)
	}
	if body["source"] != "soundcloud" || body["playlist"] != true {
		t.Errorf("Expected soundcloud playlist, got %v", body)
	}
}

func TestHandleValidate_YouTube(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/api/validate", `{"url":"https://youtu.be/dQw4w9WgXcQ"}`)
	if status != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if body["source"] != "youtube" || body["playlist"] != false {
		t.Errorf("Expected youtube non-playlist, got %v", body)
	}
}

func TestHandleValidate_Unrecognized(t *testing.T) {
	app := newTestApp()

	for _, payload := range []string{`{"url":"https://example.com/x"}`, `{"url":"garbage"}`} {
		status, body := postJSON(t, app, "/api/validate", payload)
		if status != fiber.StatusOK {
			t.Fatalf("Expected 200, got %d", status)
		}
		if body["ok"] != true || body["valid"] != false {
			t.Errorf("Payload %s: expected ok but invalid, got %v", payload, body)
		}
	}
}

func TestHandleValidate_EmptyURL(t *testing.T) {
	app := newTestApp()

	_, body := postJSON(t, app, "/api/validate", `{"url":""}`)
	if body["ok"] != false || body["valid"] != false {
		t.Errorf("Expected not ok and invalid, got %v", body)
	}
}

func TestHandleDownload_NoURL(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/api/download", `{"url":""}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", status)
	}
	if body["ok"] != false || body["error"] != "No URL provided" {
		t.Errorf(`Expected {"ok":false,"error":"No URL provided"}, got %v`, body)
	}
}

func TestHandleDownload_InvalidURLs(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		payload  string
		expected string
	}{
		{`{"url":"https://example.com/x","source":"soundcloud"}`, "Invalid SoundCloud URL"},
		{`{"url":"https://example.com/x","source":"youtube"}`, "Invalid YouTube URL"},
		{`{"url":"https://example.com/x"}`, "Invalid YouTube URL"},
	}

	for _, test := range tests {
		status, body := postJSON(t, app, "/api/download", test.payload)
		if status != fiber.StatusBadRequest {
			t.Errorf("Payload %s: expected 400, got %d", test.payload, status)
		}
		if body["error"] != test.expected {
			t.Errorf("Payload %s: expected error %q, got %v", test.payload, test.expected, body)
		}
	}
}

func TestHandleDownload_UnsupportedYouTubeFormat(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/api/download",
		`{"url":"https://youtu.be/dQw4w9WgXcQ","source":"youtube","format":"flac"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", status)
	}
	if body["error"] != "Format must be mp4, mp3, or wav" {
		t.Errorf("Expected format error, got %v", body)
	}
}

func TestHandleHealth(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
}
