package server

import (
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestParseIntParam(t *testing.T) {
	values := url.Values{}
	values.Set("width", "640")

	if got, err := parseIntParam(values, "width", 400, 50, 2000); err != nil || got != 640 {
		t.Errorf("got %d, err %v", got, err)
	}
	if got, err := parseIntParam(values, "height", 225, 50, 2000); err != nil || got != 225 {
		t.Errorf("default: got %d, err %v", got, err)
	}

	values.Set("width", "9999")
	if _, err := parseIntParam(values, "width", 400, 50, 2000); err == nil {
		t.Error("out-of-range value should be rejected")
	}
	values.Set("width", "abc")
	if _, err := parseIntParam(values, "width", 400, 50, 2000); err == nil {
		t.Error("non-numeric value should be rejected")
	}
}

func TestParseRenderRequestDefaults(t *testing.T) {
	s := NewServer(8080)
	r := httptest.NewRequest("GET", "/api/render", nil)

	req, err := s.parseRenderRequest(r)
	if err != nil {
		t.Fatal(err)
	}
	if req.Scene != "bouncing-spheres" {
		t.Errorf("Scene = %q", req.Scene)
	}
	if req.Width != 400 || req.Height != 225 {
		t.Errorf("resolution = %dx%d", req.Width, req.Height)
	}
	if req.Samples != 25 || req.MaxDepth != 50 || req.TileSize != 32 {
		t.Errorf("quality defaults = %d/%d/%d", req.Samples, req.MaxDepth, req.TileSize)
	}
}

func TestParseRenderRequestOverrides(t *testing.T) {
	s := NewServer(8080)
	r := httptest.NewRequest("GET", "/api/render?scene=three-spheres&width=100&samples=4", nil)

	req, err := s.parseRenderRequest(r)
	if err != nil {
		t.Fatal(err)
	}
	if req.Scene != "three-spheres" || req.Width != 100 || req.Samples != 4 {
		t.Errorf("req = %+v", req)
	}
}

func TestCreateSceneUnknown(t *testing.T) {
	s := NewServer(8080)
	if s.createScene("no-such-scene") != nil {
		t.Error("unknown scene name should return nil")
	}
}
