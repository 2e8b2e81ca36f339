package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexmullins/zip"

	"github.com/buyright/appicon/pkg/canvas"
	"github.com/buyright/appicon/pkg/generator"
)

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestIconSizes(t *testing.T) {
	h := New(canvas.Replace)

	tests := []struct {
		target string
		size   int
	}{
		{"/icon.png", 512},
		{"/icon.png?size=192", 192},
		{"/icon.png?size=72", 72},
	}
	for _, tt := range tests {
		rec := get(t, h, tt.target)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: status %d", tt.target, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
			t.Errorf("GET %s: Content-Type = %q", tt.target, ct)
		}
		img, err := png.Decode(rec.Body)
		if err != nil {
			t.Fatalf("GET %s: decode: %v", tt.target, err)
		}
		if img.Bounds() != image.Rect(0, 0, tt.size, tt.size) {
			t.Errorf("GET %s: bounds = %v", tt.target, img.Bounds())
		}
	}
}

func TestIconBadSize(t *testing.T) {
	h := New(canvas.Replace)
	for _, target := range []string{"/icon.png?size=0", "/icon.png?size=abc", "/icon.png?size=9999"} {
		if rec := get(t, h, target); rec.Code != http.StatusBadRequest {
			t.Errorf("GET %s: status %d, want 400", target, rec.Code)
		}
	}
}

func TestReport(t *testing.T) {
	h := New(canvas.Replace)

	rec := get(t, h, "/api/report")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var rep reportResponse
	if err := json.NewDecoder(rec.Body).Decode(&rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rep.Width != 512 || rep.Height != 512 || rep.Format != "PNG" {
		t.Errorf("report = %+v", rep)
	}
	if rep.Bytes <= 0 || !rep.WithinLimit || rep.Limit != generator.DefaultLimit {
		t.Errorf("report = %+v", rep)
	}

	served := get(t, h, "/icon.png")
	if int64(served.Body.Len()) != rep.Bytes {
		t.Errorf("report bytes %d, served %d", rep.Bytes, served.Body.Len())
	}
}

func TestIndex(t *testing.T) {
	rec := get(t, New(canvas.Replace), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"/icon.png?size=72", "/icon.png?size=512", "512x512"} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q", want)
		}
	}
	if rec := get(t, New(canvas.Replace), "/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("GET /nope: status %d, want 404", rec.Code)
	}
}

func readZip(t *testing.T, body []byte, password string) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		t.Fatalf("zip: %v", err)
	}
	files := make(map[string][]byte)
	for _, f := range zr.File {
		if f.IsEncrypted() != (password != "") {
			t.Errorf("%s: encrypted = %v", f.Name, f.IsEncrypted())
		}
		if password != "" {
			f.SetPassword(password)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		files[f.Name] = data
	}
	return files
}

func TestExportZip(t *testing.T) {
	h := New(canvas.Replace)

	for _, password := range []string{"", "s3cret"} {
		target := "/api/export/zip"
		if password != "" {
			target += "?password=" + password
		}
		rec := get(t, h, target)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: status %d", target, rec.Code)
		}

		files := readZip(t, rec.Body.Bytes(), password)
		if len(files) != len(generator.DefaultSizes) {
			t.Fatalf("zip has %d files, want %d", len(files), len(generator.DefaultSizes))
		}
		for _, size := range generator.DefaultSizes {
			data, ok := files[generator.VariantName(size)]
			if !ok {
				t.Errorf("missing %s", generator.VariantName(size))
				continue
			}
			cfg, err := png.DecodeConfig(bytes.NewReader(data))
			if err != nil {
				t.Errorf("%d: %v", size, err)
				continue
			}
			if cfg.Width != size || cfg.Height != size {
				t.Errorf("%d: got %dx%d", size, cfg.Width, cfg.Height)
			}
		}
	}
}
