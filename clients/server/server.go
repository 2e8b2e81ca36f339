// Package server provides the appicon preview UI and HTTP API.
package server

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"html/template"
	"image"
	"io"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"strconv"
	"sync"

	"github.com/alexmullins/zip"

	"github.com/buyright/appicon/pkg/canvas"
	"github.com/buyright/appicon/pkg/generator"
	"github.com/buyright/appicon/pkg/icon"
)

// ── Icon cache ──

// iconSet holds the master render and lazily encoded PNGs per size.
// The master is never written to after construction.
type iconSet struct {
	master *image.RGBA
	opts   generator.Options

	mu   sync.RWMutex
	pngs map[int][]byte
}

func newIconSet(mode canvas.Mode) *iconSet {
	return &iconSet{
		master: icon.Render(icon.Options{Mode: mode}),
		pngs:   make(map[int][]byte),
	}
}

func (s *iconSet) png(size int) ([]byte, error) {
	s.mu.RLock()
	data, ok := s.pngs[size]
	s.mu.RUnlock()
	if ok {
		return data, nil
	}

	data, err := generator.EncodeBytes(generator.Scale(s.master, size), s.opts)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.pngs[size] = data
	s.mu.Unlock()
	return data, nil
}

// ── Server ──

type srv struct {
	icons *iconSet
}

// New returns the HTTP handler serving the preview UI and API.
func New(mode canvas.Mode) http.Handler {
	s := &srv{icons: newIconSet(mode)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /icon.png", s.handleIcon)
	mux.HandleFunc("GET /api/report", s.handleReport)
	mux.HandleFunc("GET /api/export/zip", s.handleExportZip)
	mux.HandleFunc("GET /{$}", s.handleIndex)
	return mux
}

// RunServe starts the preview server.
func RunServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var port, modeName string
	var noBrowser bool
	fs.StringVar(&port, "port", "8080", "Listen port")
	fs.StringVar(&port, "p", "8080", "Listen port")
	fs.StringVar(&modeName, "mode", "replace", "Compositing: replace or blend")
	fs.BoolVar(&noBrowser, "no-browser", false, "Do not open a browser")
	if err := fs.Parse(args); err != nil {
		return err
	}

	mode, err := canvas.ParseMode(modeName)
	if err != nil {
		return err
	}

	addr := ":" + port
	log.Printf("appicon preview → http://localhost%s", addr)

	if !noBrowser {
		go openBrowser("http://localhost" + addr)
	}

	return http.ListenAndServe(addr, New(mode))
}

// ── Handlers ──

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>appicon</title>
<style>body{background:#1a1a2e;color:#fff;font-family:sans-serif}img{margin:8px;vertical-align:bottom}</style>
</head><body>
<h1>BuyRight app icon</h1>
<p><a href="/api/report">report</a> · <a href="/api/export/zip">download set</a></p>
{{range .}}<figure style="display:inline-block"><img src="/icon.png?size={{.}}" width="{{.}}" height="{{.}}"><figcaption>{{.}}x{{.}}</figcaption></figure>{{end}}
</body></html>
`))

func (s *srv) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, generator.DefaultSizes); err != nil {
		log.Printf("index: %v", err)
	}
}

func (s *srv) handleIcon(w http.ResponseWriter, r *http.Request) {
	size := icon.Size
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > generator.MaxSize {
			http.Error(w, fmt.Sprintf("size must be 1..%d", generator.MaxSize), http.StatusBadRequest)
			return
		}
		size = n
	}

	data, err := s.icons.png(size)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}

type reportResponse struct {
	Bytes       int64   `json:"bytes"`
	KB          float64 `json:"kb"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Format      string  `json:"format"`
	Limit       int64   `json:"limit"`
	WithinLimit bool    `json:"withinLimit"`
}

func (s *srv) handleReport(w http.ResponseWriter, r *http.Request) {
	data, err := s.icons.png(icon.Size)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rep := &generator.Report{
		Bytes:  int64(len(data)),
		Width:  icon.Size,
		Height: icon.Size,
		Format: "PNG",
		Limit:  generator.DefaultLimit,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reportResponse{
		Bytes:       rep.Bytes,
		KB:          rep.KB(),
		Width:       rep.Width,
		Height:      rep.Height,
		Format:      rep.Format,
		Limit:       rep.Limit,
		WithinLimit: rep.WithinLimit(),
	})
}

// handleExportZip bundles every default size. With ?password= the entries
// are AES-256 encrypted.
func (s *srv) handleExportZip(w http.ResponseWriter, r *http.Request) {
	password := r.URL.Query().Get("password")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, size := range generator.DefaultSizes {
		data, err := s.icons.png(size)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		name := generator.VariantName(size)
		fw, err := createEntry(zw, name, password)
		if err != nil {
			http.Error(w, "zip: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := fw.Write(data); err != nil {
			http.Error(w, "zip: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}
	if err := zw.Close(); err != nil {
		http.Error(w, "zip: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="app-icons.zip"`)
	w.Write(buf.Bytes())
}

// ── Helpers ──

func createEntry(zw *zip.Writer, name, password string) (io.Writer, error) {
	if password != "" {
		return zw.Encrypt(name, password)
	}
	return zw.Create(name)
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	cmd.Start()
}
