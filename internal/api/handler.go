package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/qelectrotech/dxf2elmt-vadoola/internal/drawing"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/elmt"
	"github.com/qelectrotech/dxf2elmt-vadoola/internal/engine"
)

const (
	HeaderID        = "X-Dxf2elmt-Id"
	HeaderConverted = "X-Dxf2elmt-Converted"
	HeaderSkipped   = "X-Dxf2elmt-Skipped"
)

// Handler serves the conversion endpoints.
type Handler struct {
	opts           engine.Options
	maxUploadBytes int64
}

// NewHandler creates a handler converting with opts unless a request
// overrides them.
func NewHandler(opts engine.Options, maxUploadBytes int64) *Handler {
	return &Handler{opts: opts, maxUploadBytes: maxUploadBytes}
}

// Router wires the handler and the shared middleware.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(Recovery)
	r.Use(Logger)

	r.HandleFunc("/health", Health).Methods("GET")
	r.HandleFunc("/convert", h.Convert).Methods("POST")
	r.HandleFunc("/sample", h.Sample).Methods("GET")
	return r
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Convert handles POST /convert with a JSON drawing body. The name,
// spline_step and dtext query parameters override the defaults.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	opts, err := h.options(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	d, err := drawing.Load(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": fmt.Sprintf("drawing too large (max %d bytes)", tooLarge.Limit)})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid drawing: " + err.Error()})
		return
	}

	h.respond(w, d, r.URL.Query().Get("name"), opts)
}

// Sample handles GET /sample by converting the built-in drawing.
func (h *Handler) Sample(w http.ResponseWriter, r *http.Request) {
	opts, err := h.options(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	h.respond(w, drawing.NewSampleDrawing(), r.URL.Query().Get("name"), opts)
}

func (h *Handler) respond(w http.ResponseWriter, d *drawing.Drawing, name string, opts engine.Options) {
	if name == "" {
		name = d.Name
	}
	if name == "" {
		name = "element"
	}

	var buf bytes.Buffer
	res, err := elmt.Convert(&buf, d, name, opts)
	if err != nil {
		var ee *engine.EntityError
		if errors.As(err, &ee) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		slog.Error("convert drawing", "drawing", d.Name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.elmt"`, sanitize(name)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set(HeaderID, res.ID)
	w.Header().Set(HeaderConverted, strconv.Itoa(res.Stats.TotalConverted()))
	w.Header().Set(HeaderSkipped, strconv.Itoa(res.Stats.TotalSkipped()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("write element", "id", res.ID, "error", err)
		return
	}

	slog.Info("drawing converted",
		"id", res.ID,
		"name", name,
		"converted", res.Stats.TotalConverted(),
		"skipped", res.Stats.TotalSkipped(),
		"bytes", buf.Len(),
	)
}

func (h *Handler) options(r *http.Request) (engine.Options, error) {
	opts := h.opts
	q := r.URL.Query()
	if v := q.Get("spline_step"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > engine.MaxSplineStep {
			return opts, fmt.Errorf("invalid spline_step %q", v)
		}
		opts.SplineStep = n
	}
	if v := q.Get("dtext"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("invalid dtext %q", v)
		}
		opts.DynamicText = b
	}
	return opts, nil
}

// sanitize keeps a name safe for a Content-Disposition filename.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, name)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
