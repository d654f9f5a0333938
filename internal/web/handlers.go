package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/spacesedan/sentiboard/internal/models"
	"github.com/spacesedan/sentiboard/internal/report"
)

type menuItem struct {
	View   models.View
	Title  string
	Active bool
}

type pageData struct {
	AppTitle string
	Menu     []menuItem
	Page     *report.Page
	Backend  string

	// Health is empty when the classifier is not monitored.
	Health string
}

type healthResponse struct {
	Status            string `json:"status"`
	Backend           string `json:"backend"`
	ClassifierHealthy *bool  `json:"classifier_healthy,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	view, err := models.ParseView(q.Get("menu"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	label, err := models.ParseLabelColumn(q.Get("label"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.render(w, r, report.Request{View: view, Label: label})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MAX_FORM_BYTES)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}

	s.render(w, r, report.Request{
		View:      models.ViewTesting,
		Text:      r.PostForm.Get("text"),
		Submitted: true,
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{Status: "ok", Backend: s.opts.Backend, ClassifierHealthy: s.healthy()}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("[Server] Failed to encode health response", slog.String("error", err.Error()))
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, req report.Request) {
	page, err := s.renderer.Render(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrUnknownView) || errors.Is(err, models.ErrUnknownLabelColumn) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	data := pageData{
		AppTitle: APP_TITLE,
		Menu:     menu(page.View),
		Page:     page,
		Backend:  s.opts.Backend,
		Health:   healthLabel(s.healthy()),
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		slog.Error("[Server] Failed to execute template",
			slog.String("view", string(page.View)),
			slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) healthy() *bool {
	if s.opts.Healthy == nil {
		return nil
	}
	v := s.opts.Healthy.Load()
	return &v
}

func healthLabel(healthy *bool) string {
	switch {
	case healthy == nil:
		return ""
	case *healthy:
		return "sehat"
	default:
		return "tidak tersedia"
	}
}

func menu(active models.View) []menuItem {
	items := make([]menuItem, len(models.Views))
	for i, v := range models.Views {
		items[i] = menuItem{View: v, Title: v.Title(), Active: v == active}
	}
	return items
}
