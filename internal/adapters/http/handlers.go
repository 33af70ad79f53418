package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"greenvours/internal/adapters/storage/docstore"
	"greenvours/internal/application/accessors"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write_json_failed", "error", err.Error())
	}
}

// listHandler returns a GET handler serving the accessor's full collection.
func listHandler[T any](acc func(docstore.Store) *accessors.Accessor[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := acc(deps.Store).List(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}

// getHandler returns a GET handler serving one record by path id.
func getHandler[T any](acc func(docstore.Store) *accessors.Accessor[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := acc(deps.Store).Get(r.Context(), r.PathValue("id"))
		if errors.Is(err, docstore.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

var (
	handleListTours     = listHandler(accessors.Tours)
	handleGetTour       = getHandler(accessors.Tours)
	handleListNews      = listHandler(accessors.News)
	handleListTeam      = listHandler(accessors.Team)
	handleListProjects  = listHandler(accessors.Projects)
	handleListPrograms  = listHandler(accessors.Programs)
	handleGetProgram    = getHandler(accessors.Programs)
	handleListRelief    = listHandler(accessors.Relief)
	handleListHowWeHelp = listHandler(accessors.HowWeHelp)
)

// handleGetProject serves one conservation project with its long description
// rendered to HTML for the detail page.
func handleGetProject(w http.ResponseWriter, r *http.Request) {
	proj, err := accessors.Projects(deps.Store).Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, docstore.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	var rendered bytes.Buffer
	if err := mdRenderer.Convert([]byte(proj.LongDescription), &rendered); err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":                  proj.ID,
		"name":                proj.Name,
		"location":            proj.Location,
		"description":         proj.Description,
		"longDescription":     proj.LongDescription,
		"longDescriptionHtml": rendered.String(),
		"imageUrl":            proj.ImageURL,
		"goals":               proj.Goals,
		"impactStats":         proj.ImpactStats,
		"galleryImages":       proj.GalleryImages,
	})
}

// handleGetArticle serves one blog article with its markdown body rendered
// to HTML for the detail page.
func handleGetArticle(w http.ResponseWriter, r *http.Request) {
	art, err := accessors.News(deps.Store).Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, docstore.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	var rendered bytes.Buffer
	if err := mdRenderer.Convert([]byte(art.Content), &rendered); err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":            art.ID,
		"title":         art.Title,
		"excerpt":       art.Excerpt,
		"content":       art.Content,
		"contentHtml":   rendered.String(),
		"imageUrl":      art.ImageURL,
		"galleryImages": art.GalleryImages,
		"category":      art.Category,
		"date":          art.Date,
	})
}

func handleGetVision(w http.ResponseWriter, r *http.Request) {
	vision, err := accessors.Vision(deps.Store).Get(r.Context())
	if errors.Is(err, docstore.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vision)
}

func handleGetContactInfo(w http.ResponseWriter, r *http.Request) {
	info, err := accessors.ContactInfo(deps.Store).Get(r.Context())
	if errors.Is(err, docstore.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
