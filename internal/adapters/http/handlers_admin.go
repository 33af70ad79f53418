package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"greenvours/internal/adapters/storage/docstore"
	"greenvours/internal/application/accessors"
	"greenvours/internal/application/orchestrators"
	"greenvours/internal/domain/article"
	"greenvours/internal/domain/program"
	"greenvours/internal/domain/project"
	"greenvours/internal/domain/relief"
	"greenvours/internal/domain/sitecontent"
	"greenvours/internal/domain/team"
	"greenvours/internal/domain/tour"
)

// writeRule describes one collection the console may write.
// Collections absent from the registry are not writable over HTTP at all,
// which keeps users, admins and payments out of reach of the generic CRUD.
type writeRule struct {
	validate  func(fields map[string]any) error
	notify    string // subscriber notification item type, empty for none
	singleton bool
}

func validateAs[T interface{ Validate() error }](fields map[string]any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	var record T
	if err := json.Unmarshal(raw, &record); err != nil {
		return err
	}
	return record.Validate()
}

var writableCollections = map[string]writeRule{
	accessors.CollectionTours:     {validate: validateAs[*tour.Tour], notify: orchestrators.NotifyTours},
	accessors.CollectionNews:      {validate: validateAs[*article.Article], notify: orchestrators.NotifyNews},
	accessors.CollectionTeam:      {validate: validateAs[*team.Member]},
	accessors.CollectionProjects:  {validate: validateAs[*project.Project], notify: orchestrators.NotifyProjects},
	accessors.CollectionPrograms:  {validate: validateAs[*program.Program], notify: orchestrators.NotifyPrograms},
	accessors.CollectionRelief:    {validate: validateAs[*relief.Project]},
	accessors.CollectionHowWeHelp: {validate: validateAs[*sitecontent.HowWeHelpItem]},
	accessors.CollectionVision:    {validate: validateAs[*sitecontent.VisionContent], singleton: true},
	accessors.CollectionContactInfo: {
		validate:  validateAs[*sitecontent.ContactInfo],
		singleton: true,
	},
}

func writableCollection(w http.ResponseWriter, r *http.Request) (string, writeRule, bool) {
	name := r.PathValue("collection")
	rule, ok := writableCollections[name]
	if !ok {
		http.Error(w, "unknown collection", http.StatusNotFound)
		return "", writeRule{}, false
	}
	return name, rule, true
}

// notifySubscribers runs after the write has already succeeded, so a
// notification failure is logged rather than surfaced to the console.
func notifySubscribers(rule writeRule, action string, fields map[string]any) {
	if rule.notify == "" {
		return
	}
	err := orchestrators.ExecuteNotifySubscribers(context.Background(), orchestrators.NotifySubscribersInput{
		ItemType: rule.notify,
		Action:   action,
		Item:     fields,
	}, orchestrators.NotifySubscribersDeps{
		Sender:      deps.Sender,
		Subscribers: deps.subscribers,
	})
	if err != nil {
		slog.Error("notify_subscribers_failed", "item_type", rule.notify, "action", action, "error", err)
	}
}

func handleAdminCreate(w http.ResponseWriter, r *http.Request) {
	session, ok := requireAdmin(w, r)
	if !ok {
		return
	}
	collection, rule, ok := writableCollection(w, r)
	if !ok {
		return
	}

	var fields map[string]any
	if err := strictDecode(r, &fields); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if rule.singleton {
		fields["id"] = sitecontent.SingletonKey
	}
	if err := rule.validate(fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := deps.Store.Add(r.Context(), collection, fields)
	if err != nil {
		internalError(w, err)
		return
	}
	slog.Info("console_record_created", "collection", collection, "id", id, "by", session.Email)
	fields["id"] = id
	notifySubscribers(rule, orchestrators.ActionAdded, fields)

	writeJSON(w, http.StatusCreated, fields)
}

func handleAdminUpdate(w http.ResponseWriter, r *http.Request) {
	session, ok := requireAdmin(w, r)
	if !ok {
		return
	}
	collection, rule, ok := writableCollection(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")

	var fields map[string]any
	if err := strictDecode(r, &fields); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := rule.validate(fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Singletons are upserted: the first save of the vision text should not
	// require a prior seed record.
	if rule.singleton {
		fields["id"] = id
		if _, err := deps.Store.Add(r.Context(), collection, fields); err != nil {
			internalError(w, err)
			return
		}
	} else if err := deps.Store.Update(r.Context(), collection, id, fields); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	slog.Info("console_record_updated", "collection", collection, "id", id, "by", session.Email)
	notifySubscribers(rule, orchestrators.ActionUpdated, fields)

	fields["id"] = id
	writeJSON(w, http.StatusOK, fields)
}

func handleAdminDelete(w http.ResponseWriter, r *http.Request) {
	session, ok := requireAdmin(w, r)
	if !ok {
		return
	}
	collection, _, ok := writableCollection(w, r)
	if !ok {
		return
	}

	// Deletion is destructive and has no notification trail, so the console
	// must confirm it explicitly.
	if r.URL.Query().Get("confirm") != "true" {
		http.Error(w, "deletion requires confirm=true", http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	if err := deps.Store.Remove(r.Context(), collection, id); err != nil {
		internalError(w, err)
		return
	}
	slog.Info("console_record_deleted", "collection", collection, "id", id, "by", session.Email)
	w.WriteHeader(http.StatusNoContent)
}

func handleAdminUpload(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	const maxUpload = 10 << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := deps.Uploader.Upload(r.Context(), file, header.Filename)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func handleAdminListPayments(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	records, err := deps.payments.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func handleAdminListSubscribers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	records, err := deps.subscribers.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}
