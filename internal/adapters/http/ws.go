package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"greenvours/internal/adapters/storage/docstore"
	"greenvours/internal/application/accessors"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// Same-origin only. The public pages connect from the page that
		// served them, so an absent Origin header (non-browser client) is
		// fine but a foreign one is not.
		origin := r.Header.Get("Origin")
		return origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host
	},
}

// feedCollections maps each collection the live feed may stream to the
// field its snapshots are ordered by. Auth and billing collections are
// deliberately absent.
var feedCollections = map[string]string{
	accessors.CollectionTours:       "id",
	accessors.CollectionNews:        "id",
	accessors.CollectionProjects:    "id",
	accessors.CollectionPrograms:    "id",
	accessors.CollectionTeam:        "",
	accessors.CollectionRelief:      "",
	accessors.CollectionHowWeHelp:   "",
	accessors.CollectionVision:      "",
	accessors.CollectionContactInfo: "",
}

type feedMessage struct {
	Collection string           `json:"collection"`
	Records    []map[string]any `json:"records"`
}

// handleContentFeed streams a collection over a websocket. The client gets
// the current snapshot immediately and a fresh one after every write, which
// is what keeps an open admin console and the public pages in step.
func handleContentFeed(w http.ResponseWriter, r *http.Request) {
	collection := r.URL.Query().Get("collection")
	orderField, ok := feedCollections[collection]
	if !ok {
		http.Error(w, "unknown collection", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		slog.Warn("feed_upgrade_failed", "error", err)
		return
	}
	defer conn.Close()

	cancel, err := deps.Store.Subscribe(r.Context(), collection, orderField, func(snap docstore.Snapshot) {
		records := make([]map[string]any, 0, len(snap))
		for _, doc := range snap {
			fields := make(map[string]any, len(doc.Fields)+1)
			for k, v := range doc.Fields {
				fields[k] = v
			}
			fields["id"] = doc.ID
			records = append(records, fields)
		}
		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteJSON(feedMessage{Collection: collection, Records: records}); err != nil {
			conn.Close()
		}
	})
	if err != nil {
		slog.Error("feed_subscribe_failed", "collection", collection, "error", err)
		return
	}
	defer cancel()

	slog.Info("feed_opened", "collection", collection)

	// Keepalive pings. WriteControl is safe to call concurrently with the
	// snapshot writes above.
	pingDone := make(chan struct{})
	defer close(pingDone)
	go func() {
		ticker := time.NewTicker(wsPingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deadline := time.Now().Add(wsWriteTimeout)
				if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
					return
				}
			case <-pingDone:
				return
			}
		}
	}()

	// The feed is one-way. Reading until error is how we learn the client
	// went away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	slog.Info("feed_closed", "collection", collection)
}
