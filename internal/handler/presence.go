package handler

import (
	"net/http"

	"github.com/inkpost/inkpost/internal/ctxkeys"
	"github.com/inkpost/inkpost/internal/presence"
)

type PresenceHandler struct {
	tracker *presence.Tracker
}

func NewPresenceHandler(tracker *presence.Tracker) *PresenceHandler {
	return &PresenceHandler{
		tracker: tracker,
	}
}

func postRoom(postID string) string {
	return "post:" + postID
}

// Heartbeat marks the authenticated user as viewing a post and returns
// the current viewer set.
func (h *PresenceHandler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	room := postRoom(r.PathValue("id"))

	err := h.tracker.Heartbeat(r.Context(), room, user.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.respondViewers(w, r, room)
}

// Viewers reports who is currently viewing a post. Read-only.
func (h *PresenceHandler) Viewers(w http.ResponseWriter, r *http.Request) {
	h.respondViewers(w, r, postRoom(r.PathValue("id")))
}

func (h *PresenceHandler) respondViewers(w http.ResponseWriter, r *http.Request, room string) {
	viewers, err := h.tracker.Viewers(r.Context(), room)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string][]string{"viewers": viewers})
}
