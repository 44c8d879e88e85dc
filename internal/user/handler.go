package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mateusvb/auth-api/internal/httputil"
	"github.com/mateusvb/auth-api/internal/logging"
)

// Store captures the lookup the profile handler needs.
type Store interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}

// Handler serves the protected profile-lookup endpoint.
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// ProfileResponse wraps the looked-up user.
type ProfileResponse struct {
	User *User `json:"user"`
}

// GetByID returns the user with the given id.
//
// Any valid token authorizes lookup of any user id; the token's own
// identity is deliberately not compared against the path parameter.
//
// @Summary      Get user by ID
// @Description  Fetch a user's public profile. Requires a valid bearer token.
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200 {object} ProfileResponse
// @Failure      401 {object} httputil.MessageResponse "Missing token"
// @Failure      400 {object} httputil.MessageResponse "Invalid token"
// @Failure      404 {object} httputil.MessageResponse "User not found"
// @Router       /user/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// A malformed id cannot match any record
		httputil.RespondMessage(w, "User not found!", http.StatusNotFound)
		return
	}

	found, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondMessage(w, "User not found!", http.StatusNotFound)
			return
		}
		logger.Error("profile lookup failed", "user_id", id, "error", err.Error())
		httputil.RespondMessage(w, "Something went wrong! Try again later.", http.StatusInternalServerError)
		return
	}

	// PasswordHash is excluded by its json:"-" tag
	httputil.RespondJSON(w, ProfileResponse{User: found}, http.StatusOK)
}
