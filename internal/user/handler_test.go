package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	byID map[uuid.UUID]*User
}

func (f *fakeStore) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func TestHandlerGetByID(t *testing.T) {
	known := &User{
		ID:           uuid.New(),
		Username:     "a",
		Email:        "a@x.com",
		PasswordHash: "$2a$12$notarealhashnotarealhashnotarealhash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	store := &fakeStore{byID: map[uuid.UUID]*User{known.ID: known}}

	r := chi.NewRouter()
	r.Get("/user/{id}", NewHandler(store).GetByID)

	t.Run("known user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/user/"+known.ID.String(), nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp ProfileResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, known.ID, resp.User.ID)
		assert.Equal(t, "a", resp.User.Username)
		assert.Equal(t, "a@x.com", resp.User.Email)
	})

	t.Run("password hash never serialized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/user/"+known.ID.String(), nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password")
		assert.NotContains(t, rec.Body.String(), known.PasswordHash)
	})

	t.Run("unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/user/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"msg":"User not found!"}`, rec.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/user/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"msg":"User not found!"}`, rec.Body.String())
	})
}
