package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"postboard/internal/models"
	"postboard/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is a canned posts API for exercising the controller.
type fakeAPI struct {
	posts    map[uint]*models.Post
	nextID   uint
	requests atomic.Int64
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{posts: map[uint]*models.Post{}, nextID: 1}
}

func (f *fakeAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/posts" && r.Method == http.MethodGet:
			list := []*models.Post{}
			for _, p := range f.posts {
				list = append(list, p)
			}
			_ = json.NewEncoder(w).Encode(list)

		case r.URL.Path == "/posts" && r.Method == http.MethodPost:
			var data CreatePostData
			_ = json.NewDecoder(r.Body).Decode(&data)
			post := &models.Post{
				ID:        f.nextID,
				Title:     strings.TrimSpace(data.Title),
				Content:   data.Content,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if data.Published != nil {
				post.Published = *data.Published
			}
			f.posts[post.ID] = post
			f.nextID++
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(post)

		default:
			raw := strings.TrimPrefix(r.URL.Path, "/posts/")
			id64, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Invalid ID", Code: models.CodeValidation})
				return
			}
			id := uint(id64)
			post, ok := f.posts[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{
					Error: "Post with ID " + strconv.FormatUint(id64, 10) + " not found",
					Code:  models.CodeNotFound,
				})
				return
			}

			switch r.Method {
			case http.MethodGet:
				_ = json.NewEncoder(w).Encode(post)
			case http.MethodPut:
				var data UpdatePostData
				_ = json.NewDecoder(r.Body).Decode(&data)
				if data.Title != nil {
					post.Title = *data.Title
				}
				if data.Content != nil {
					post.Content = data.Content
				}
				if data.Published != nil {
					post.Published = *data.Published
				}
				post.UpdatedAt = time.Now()
				_ = json.NewEncoder(w).Encode(post)
			case http.MethodDelete:
				delete(f.posts, id)
				_ = json.NewEncoder(w).Encode(post)
			}
		}
	})
}

func newTestController(t *testing.T) (*Controller, *fakeAPI) {
	t.Helper()
	api := newFakeAPI()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	return NewController(New(srv.URL)), api
}

func TestLoadReplacesListWholesale(t *testing.T) {
	ctl, api := newTestController(t)
	api.posts[1] = &models.Post{ID: 1, Title: "seeded"}
	api.nextID = 2

	require.NoError(t, ctl.Load(context.Background()))
	posts := ctl.Posts()
	require.Len(t, posts, 1)
	assert.Equal(t, "seeded", posts[0].Title)
}

func TestCreateAppendsServerRecord(t *testing.T) {
	ctl, _ := newTestController(t)
	require.NoError(t, ctl.Load(context.Background()))

	post, err := ctl.Create(context.Background(), validation.Form{Title: "  My Test Post  "})
	require.NoError(t, err)

	// The cached entry is the server's normalized record, not the submitted form.
	posts := ctl.Posts()
	require.Len(t, posts, 1)
	assert.Equal(t, "My Test Post", posts[0].Title)
	assert.Equal(t, post.ID, posts[0].ID)
	assert.NotZero(t, posts[0].ID)
	assert.False(t, posts[0].Published)
}

func TestCreateBlockedByAdvisoryValidation(t *testing.T) {
	ctl, api := newTestController(t)

	before := api.requests.Load()
	_, err := ctl.Create(context.Background(), validation.Form{Title: "   "})
	require.Error(t, err)

	assert.Equal(t, before, api.requests.Load(), "a blocked submission must not hit the network")
	assert.Equal(t, "Title is required", ctl.FieldErrors()["title"])
	assert.Empty(t, ctl.Posts())
}

func TestUpdateReplacesCachedEntry(t *testing.T) {
	ctl, _ := newTestController(t)
	created, err := ctl.Create(context.Background(), validation.Form{Title: "before", Content: "body"})
	require.NoError(t, err)

	_, err = ctl.Update(context.Background(), created.ID, validation.Form{Title: "after", Content: "body"})
	require.NoError(t, err)

	posts := ctl.Posts()
	require.Len(t, posts, 1)
	assert.Equal(t, "after", posts[0].Title)
}

func TestFailureLeavesListUntouchedAndSetsError(t *testing.T) {
	ctl, _ := newTestController(t)
	created, err := ctl.Create(context.Background(), validation.Form{Title: "survivor"})
	require.NoError(t, err)

	_, err = ctl.Update(context.Background(), created.ID+100, validation.Form{Title: "nope"})
	require.Error(t, err)

	posts := ctl.Posts()
	require.Len(t, posts, 1)
	assert.Equal(t, "survivor", posts[0].Title)
	assert.Contains(t, ctl.Err(), "not found")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestErrorClearsOnNextSuccess(t *testing.T) {
	ctl, _ := newTestController(t)

	_, err := ctl.Delete(context.Background(), 12345)
	require.Error(t, err)
	assert.NotEmpty(t, ctl.Err())

	_, err = ctl.Create(context.Background(), validation.Form{Title: "fresh"})
	require.NoError(t, err)
	assert.Empty(t, ctl.Err(), "error banner clears on the next successful operation")
}

func TestResetClearsErrorState(t *testing.T) {
	ctl, _ := newTestController(t)

	_, err := ctl.Create(context.Background(), validation.Form{Title: ""})
	require.Error(t, err)
	require.NotEmpty(t, ctl.FieldErrors())

	ctl.Reset()
	assert.Empty(t, ctl.Err())
	assert.Nil(t, ctl.FieldErrors())
}

func TestDeleteRemovesCachedEntry(t *testing.T) {
	ctl, _ := newTestController(t)
	first, err := ctl.Create(context.Background(), validation.Form{Title: "first"})
	require.NoError(t, err)
	_, err = ctl.Create(context.Background(), validation.Form{Title: "second"})
	require.NoError(t, err)

	deleted, err := ctl.Delete(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", deleted.Title)

	posts := ctl.Posts()
	require.Len(t, posts, 1)
	assert.Equal(t, "second", posts[0].Title)
}
