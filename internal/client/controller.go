package client

import (
	"context"

	"postboard/internal/models"
	"postboard/internal/validation"
)

// Controller holds the application state behind the posts UI: the cached post
// list, the current error banner, and per-field violations of the open dialog.
//
// The cached list is never authoritative. It is replaced wholesale by Load and
// patched after each successful mutation using the server's response, never
// the locally submitted form. On any failure the list is left untouched and
// the error message is recorded; it clears on the next success or Reset.
type Controller struct {
	api       *Client
	posts     []models.Post
	errMsg    string
	fieldErrs map[string]string
}

// NewController creates a Controller backed by the given API client.
func NewController(api *Client) *Controller {
	return &Controller{api: api}
}

// Posts returns a copy of the cached post list.
func (ctl *Controller) Posts() []models.Post {
	out := make([]models.Post, len(ctl.posts))
	copy(out, ctl.posts)
	return out
}

// Err returns the current error banner message, or "" if none.
func (ctl *Controller) Err() string {
	return ctl.errMsg
}

// FieldErrors returns the advisory validation violations of the last blocked
// submission, keyed by field name.
func (ctl *Controller) FieldErrors() map[string]string {
	return ctl.fieldErrs
}

// Reset clears the error banner and field violations, as when a dialog is
// closed or reopened.
func (ctl *Controller) Reset() {
	ctl.errMsg = ""
	ctl.fieldErrs = nil
}

// Load replaces the cached list with the server's full post list.
func (ctl *Controller) Load(ctx context.Context) error {
	posts, err := ctl.api.GetAllPosts(ctx)
	if err != nil {
		ctl.errMsg = err.Error()
		return err
	}
	ctl.posts = posts
	ctl.errMsg = ""
	return nil
}

// Create validates the form, submits it, and appends the server's record to
// the cached list. A validation failure blocks the submission without any
// network call.
func (ctl *Controller) Create(ctx context.Context, form validation.Form) (*models.Post, error) {
	if violations := validation.CheckForm(form, validation.OpCreate); violations != nil {
		ctl.fieldErrs = violations
		return nil, models.NewFieldValidationError(violations)
	}
	ctl.fieldErrs = nil

	post, err := ctl.api.CreatePost(ctx, createData(form))
	if err != nil {
		ctl.errMsg = err.Error()
		return nil, err
	}

	ctl.posts = append(ctl.posts, *post)
	ctl.errMsg = ""
	return post, nil
}

// Update validates the form, submits it, and replaces the matching cached
// entry with the server's record.
func (ctl *Controller) Update(ctx context.Context, id uint, form validation.Form) (*models.Post, error) {
	if violations := validation.CheckForm(form, validation.OpUpdate); violations != nil {
		ctl.fieldErrs = violations
		return nil, models.NewFieldValidationError(violations)
	}
	ctl.fieldErrs = nil

	post, err := ctl.api.UpdatePost(ctx, id, updateData(form))
	if err != nil {
		ctl.errMsg = err.Error()
		return nil, err
	}

	for i := range ctl.posts {
		if ctl.posts[i].ID == id {
			ctl.posts[i] = *post
			break
		}
	}
	ctl.errMsg = ""
	return post, nil
}

// Delete removes the post server-side and drops it from the cached list.
func (ctl *Controller) Delete(ctx context.Context, id uint) (*models.Post, error) {
	post, err := ctl.api.DeletePost(ctx, id)
	if err != nil {
		ctl.errMsg = err.Error()
		return nil, err
	}

	kept := ctl.posts[:0]
	for _, p := range ctl.posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	ctl.posts = kept
	ctl.errMsg = ""
	return post, nil
}

// createData maps the dialog form onto a create payload. An empty content
// field is omitted entirely so the stored content stays NULL.
func createData(form validation.Form) CreatePostData {
	data := CreatePostData{
		Title:     form.Title,
		Published: &form.Published,
	}
	if form.Content != "" {
		content := form.Content
		data.Content = &content
	}
	return data
}

// updateData maps the dialog form onto an update payload. The dialog is
// pre-filled from the existing record, so title and published are always
// submitted; content is omitted when the field is empty.
func updateData(form validation.Form) UpdatePostData {
	title := form.Title
	published := form.Published
	data := UpdatePostData{
		Title:     &title,
		Published: &published,
	}
	if form.Content != "" {
		content := form.Content
		data.Content = &content
	}
	return data
}
