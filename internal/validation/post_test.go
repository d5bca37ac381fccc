package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPayloadCreate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantField  string
		wantErrMsg string
	}{
		{
			name:       "missing title",
			body:       `{}`,
			wantField:  "title",
			wantErrMsg: "Title is required",
		},
		{
			name:       "empty title",
			body:       `{"title": ""}`,
			wantField:  "title",
			wantErrMsg: "Title is required",
		},
		{
			name:       "whitespace only title",
			body:       `{"title": "   \t  "}`,
			wantField:  "title",
			wantErrMsg: "Title is required",
		},
		{
			name:       "title too long",
			body:       `{"title": "` + strings.Repeat("a", 201) + `"}`,
			wantField:  "title",
			wantErrMsg: "Title must not exceed 200 characters",
		},
		{
			name:       "title wrong type",
			body:       `{"title": 42}`,
			wantField:  "title",
			wantErrMsg: "Title must be a string",
		},
		{
			name:       "null title",
			body:       `{"title": null}`,
			wantField:  "title",
			wantErrMsg: "Title must be a string",
		},
		{
			name:       "content too long",
			body:       `{"title": "ok", "content": "` + strings.Repeat("b", 5001) + `"}`,
			wantField:  "content",
			wantErrMsg: "Content must not exceed 5000 characters",
		},
		{
			name:       "content wrong type",
			body:       `{"title": "ok", "content": 7}`,
			wantField:  "content",
			wantErrMsg: "Content must be a string",
		},
		{
			name:       "published wrong type",
			body:       `{"title": "ok", "published": "yes"}`,
			wantField:  "published",
			wantErrMsg: "Published must be a boolean",
		},
		{
			name:       "non-object body",
			body:       `[1, 2, 3]`,
			wantField:  "body",
			wantErrMsg: "Request body must be a JSON object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, violations := CheckPayload([]byte(tt.body), OpCreate)
			assert.Nil(t, payload)
			require.NotNil(t, violations)
			assert.Equal(t, tt.wantErrMsg, violations[tt.wantField])
		})
	}
}

func TestCheckPayloadCreateAccepted(t *testing.T) {
	payload, violations := CheckPayload([]byte(`{"title": "  My Test Post  ", "content": "hello", "published": true}`), OpCreate)
	require.Nil(t, violations)
	require.NotNil(t, payload)
	require.NotNil(t, payload.Title)
	assert.Equal(t, "My Test Post", *payload.Title, "title should be trimmed")
	require.NotNil(t, payload.Content)
	assert.Equal(t, "hello", *payload.Content)
	require.NotNil(t, payload.Published)
	assert.True(t, *payload.Published)
}

func TestCheckPayloadTitleOnly(t *testing.T) {
	payload, violations := CheckPayload([]byte(`{"title": "My Test Post"}`), OpCreate)
	require.Nil(t, violations)
	assert.Nil(t, payload.Content, "absent content stays absent")
	assert.Nil(t, payload.Published, "absent published stays absent")
}

func TestCheckPayloadRejectsUnknownFields(t *testing.T) {
	payload, violations := CheckPayload([]byte(`{"title": "ok", "author": "someone"}`), OpCreate)
	assert.Nil(t, payload)
	require.NotNil(t, violations)
	assert.Contains(t, violations["author"], "not a recognized field")
}

func TestCheckPayloadUpdate(t *testing.T) {
	t.Run("absent title is allowed", func(t *testing.T) {
		payload, violations := CheckPayload([]byte(`{"published": false}`), OpUpdate)
		require.Nil(t, violations)
		assert.Nil(t, payload.Title)
		require.NotNil(t, payload.Published)
		assert.False(t, *payload.Published)
	})

	t.Run("present empty title is rejected", func(t *testing.T) {
		_, violations := CheckPayload([]byte(`{"title": "  "}`), OpUpdate)
		require.NotNil(t, violations)
		assert.Equal(t, "Title is required", violations["title"])
	})

	t.Run("present long title is rejected", func(t *testing.T) {
		_, violations := CheckPayload([]byte(`{"title": "`+strings.Repeat("x", 201)+`"}`), OpUpdate)
		require.NotNil(t, violations)
		assert.Equal(t, "Title must not exceed 200 characters", violations["title"])
	})

	t.Run("empty object is an accepted no-op payload", func(t *testing.T) {
		payload, violations := CheckPayload([]byte(`{}`), OpUpdate)
		require.Nil(t, violations)
		assert.Nil(t, payload.Title)
		assert.Nil(t, payload.Content)
		assert.Nil(t, payload.Published)
	})
}

func TestCheckForm(t *testing.T) {
	t.Run("blocks create without title", func(t *testing.T) {
		violations := CheckForm(Form{Title: "   "}, OpCreate)
		require.NotNil(t, violations)
		assert.Equal(t, "Title is required", violations["title"])
	})

	t.Run("accepts valid form", func(t *testing.T) {
		violations := CheckForm(Form{Title: "My Test Post", Content: "body", Published: true}, OpCreate)
		assert.Nil(t, violations)
	})

	t.Run("empty content is not a violation", func(t *testing.T) {
		violations := CheckForm(Form{Title: "ok"}, OpCreate)
		assert.Nil(t, violations)
	})

	t.Run("flags over-long content", func(t *testing.T) {
		violations := CheckForm(Form{Title: "ok", Content: strings.Repeat("c", 5001)}, OpCreate)
		require.NotNil(t, violations)
		assert.Equal(t, "Content must not exceed 5000 characters", violations["content"])
	})
}
