// Package service contains the domain logic sitting between the HTTP handlers
// and the repositories.
package service

import (
	"context"
	"errors"

	"postboard/internal/models"
	"postboard/internal/repository"

	"gorm.io/gorm"
)

// PostService wraps the raw post store with existence enforcement: a lookup
// miss is reported as an explicit NOT_FOUND error carrying the requested id,
// and any other store failure is wrapped as STORE_ERROR.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput carries the validated fields for a create operation.
type CreatePostInput struct {
	Title     string
	Content   *string
	Published *bool
}

// UpdatePostInput carries the validated fields for a partial update.
// Nil fields are left unchanged on the stored record.
type UpdatePostInput struct {
	Title     *string
	Content   *string
	Published *bool
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost inserts a new post. The store assigns id and timestamps;
// published defaults to false when omitted.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
	}
	if in.Published != nil {
		post.Published = *in.Published
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewStoreError(err)
	}
	return post, nil
}

// ListPosts returns all posts in store order.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, models.NewStoreError(err)
	}
	return posts, nil
}

// GetPost returns the post with the given id or a NOT_FOUND error.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateLookupError(err, id)
	}
	return post, nil
}

// UpdatePost applies the provided fields to an existing post and refreshes its
// UpdatedAt timestamp. Omitted fields keep their stored values.
func (s *PostService) UpdatePost(ctx context.Context, id uint, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateLookupError(err, id)
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = in.Content
	}
	if in.Published != nil {
		post.Published = *in.Published
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, models.NewStoreError(err)
	}
	return post, nil
}

// DeletePost removes the post with the given id and returns the record as it
// existed immediately before deletion.
func (s *PostService) DeletePost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateLookupError(err, id)
	}
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return nil, models.NewStoreError(err)
	}
	return post, nil
}

// translateLookupError maps a raw store miss to the domain NOT_FOUND error and
// wraps everything else as a store failure.
func translateLookupError(err error, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("Post", id)
	}
	return models.NewStoreError(err)
}
