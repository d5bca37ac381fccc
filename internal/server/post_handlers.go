package server

import (
	"postboard/internal/models"
	"postboard/internal/service"
	"postboard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	payload, violations := validation.CheckPayload(c.Body(), validation.OpCreate)
	if violations != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(violations))
	}

	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		Title:     *payload.Title,
		Content:   payload.Content,
		Published: payload.Published,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	posts, err := s.postService.ListPosts(ctx)
	if err != nil {
		return respondServiceError(c, err)
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	return c.JSON(posts)
}

// GetPost handles GET /posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// UpdatePost handles PUT /posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	payload, violations := validation.CheckPayload(c.Body(), validation.OpUpdate)
	if violations != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(violations))
	}

	post, err := s.postService.UpdatePost(ctx, id, service.UpdatePostInput{
		Title:     payload.Title,
		Content:   payload.Content,
		Published: payload.Published,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	post, err := s.postService.DeletePost(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}
