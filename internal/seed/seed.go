// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"strings"

	"postboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumPosts    int
	ShouldClean bool
}

// Posts inserts NumPosts fake posts, optionally wiping the table first.
func Posts(db *gorm.DB, opts Options) error {
	if opts.ShouldClean {
		if err := db.Exec("DELETE FROM posts").Error; err != nil {
			return fmt.Errorf("failed to clean posts table: %w", err)
		}
		log.Println("Cleaned posts table")
	}

	for i := 0; i < opts.NumPosts; i++ {
		post := models.Post{
			Title:     strings.TrimSuffix(gofakeit.Sentence(gofakeit.Number(3, 8)), "."),
			Published: gofakeit.Bool(),
		}
		// Roughly a quarter of posts stay content-less to exercise the
		// nullable column.
		if gofakeit.Number(0, 3) > 0 {
			content := gofakeit.Paragraph(1, gofakeit.Number(1, 4), gofakeit.Number(5, 15), " ")
			post.Content = &content
		}
		if err := db.Create(&post).Error; err != nil {
			return fmt.Errorf("failed to create seed post %d: %w", i+1, err)
		}
	}

	log.Printf("Seeded %d posts", opts.NumPosts)
	return nil
}
