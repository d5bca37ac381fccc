// Package bootstrap wires runtime dependencies for the cmd entrypoints.
package bootstrap

import (
	"fmt"

	"postboard/internal/config"
	"postboard/internal/database"
	"postboard/internal/seed"

	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoData bool
	DemoPosts    int
}

// InitRuntime connects to the database and optionally seeds demo data.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if opts.SeedDemoData {
		n := opts.DemoPosts
		if n <= 0 {
			n = 20
		}
		if err := seed.Posts(db, seed.Options{NumPosts: n}); err != nil {
			return nil, fmt.Errorf("failed to seed demo posts: %w", err)
		}
	}

	return db, nil
}
