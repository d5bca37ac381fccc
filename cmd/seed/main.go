// Command seed populates the database with fake posts for development.
package main

import (
	"flag"
	"log"

	"postboard/internal/config"
	"postboard/internal/database"
	"postboard/internal/seed"
)

func main() {
	numPosts := flag.Int("posts", 20, "number of posts to create")
	clean := flag.Bool("clean", false, "wipe the posts table before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Posts(db, seed.Options{NumPosts: *numPosts, ShouldClean: *clean}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
