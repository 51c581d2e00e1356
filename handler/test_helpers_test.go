package handler

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/inkpress/database"
	"github.com/inkpress/database/repository"
)

func makePostsRepo(t *testing.T) repository.Posts {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := db.AutoMigrate(&database.Post{}, &database.PostBlock{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return repository.Posts{DB: database.NewConnectionFromGorm(db)}
}

func seedPost(t *testing.T, repo repository.Posts, slug, title string, published bool, blocks []database.BlockAttrs) database.Post {
	t.Helper()

	var publishedAt *time.Time
	if published {
		ts := time.Now().UTC()
		publishedAt = &ts
	}

	post, err := repo.Create(database.PostAttrs{
		Title:       title,
		Slug:        slug,
		PublishedAt: publishedAt,
		Blocks:      blocks,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	return *post
}

func strPtr(s string) *string {
	return &s
}
