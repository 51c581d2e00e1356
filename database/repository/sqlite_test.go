package repository_test

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/inkpress/database"
	"github.com/inkpress/database/repository"
)

func newSQLiteConnection(t *testing.T) (*database.Connection, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
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
		t.Fatalf("migrate schema: %v", err)
	}

	return database.NewConnectionFromGorm(db), db
}

func str(s string) *string {
	return &s
}

func seedPost(t *testing.T, repo repository.Posts, slug, title string, publishedAt *time.Time, blocks []database.BlockAttrs) database.Post {
	t.Helper()

	post, err := repo.Create(database.PostAttrs{
		Title:       title,
		Slug:        slug,
		Excerpt:     str(title + " excerpt"),
		AuthorName:  str("Jane Doe"),
		PublishedAt: publishedAt,
		Blocks:      blocks,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	return *post
}

func at(t *testing.T, value string) *time.Time {
	t.Helper()

	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time: %v", err)
	}

	return &ts
}
