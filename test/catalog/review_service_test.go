package catalog

import (
	"context"
	"errors"
	"testing"

	catalogrepo "github.com/bookworm-labs/bookstore-api/internal/catalog/repository"
	"github.com/bookworm-labs/bookstore-api/internal/catalog/service"
	commonerrors "github.com/bookworm-labs/bookstore-api/internal/common/errors"
)

func setupReviewService(t *testing.T) *service.ReviewService {
	t.Helper()
	repo := catalogrepo.NewMemoryRepository(catalogrepo.SeedBooks())
	return service.NewReviewService(repo, mustLogger(t))
}

func TestReviewService_Upsert_AppendsThenOverwrites(t *testing.T) {
	svc := setupReviewService(t)
	ctx := context.Background()

	reviews, err := svc.UpsertReview(ctx, "11111", "alice", "great")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(reviews) != 1 || reviews[0].Text != "great" {
		t.Fatalf("expected one review with text great, got %v", reviews)
	}

	reviews, err = svc.UpsertReview(ctx, "11111", "alice", "even better")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("expected exactly one review after overwrite, got %d", len(reviews))
	}
	if reviews[0].Username != "alice" || reviews[0].Text != "even better" {
		t.Errorf("expected alice/even better, got %s/%s", reviews[0].Username, reviews[0].Text)
	}
}

func TestReviewService_Upsert_PreservesPosition(t *testing.T) {
	svc := setupReviewService(t)
	ctx := context.Background()

	if _, err := svc.UpsertReview(ctx, "11111", "alice", "first"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if _, err := svc.UpsertReview(ctx, "11111", "bob", "second"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	reviews, err := svc.UpsertReview(ctx, "11111", "alice", "updated")
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if len(reviews) != 2 {
		t.Fatalf("expected two reviews, got %d", len(reviews))
	}
	if reviews[0].Username != "alice" || reviews[0].Text != "updated" {
		t.Errorf("expected alice to keep position 0, got %v", reviews)
	}
	if reviews[1].Username != "bob" {
		t.Errorf("expected bob at position 1, got %v", reviews)
	}
}

func TestReviewService_Upsert_BookNotFound(t *testing.T) {
	svc := setupReviewService(t)

	_, err := svc.UpsertReview(context.Background(), "99999", "alice", "great")
	if !errors.Is(err, commonerrors.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestReviewService_Delete_Idempotent(t *testing.T) {
	svc := setupReviewService(t)
	ctx := context.Background()

	if _, err := svc.UpsertReview(ctx, "22222", "alice", "fine"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	// Deleting a review that does not exist returns the list unchanged.
	reviews, err := svc.DeleteReview(ctx, "22222", "bob")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(reviews) != 1 || reviews[0].Username != "alice" {
		t.Fatalf("expected alice's review untouched, got %v", reviews)
	}

	reviews, err = svc.DeleteReview(ctx, "22222", "alice")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(reviews) != 0 {
		t.Fatalf("expected empty review list, got %v", reviews)
	}

	reviews, err = svc.DeleteReview(ctx, "22222", "alice")
	if err != nil {
		t.Fatalf("expected repeat delete to succeed, got %v", err)
	}
	if len(reviews) != 0 {
		t.Fatalf("expected empty review list, got %v", reviews)
	}
}

func TestReviewService_Delete_BookNotFound(t *testing.T) {
	svc := setupReviewService(t)

	_, err := svc.DeleteReview(context.Background(), "99999", "alice")
	if !errors.Is(err, commonerrors.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}
