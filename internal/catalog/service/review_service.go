package service

import (
	"context"
	"errors"

	"github.com/bookworm-labs/bookstore-api/internal/catalog/domain"
	catalogrepo "github.com/bookworm-labs/bookstore-api/internal/catalog/repository"
	commonerrors "github.com/bookworm-labs/bookstore-api/internal/common/errors"
	"github.com/bookworm-labs/bookstore-api/internal/common/logger"
)

// ReviewService mutates a verified identity's review on a book. It performs
// no authentication itself; callers must supply an identity that came from
// a verified session token.
type ReviewService struct {
	repo catalogrepo.Repository
	log  *logger.Logger
}

func NewReviewService(repo catalogrepo.Repository, log *logger.Logger) *ReviewService {
	return &ReviewService{repo: repo, log: log}
}

// UpsertReview adds the identity's review to the book, or replaces its text
// in place when one already exists. At most one review per (book, username)
// pair ever exists.
func (s *ReviewService) UpsertReview(ctx context.Context, isbn, username, text string) ([]domain.Review, error) {
	reviews, err := s.repo.UpsertReview(ctx, isbn, domain.Review{
		Username: username,
		Text:     text,
	})
	if err != nil {
		if errors.Is(err, catalogrepo.ErrBookNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"isbn":     isbn,
				"username": username,
				"action":   "upsert_review_book_not_found",
			}).Warn("upsert review failed: book not found")
			return nil, commonerrors.ErrBookNotFound
		}
		return nil, err
	}

	incrementReviewsUpserted()

	s.log.WithFields(ctx, logger.Fields{
		"isbn":     isbn,
		"username": username,
		"action":   "upsert_review_success",
	}).Info("review upserted")

	return reviews, nil
}

// DeleteReview removes the identity's review from the book if present.
// Deleting a review that does not exist is not an error.
func (s *ReviewService) DeleteReview(ctx context.Context, isbn, username string) ([]domain.Review, error) {
	reviews, err := s.repo.DeleteReview(ctx, isbn, username)
	if err != nil {
		if errors.Is(err, catalogrepo.ErrBookNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"isbn":     isbn,
				"username": username,
				"action":   "delete_review_book_not_found",
			}).Warn("delete review failed: book not found")
			return nil, commonerrors.ErrBookNotFound
		}
		return nil, err
	}

	incrementReviewsDeleted()

	s.log.WithFields(ctx, logger.Fields{
		"isbn":     isbn,
		"username": username,
		"action":   "delete_review_success",
	}).Info("review deleted")

	return reviews, nil
}
