package service

import (
	"context"
	"errors"

	"github.com/bookworm-labs/bookstore-api/internal/catalog/domain"
	catalogrepo "github.com/bookworm-labs/bookstore-api/internal/catalog/repository"
	commonerrors "github.com/bookworm-labs/bookstore-api/internal/common/errors"
	"github.com/bookworm-labs/bookstore-api/internal/common/logger"
)

// QueryService serves read-only catalog lookups.
type QueryService struct {
	repo catalogrepo.Repository
	log  *logger.Logger
}

func NewQueryService(repo catalogrepo.Repository, log *logger.Logger) *QueryService {
	return &QueryService{repo: repo, log: log}
}

// ListAll returns every book with its full review list. It never fails.
func (s *QueryService) ListAll(ctx context.Context) []domain.Book {
	incrementLookup("list", "hit")
	return s.repo.List(ctx)
}

func (s *QueryService) ByISBN(ctx context.Context, isbn string) (domain.Book, error) {
	book, err := s.repo.FindByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, catalogrepo.ErrBookNotFound) {
			incrementLookup("isbn", "miss")
			return domain.Book{}, commonerrors.ErrBookNotFound
		}
		return domain.Book{}, err
	}

	incrementLookup("isbn", "hit")
	return book, nil
}

// ByAuthor matches the author exactly, case-sensitive. Title search below is
// case-insensitive; the asymmetry is the shop's documented behavior.
func (s *QueryService) ByAuthor(ctx context.Context, author string) ([]domain.Book, error) {
	books := s.repo.FindByAuthor(ctx, author)
	if len(books) == 0 {
		incrementLookup("author", "miss")
		return nil, commonerrors.ErrNoResults
	}

	incrementLookup("author", "hit")
	return books, nil
}

// ByTitle matches a case-insensitive substring of the title.
func (s *QueryService) ByTitle(ctx context.Context, fragment string) ([]domain.Book, error) {
	books := s.repo.SearchByTitle(ctx, fragment)
	if len(books) == 0 {
		incrementLookup("title", "miss")
		return nil, commonerrors.ErrNoResults
	}

	incrementLookup("title", "hit")
	return books, nil
}

func (s *QueryService) ReviewsOf(ctx context.Context, isbn string) ([]domain.Review, error) {
	reviews, err := s.repo.Reviews(ctx, isbn)
	if err != nil {
		if errors.Is(err, catalogrepo.ErrBookNotFound) {
			incrementLookup("reviews", "miss")
			return nil, commonerrors.ErrBookNotFound
		}
		return nil, err
	}

	incrementLookup("reviews", "hit")
	return reviews, nil
}
