package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/bookworm-labs/bookstore-api/internal/catalog/domain"
)

var ErrBookNotFound = errors.New("book not found")

type Repository interface {
	List(ctx context.Context) []domain.Book
	FindByISBN(ctx context.Context, isbn string) (domain.Book, error)
	FindByAuthor(ctx context.Context, author string) []domain.Book
	SearchByTitle(ctx context.Context, fragment string) []domain.Book
	Reviews(ctx context.Context, isbn string) ([]domain.Review, error)
	UpsertReview(ctx context.Context, isbn string, review domain.Review) ([]domain.Review, error)
	DeleteReview(ctx context.Context, isbn string, username string) ([]domain.Review, error)
}

// MemoryRepository owns the catalog in-process, preserving insertion order
// for listings and search results. Callers receive copies, never the
// internal slices.
type MemoryRepository struct {
	mu    sync.RWMutex
	books map[string]*domain.Book
	order []string
}

func NewMemoryRepository(seed []domain.Book) *MemoryRepository {
	r := &MemoryRepository{
		books: make(map[string]*domain.Book, len(seed)),
	}
	for _, b := range seed {
		if _, exists := r.books[b.ISBN]; exists {
			continue
		}
		book := b
		book.Reviews = append([]domain.Review(nil), b.Reviews...)
		r.books[b.ISBN] = &book
		r.order = append(r.order, b.ISBN)
	}
	return r
}

func (r *MemoryRepository) List(ctx context.Context) []domain.Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Book, 0, len(r.order))
	for _, isbn := range r.order {
		result = append(result, copyBook(r.books[isbn]))
	}
	return result
}

func (r *MemoryRepository) FindByISBN(ctx context.Context, isbn string) (domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[isbn]
	if !ok {
		return domain.Book{}, ErrBookNotFound
	}
	return copyBook(book), nil
}

// FindByAuthor matches the author exactly, case-sensitive.
func (r *MemoryRepository) FindByAuthor(ctx context.Context, author string) []domain.Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.Book
	for _, isbn := range r.order {
		if book := r.books[isbn]; book.Author == author {
			result = append(result, copyBook(book))
		}
	}
	return result
}

// SearchByTitle matches a case-insensitive substring of the title.
func (r *MemoryRepository) SearchByTitle(ctx context.Context, fragment string) []domain.Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(fragment)

	var result []domain.Book
	for _, isbn := range r.order {
		if book := r.books[isbn]; strings.Contains(strings.ToLower(book.Title), needle) {
			result = append(result, copyBook(book))
		}
	}
	return result
}

func (r *MemoryRepository) Reviews(ctx context.Context, isbn string) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}
	return copyReviews(book.Reviews), nil
}

// UpsertReview replaces the review owned by review.Username in place when
// one exists, otherwise appends. The updated review list is returned.
func (r *MemoryRepository) UpsertReview(ctx context.Context, isbn string, review domain.Review) ([]domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, ok := r.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}

	replaced := false
	for i := range book.Reviews {
		if book.Reviews[i].Username == review.Username {
			book.Reviews[i].Text = review.Text
			replaced = true
			break
		}
	}
	if !replaced {
		book.Reviews = append(book.Reviews, review)
	}

	return copyReviews(book.Reviews), nil
}

// DeleteReview filters out the review owned by username. Deleting a review
// that does not exist is not an error.
func (r *MemoryRepository) DeleteReview(ctx context.Context, isbn string, username string) ([]domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, ok := r.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}

	kept := book.Reviews[:0]
	for _, rev := range book.Reviews {
		if rev.Username != username {
			kept = append(kept, rev)
		}
	}
	book.Reviews = kept

	return copyReviews(book.Reviews), nil
}

func copyBook(b *domain.Book) domain.Book {
	out := *b
	out.Reviews = copyReviews(b.Reviews)
	return out
}

func copyReviews(reviews []domain.Review) []domain.Review {
	out := make([]domain.Review, len(reviews))
	copy(out, reviews)
	return out
}
