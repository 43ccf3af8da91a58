package repository

import "github.com/bookworm-labs/bookstore-api/internal/catalog/domain"

// SeedBooks returns the fixed shop catalog loaded at process start.
func SeedBooks() []domain.Book {
	return []domain.Book{
		{ISBN: "11111", Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Reviews: []domain.Review{}},
		{ISBN: "22222", Title: "To Kill a Mockingbird", Author: "Harper Lee", Reviews: []domain.Review{}},
		{ISBN: "33333", Title: "1984", Author: "George Orwell", Reviews: []domain.Review{}},
		{ISBN: "44444", Title: "Pride and Prejudice", Author: "Jane Austen", Reviews: []domain.Review{}},
		{ISBN: "55555", Title: "Moby Dick", Author: "Herman Melville", Reviews: []domain.Review{}},
		{ISBN: "66666", Title: "War and Peace", Author: "Leo Tolstoy", Reviews: []domain.Review{}},
	}
}
