package httpmetrics

import "testing"

func TestNormalizePath(t *testing.T) {
	testCases := []struct {
		path string
		want string
	}{
		{path: "", want: "/"},
		{path: "/books", want: "/books"},
		{path: "/books/isbn/11111", want: "/books/isbn/{isbn}"},
		{path: "/books/author/Jane Austen", want: "/books/author/{author}"},
		{path: "/books/title/moby", want: "/books/title/{title}"},
		{path: "/books/11111/reviews", want: "/books/{isbn}/reviews"},
		{path: "/books/11111/review", want: "/books/{isbn}/review"},
		{path: "/register", want: "/register"},
		{path: "/login", want: "/login"},
		{path: "/health", want: "/health"},
	}

	for _, tc := range testCases {
		if got := NormalizePath(tc.path); got != tc.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
