package httpmetrics

import "strings"

// NormalizePath collapses path parameters (ISBNs, author and title
// fragments) so metric label cardinality stays bounded.
func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}

	switch {
	case strings.HasPrefix(path, "/books/isbn/"):
		return "/books/isbn/{isbn}"
	case strings.HasPrefix(path, "/books/author/"):
		return "/books/author/{author}"
	case strings.HasPrefix(path, "/books/title/"):
		return "/books/title/{title}"
	}

	if strings.HasPrefix(path, "/books/") {
		rest := strings.TrimPrefix(path, "/books/")
		if idx := strings.IndexByte(rest, '/'); idx != -1 {
			return "/books/{isbn}" + rest[idx:]
		}
	}

	return path
}
