package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/bookworm-labs/bookstore-api/internal/catalog/service"
	"github.com/bookworm-labs/bookstore-api/internal/common/authtoken"
	commonhttp "github.com/bookworm-labs/bookstore-api/internal/common/http"
	"github.com/bookworm-labs/bookstore-api/internal/common/logger"
)

type reviewRequest struct {
	Review string `json:"review"`
}

type Handler struct {
	query   *service.QueryService
	reviews *service.ReviewService
	log     *logger.Logger
	timeout time.Duration

	protectedReview http.Handler
}

// NewHandler builds the catalog routes. Review mutations sit behind the
// session-token middleware; everything else is public.
func NewHandler(
	query *service.QueryService,
	reviews *service.ReviewService,
	jwtSecret string,
	timeout time.Duration,
	log *logger.Logger,
) http.Handler {
	h := &Handler{query: query, reviews: reviews, log: log, timeout: timeout}
	h.protectedReview = authtoken.Middleware(jwtSecret, log)(http.HandlerFunc(h.review))

	mux := http.NewServeMux()
	mux.HandleFunc("/books", h.list)
	mux.HandleFunc("/books/", h.dispatch)
	return mux
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, h.query.ListAll(r.Context()))
}

// dispatch routes everything under /books/ by hand: the parameter segments
// (ISBNs, author names, title fragments) are free-form strings.
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/books/")
	parts := strings.Split(rest, "/")

	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		commonhttp.WriteErrorEnvelope(w, http.StatusNotFound, commonhttp.CodeInvalidPath, "not found", nil, "")
		return
	}

	switch parts[0] {
	case "isbn":
		h.byISBN(w, r, parts[1])
		return
	case "author":
		h.byAuthor(w, r, parts[1])
		return
	case "title":
		h.byTitle(w, r, parts[1])
		return
	}

	switch parts[1] {
	case "reviews":
		h.reviewsOf(w, r, parts[0])
	case "review":
		h.protectedReview.ServeHTTP(w, r)
	default:
		commonhttp.WriteErrorEnvelope(w, http.StatusNotFound, commonhttp.CodeInvalidPath, "not found", nil, "")
	}
}

func (h *Handler) byISBN(w http.ResponseWriter, r *http.Request, isbn string) {
	if r.Method != http.MethodGet {
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	book, err := h.query.ByISBN(r.Context(), isbn)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, book)
}

func (h *Handler) byAuthor(w http.ResponseWriter, r *http.Request, author string) {
	if r.Method != http.MethodGet {
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	books, err := h.query.ByAuthor(r.Context(), author)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, books)
}

func (h *Handler) byTitle(w http.ResponseWriter, r *http.Request, fragment string) {
	if r.Method != http.MethodGet {
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	books, err := h.query.ByTitle(r.Context(), fragment)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, books)
}

func (h *Handler) reviewsOf(w http.ResponseWriter, r *http.Request, isbn string) {
	if r.Method != http.MethodGet {
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	reviews, err := h.query.ReviewsOf(r.Context(), isbn)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, reviews)
}

// review handles the authenticated mutations on /books/{isbn}/review. The
// middleware has already placed the verified identity in the context.
func (h *Handler) review(w http.ResponseWriter, r *http.Request) {
	claims, ok := authtoken.FromContext(r.Context())
	if !ok {
		commonhttp.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	isbn := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/books/"), "/", 2)[0]

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	switch r.Method {
	case http.MethodPost:
		h.upsertReview(ctx, w, r, isbn, claims.Username)
	case http.MethodDelete:
		h.deleteReview(ctx, w, r, isbn, claims.Username)
	default:
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) upsertReview(ctx context.Context, w http.ResponseWriter, r *http.Request, isbn, username string) {
	var req reviewRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("upsert review failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", nil, "")
		return
	}

	if req.Review == "" {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeBadRequest, "review is required", nil, "")
		return
	}

	reviews, err := h.reviews.UpsertReview(ctx, isbn, username, req.Review)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, reviews)
}

func (h *Handler) deleteReview(ctx context.Context, w http.ResponseWriter, r *http.Request, isbn, username string) {
	reviews, err := h.reviews.DeleteReview(ctx, isbn, username)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, reviews)
}
