package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adielbeauty/storefront/internal/review/domain"
	"github.com/adielbeauty/storefront/internal/review/usecase/command"
	"github.com/adielbeauty/storefront/internal/review/usecase/query"
	"github.com/adielbeauty/storefront/pkg/auth"
)

type memoryReviews struct {
	mu      sync.Mutex
	reviews []domain.Review
}

func (m *memoryReviews) Create(_ context.Context, review *domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	review.ID = uint(len(m.reviews) + 1)
	m.reviews = append(m.reviews, *review)
	return nil
}

func (m *memoryReviews) ListRecent(_ context.Context, limit int) ([]domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]domain.Review(nil), m.reviews...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryReviews) Stats(context.Context) (*domain.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var stats domain.Stats
	customers := map[uint]bool{}
	sum := 0
	for _, r := range m.reviews {
		sum += r.Rating
		customers[r.UserID] = true
	}
	stats.TotalRatings = int64(len(m.reviews))
	stats.TotalCustomers = int64(len(customers))
	if stats.TotalRatings > 0 {
		stats.AverageRating = float64(sum) / float64(stats.TotalRatings)
	}
	return &stats, nil
}

func TestAddReviewDefaults(t *testing.T) {
	repo := &memoryReviews{}
	h := command.NewAddReviewHandler(repo)

	review, err := h.Handle(context.Background(), command.AddReviewCommand{UserID: 1, Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, domain.GeneralServiceTarget, review.TargetID)
	assert.Equal(t, domain.DefaultComment, review.Comment)
	assert.False(t, review.CreatedAt.IsZero())
}

func TestAddReviewValidation(t *testing.T) {
	h := command.NewAddReviewHandler(&memoryReviews{})
	ctx := context.Background()

	_, err := h.Handle(ctx, command.AddReviewCommand{Rating: 5})
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	_, err = h.Handle(ctx, command.AddReviewCommand{UserID: 1})
	assert.ErrorIs(t, err, domain.ErrNoRating)

	_, err = h.Handle(ctx, command.AddReviewCommand{UserID: 1, Rating: 6})
	assert.ErrorIs(t, err, domain.ErrRatingOutOfRange)

	_, err = h.Handle(ctx, command.AddReviewCommand{UserID: 1, Rating: -1})
	assert.ErrorIs(t, err, domain.ErrRatingOutOfRange)
}

func TestListReviewsNewestFirst(t *testing.T) {
	repo := &memoryReviews{}
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(context.Background(), &domain.Review{
			UserID: 1, Rating: i + 3, TargetID: "x", CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	reviews, err := query.NewListReviewsHandler(repo).Handle(context.Background(), query.ListReviewsQuery{Limit: 2})
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, 4, reviews[1].Rating)
}

func TestStatsRoundsAverage(t *testing.T) {
	repo := &memoryReviews{}
	ctx := context.Background()
	h := command.NewAddReviewHandler(repo)
	for _, c := range []command.AddReviewCommand{
		{UserID: 1, Rating: 5},
		{UserID: 1, Rating: 4},
		{UserID: 2, Rating: 4},
	} {
		_, err := h.Handle(ctx, c)
		require.NoError(t, err)
	}

	stats, err := query.NewGetStatsHandler(repo).Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4.3, stats.AverageRating)
	assert.Equal(t, int64(3), stats.TotalRatings)
	assert.Equal(t, int64(2), stats.TotalCustomers)
}

func TestReviewRoutes(t *testing.T) {
	router := mux.NewRouter()
	NewReviewHandler(&memoryReviews{}, nil).RegisterRoutes(router)

	body, _ := json.Marshal(map[string]interface{}{"rating": 5})

	req := httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := auth.GenerateToken(11, "tendai@example.com", "Tendai")
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Message string        `json:"message"`
		Data    domain.Review `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Thank you for your 5-star rating! Your feedback has been saved and helps us improve our service.", created.Message)
	assert.Equal(t, uint(11), created.Data.UserID)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reviews/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		Data domain.Stats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.Data.TotalRatings)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reviews?limit=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
