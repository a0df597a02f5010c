package cart

import (
	"context"
	"sync"

	"github.com/adielbeauty/storefront/internal/cart/domain"
	"github.com/adielbeauty/storefront/pkg/logger"
)

// NopNotifier drops notices
type NopNotifier struct{}

// Notify does nothing
func (NopNotifier) Notify(context.Context, domain.Notice) {}

// LogNotifier writes notices to the structured log
type LogNotifier struct{}

// Notify logs the notice at debug level
func (LogNotifier) Notify(ctx context.Context, n domain.Notice) {
	logger.Debug(ctx).
		Str("kind", string(n.Kind)).
		Str("title", n.Title).
		Str("description", n.Description).
		Msg("Notice")
}

// NoticeQueue buffers notices until the HTTP layer drains them into a response
type NoticeQueue struct {
	mu      sync.Mutex
	notices []domain.Notice
	next    domain.Notifier
}

// NewNoticeQueue creates a queue that also forwards every notice to next, if set
func NewNoticeQueue(next domain.Notifier) *NoticeQueue {
	return &NoticeQueue{next: next}
}

// Notify appends the notice
func (q *NoticeQueue) Notify(ctx context.Context, n domain.Notice) {
	q.mu.Lock()
	q.notices = append(q.notices, n)
	q.mu.Unlock()

	if q.next != nil {
		q.next.Notify(ctx, n)
	}
}

// Drain returns and forgets the queued notices
func (q *NoticeQueue) Drain() []domain.Notice {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.notices
	q.notices = nil
	if out == nil {
		out = []domain.Notice{}
	}
	return out
}
