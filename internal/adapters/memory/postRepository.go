package memory

import (
	"blogapi/internal/core/post"
	postPort "blogapi/internal/ports/post"
	"context"
	"fmt"
	"sync"
)

var _ postPort.PostRepository = (*PostRepositoryMemory)(nil)

// IDStrategy تعیین می‌کند شناسه پست جدید چطور ساخته شود
type IDStrategy string

const (
	// IDStrategyMax بزرگ‌ترین شناسه موجود + 1، یا 1 وقتی مجموعه خالی است
	IDStrategyMax IDStrategy = "max"
	// IDStrategySequence شمارنده صعودی که هرگز شناسه حذف‌شده را دوباره نمی‌دهد
	IDStrategySequence IDStrategy = "sequence"
)

// ParseIDStrategy رشته تنظیمات را به IDStrategy تبدیل می‌کند
func ParseIDStrategy(s string) (IDStrategy, error) {
	switch IDStrategy(s) {
	case "", IDStrategyMax:
		return IDStrategyMax, nil
	case IDStrategySequence:
		return IDStrategySequence, nil
	}
	return "", fmt.Errorf("unknown post id strategy %q", s)
}

// PostRepositoryMemory پیاده‌سازی PostRepository در حافظه
// کل مجموعه پشت یک RWMutex است؛ نوشتن‌ها قفل کامل و خواندن‌ها قفل خواندن می‌گیرند
type PostRepositoryMemory struct {
	mu       sync.RWMutex
	posts    []post.Post // ترتیب طبیعی (ترتیب درج)
	strategy IDStrategy
	lastID   int64 // بزرگ‌ترین شناسه‌ای که تا حالا داده شده؛ برای IDStrategySequence
}

// NewPostRepositoryMemory سازنده PostRepositoryMemory با داده اولیه
func NewPostRepositoryMemory(strategy IDStrategy, seed []post.Post) *PostRepositoryMemory {
	if strategy == "" {
		strategy = IDStrategyMax
	}
	repo := &PostRepositoryMemory{
		posts:    make([]post.Post, 0, len(seed)),
		strategy: strategy,
	}
	for _, p := range seed {
		repo.posts = append(repo.posts, p)
		if p.ID > repo.lastID {
			repo.lastID = p.ID
		}
	}
	return repo
}

func (repo *PostRepositoryMemory) FindAll(ctx context.Context) ([]post.Post, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	// کپی تا فراخواننده نتواند state داخلی را تغییر دهد
	out := make([]post.Post, len(repo.posts))
	copy(out, repo.posts)
	return out, nil
}

func (repo *PostRepositoryMemory) Create(ctx context.Context, title, content string) (*post.Post, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	p := post.Post{
		ID:      repo.nextID(),
		Title:   title,
		Content: content,
	}
	repo.posts = append(repo.posts, p)
	if p.ID > repo.lastID {
		repo.lastID = p.ID
	}
	return &p, nil
}

func (repo *PostRepositoryMemory) Update(ctx context.Context, id int64, patch post.Patch) (*post.Post, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	i := repo.indexOf(id)
	if i < 0 {
		return nil, post.NotFound(id)
	}
	patch.Apply(&repo.posts[i])
	updated := repo.posts[i]
	return &updated, nil
}

func (repo *PostRepositoryMemory) Delete(ctx context.Context, id int64) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	i := repo.indexOf(id)
	if i < 0 {
		return post.NotFound(id)
	}
	repo.posts = append(repo.posts[:i], repo.posts[i+1:]...)
	return nil
}

// Count تعداد پست‌های فعلی
func (repo *PostRepositoryMemory) Count() int {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return len(repo.posts)
}

// nextID فقط با قفل mu گرفته‌شده صدا زده شود
func (repo *PostRepositoryMemory) nextID() int64 {
	if repo.strategy == IDStrategySequence {
		return repo.lastID + 1
	}
	var maxID int64
	for _, p := range repo.posts {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

// indexOf فقط با قفل mu گرفته‌شده صدا زده شود
func (repo *PostRepositoryMemory) indexOf(id int64) int {
	for i := range repo.posts {
		if repo.posts[i].ID == id {
			return i
		}
	}
	return -1
}
