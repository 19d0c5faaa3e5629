package postapp

import (
	postEntity "blogapi/internal/core/post"
	eventPort "blogapi/internal/ports/event"
	postPort "blogapi/internal/ports/post"
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const (
	sortByTitle   = "title"
	sortByContent = "content"
	directionAsc  = "asc"
	directionDesc = "desc"
)

type PostService struct {
	PostRepository postPort.PostRepository
	EventQueue     eventPort.EventQueue // اختیاری؛ nil یعنی رویدادی منتشر نمی‌شود
	Logger         *zap.Logger
}

func NewPostService(postRepo postPort.PostRepository, eventQueue eventPort.EventQueue, logger *zap.Logger) *PostService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostService{
		PostRepository: postRepo,
		EventQueue:     eventQueue,
		Logger:         logger,
	}
}

// ListPosts همه پست‌ها؛ در صورت تعیین sort، مرتب‌سازی پایدار و بدون حساسیت به حروف
func (s *PostService) ListPosts(ctx context.Context, q postPort.ListQuery) ([]*postPort.PostDTO, error) {
	if q.Sort != "" && q.Sort != sortByTitle && q.Sort != sortByContent {
		return nil, postEntity.InvalidArgument("invalid sort field")
	}
	if q.Direction != "" && q.Direction != directionAsc && q.Direction != directionDesc {
		return nil, postEntity.InvalidArgument("invalid direction")
	}

	posts, err := s.PostRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	if q.Sort != "" {
		key := func(p postEntity.Post) string {
			if q.Sort == sortByContent {
				return strings.ToLower(p.Content)
			}
			return strings.ToLower(p.Title)
		}
		desc := q.Direction == directionDesc
		sort.SliceStable(posts, func(i, j int) bool {
			if desc {
				return key(posts[i]) > key(posts[j])
			}
			return key(posts[i]) < key(posts[j])
		})
	}

	return toDTOs(posts), nil
}

// CreatePost ایجاد پست جدید؛ title و content هر دو الزامی و غیرخالی هستند
func (s *PostService) CreatePost(ctx context.Context, title, content *string) (*postPort.PostDTO, error) {
	var missing []string
	if title == nil || *title == "" {
		missing = append(missing, "title")
	}
	if content == nil || *content == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		return nil, postEntity.MissingFields(missing)
	}

	created, err := s.PostRepository.Create(ctx, *title, *content)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	s.Logger.Info("✅ Created post", zap.Int64("postID", created.ID))

	s.emit(eventPort.NewPostEvent(eventPort.PostCreated, created.ID, created.Title, created.Content))
	return postPort.ToDTO(created), nil
}

// UpdatePost فقط فیلدهای ارسال‌شده جایگزین می‌شوند
// رشته خالی صریح پذیرفته می‌شود (برخلاف CreatePost)
func (s *PostService) UpdatePost(ctx context.Context, id int64, patch postEntity.Patch) (*postPort.PostDTO, error) {
	updated, err := s.PostRepository.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("✅ Updated post", zap.Int64("postID", updated.ID))

	s.emit(eventPort.NewPostEvent(eventPort.PostUpdated, updated.ID, updated.Title, updated.Content))
	return postPort.ToDTO(updated), nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64) (*postPort.DeleteResult, error) {
	if err := s.PostRepository.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.Logger.Info("🗑 Deleted post", zap.Int64("postID", id))

	s.emit(eventPort.NewPostEvent(eventPort.PostDeleted, id, "", ""))
	return &postPort.DeleteResult{
		ID:      id,
		Message: fmt.Sprintf("Post with id %d has been deleted successfully.", id),
	}, nil
}

// SearchPosts جستجوی زیررشته‌ای بدون حساسیت به حروف؛ ترتیب طبیعی حفظ می‌شود
func (s *PostService) SearchPosts(ctx context.Context, q postPort.SearchQuery) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	titleQuery := strings.ToLower(q.Title)
	contentQuery := strings.ToLower(q.Content)

	results := make([]postEntity.Post, 0, len(posts))
	for _, p := range posts {
		if titleQuery != "" && !strings.Contains(strings.ToLower(p.Title), titleQuery) {
			continue
		}
		if contentQuery != "" && !strings.Contains(strings.ToLower(p.Content), contentQuery) {
			continue
		}
		results = append(results, p)
	}
	return toDTOs(results), nil
}

func (s *PostService) emit(ev eventPort.PostEvent) {
	if s.EventQueue == nil {
		return
	}
	if !s.EventQueue.Enqueue(ev) {
		s.Logger.Warn("⚠️ Event queue full, dropping event", zap.String("type", ev.Type), zap.Int64("postID", ev.PostID))
	}
}

func toDTOs(posts []postEntity.Post) []*postPort.PostDTO {
	// همیشه slice غیر nil تا خروجی JSON آرایه خالی باشد نه null
	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for i := range posts {
		dtos = append(dtos, postPort.ToDTO(&posts[i]))
	}
	return dtos
}
