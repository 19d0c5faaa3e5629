package post

import (
	"blogapi/internal/core/post"
	"context"
)

// PostRepository پورت برای ذخیره‌سازی و بازیابی پست‌ها
type PostRepository interface {
	// FindAll همه پست‌ها را به ترتیب درج برمی‌گرداند
	FindAll(ctx context.Context) ([]post.Post, error)
	// Create شناسه را خودش تخصیص می‌دهد و پست ذخیره‌شده را برمی‌گرداند
	Create(ctx context.Context, title, content string) (*post.Post, error)
	Update(ctx context.Context, id int64, patch post.Patch) (*post.Post, error)
	Delete(ctx context.Context, id int64) error
}

// DTOها برای UseCase
type PostDTO struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ListQuery struct {
	Sort      string `form:"sort"`
	Direction string `form:"direction"`
}

type SearchQuery struct {
	Title   string `form:"title"`
	Content string `form:"content"`
}

type DeleteResult struct {
	ID      int64  `json:"-"`
	Message string `json:"message"`
}

func ToDTO(p *post.Post) *PostDTO {
	return &PostDTO{ID: p.ID, Title: p.Title, Content: p.Content}
}
