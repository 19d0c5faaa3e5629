package post

// Post یک پست بلاگ که فقط در حافظه نگهداری می‌شود
type Post struct {
	ID      int64
	Title   string
	Content string
}

// Patch فیلدهای اختیاری برای ویرایش پست
// nil یعنی مقدار ارسال نشده و فیلد دست نخورده باقی می‌ماند
type Patch struct {
	Title   *string
	Content *string
}

// Apply مقادیر ارسال‌شده را روی پست اعمال می‌کند. ID هرگز تغییر نمی‌کند
func (p Patch) Apply(target *Post) {
	if p.Title != nil {
		target.Title = *p.Title
	}
	if p.Content != nil {
		target.Content = *p.Content
	}
}

// Seed دو پست اولیه که با هر بار اجرای سرویس بارگذاری می‌شوند
func Seed() []Post {
	return []Post{
		{ID: 1, Title: "First post", Content: "This is the first post."},
		{ID: 2, Title: "Second post", Content: "This is the second post."},
	}
}
