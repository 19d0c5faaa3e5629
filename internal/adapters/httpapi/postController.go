package httpapi

import (
	"blogapi/internal/adapters/httpapi/middleware"
	postEntity "blogapi/internal/core/post"
	postPort "blogapi/internal/ports/post"
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

type PostController struct {
	pc     PostUseCase
	logger *zap.Logger
}

func NewPostController(pc PostUseCase, logger *zap.Logger) *PostController {
	return &PostController{pc: pc, logger: logger}
}

// postBody بدنه درخواست create/update؛ nil یعنی فیلد ارسال نشده یا null است
type postBody struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (ctl *PostController) ListPosts(c *gin.Context) {
	var q postPort.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	posts, err := ctl.pc.ListPosts(c.Request.Context(), q)
	if err != nil {
		ctl.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req postBody
	if !ctl.bindBody(c, &req) {
		return
	}
	res, err := ctl.pc.CreatePost(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		ctl.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) UpdatePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	var req postBody
	if !ctl.bindBody(c, &req) {
		return
	}
	res, err := ctl.pc.UpdatePost(c.Request.Context(), id, postEntity.Patch{Title: req.Title, Content: req.Content})
	if err != nil {
		ctl.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	res, err := ctl.pc.DeletePost(c.Request.Context(), id)
	if err != nil {
		ctl.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) SearchPosts(c *gin.Context) {
	var q postPort.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	posts, err := ctl.pc.SearchPosts(c.Request.Context(), q)
	if err != nil {
		ctl.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// bindBody بدنه خالی، غیر object یا object خالی => Missing JSON body
func (ctl *PostController) bindBody(c *gin.Context, req *postBody) bool {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": postEntity.MissingBody().Message})
		return false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": postEntity.MissingBody().Message})
		return false
	}
	if !json.Valid(raw) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return false
	}

	var fields map[string]json.RawMessage
	if err := binding.JSON.BindBody(raw, &fields); err != nil || len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": postEntity.MissingBody().Message})
		return false
	}
	if err := binding.JSON.BindBody(raw, req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return false
	}
	return true
}

// postID شناسه غیرعددی یا منفی مثل مسیر نامعتبر با 404 پاسخ داده می‌شود
func postID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post with id " + raw + " not found"})
		return 0, false
	}
	return id, true
}

// writeError نگاشت نوع خطای دامنه به status code
func (ctl *PostController) writeError(c *gin.Context, err error) {
	var domainErr *postEntity.Error
	if errors.As(err, &domainErr) {
		switch {
		case errors.Is(domainErr, postEntity.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": domainErr.Message})
			return
		case errors.Is(domainErr, postEntity.ErrValidation), errors.Is(domainErr, postEntity.ErrInvalidArgument):
			c.JSON(http.StatusBadRequest, gin.H{"error": domainErr.Message})
			return
		}
	}
	ctl.logger.Error("❌ Unexpected error", zap.Error(err), zap.String("requestID", middleware.GetRequestID(c)))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
