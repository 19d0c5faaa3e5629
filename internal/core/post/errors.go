package post

import (
	"errors"
	"fmt"
	"strings"
)

// انواع خطایی که عملیات پست می‌تواند برگرداند
var (
	ErrValidation      = errors.New("validation error")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
)

// Error خطای دامنه: نوع خطا به همراه پیامی که به کلاینت نشان داده می‌شود
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap تا errors.Is بتواند Error را با نوعش مقایسه کند
func (e *Error) Unwrap() error { return e.Kind }

// MissingFields همه فیلدهای الزامی غایب را با هم گزارش می‌کند
func MissingFields(fields []string) *Error {
	return &Error{Kind: ErrValidation, Message: "Missing fields: " + strings.Join(fields, ", ")}
}

// MissingBody بدنه JSON ارسال نشده یا خالی است
func MissingBody() *Error {
	return &Error{Kind: ErrValidation, Message: "Missing JSON body"}
}

// InvalidArgument پارامتر نامعتبر در لیست (sort یا direction)
func InvalidArgument(msg string) *Error {
	return &Error{Kind: ErrInvalidArgument, Message: msg}
}

// NotFound پستی با این شناسه وجود ندارد
func NotFound(id int64) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("Post with id %d not found", id)}
}
