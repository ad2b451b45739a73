package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/superman-store/internal/repository"
)

// 错误类别，处理器按类别映射 HTTP 状态码
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrReferenceNotFound = errors.New("referenced entity not found")
	ErrConflict          = errors.New("conflict")
)

// 具体业务错误
var (
	ErrCustomerNotFound  = fmt.Errorf("%w: customer", ErrReferenceNotFound)
	ErrProductNotFound   = fmt.Errorf("%w: product", ErrReferenceNotFound)
	ErrDeliveryNotFound  = fmt.Errorf("%w: delivery", ErrReferenceNotFound)
	ErrEmailExists       = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrRatingExists      = fmt.Errorf("%w: customer already rated this product", ErrConflict)
	ErrProductInUse      = fmt.Errorf("%w: product is referenced by purchases", ErrConflict)
	ErrCustomerInUse     = fmt.Errorf("%w: customer is referenced by other records", ErrConflict)
	ErrInvalidTransition = fmt.Errorf("%w: delivery status transition not allowed", ErrConflict)
)

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError 字段级校验错误集合
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is 使 errors.Is(err, ErrValidation) 成立
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Add 追加字段错误
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Err 无字段错误时返回 nil
func (e *ValidationError) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// NewFieldError 创建单字段校验错误
func NewFieldError(field, message string) error {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

// translateWriteError 将数据库约束错误归类；未知错误原样返回
func translateWriteError(err error, onDuplicate, onForeignKey error) error {
	switch {
	case err == nil:
		return nil
	case repository.IsDuplicateKey(err) && onDuplicate != nil:
		return fmt.Errorf("%w (%v)", onDuplicate, err)
	case repository.IsForeignKeyViolation(err) && onForeignKey != nil:
		return fmt.Errorf("%w (%v)", onForeignKey, err)
	case repository.IsCheckViolation(err):
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: "value violates a database constraint"}}}
	default:
		return err
	}
}
