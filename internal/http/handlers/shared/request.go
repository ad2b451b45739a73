package shared

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/superman-store/internal/service"

	"github.com/gin-gonic/gin"
)

// ParseID 解析路径中的正整数 ID
func ParseID(c *gin.Context, name string) (uint, error) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, service.NewFieldError(name, "must be a positive integer")
	}
	return uint(id), nil
}

// BindJSON 解码请求体；字段校验交给服务层
func BindJSON(c *gin.Context, target interface{}) error {
	if err := c.ShouldBindJSON(target); err != nil {
		return describeBindError(err)
	}
	return nil
}

func describeBindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return service.NewFieldError(typeErr.Field, "must be of type "+typeErr.Type.String())
	case errors.As(err, &syntaxErr):
		return service.NewFieldError("body", "malformed JSON")
	case errors.Is(err, io.EOF):
		return service.NewFieldError("body", "request body is required")
	default:
		return service.NewFieldError("body", err.Error())
	}
}
