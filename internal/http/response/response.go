package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody 统一错误响应结构，HTTP 状态码与 status_code 一致
type ErrorBody struct {
	StatusCode int         `json:"status_code"`          // 状态码
	Msg        string      `json:"msg"`                  // 提示消息
	Errors     interface{} `json:"errors,omitempty"`     // 字段级错误
	RequestID  string      `json:"request_id,omitempty"` // 请求 ID
}

// MessageBody 只含提示消息的成功响应
type MessageBody struct {
	Message string `json:"message"`
}

// Success 成功响应，直接输出实体或数组
func Success(c *gin.Context, data interface{}) {
	c.JSON(CodeOK, data)
}

// Message 成功响应（仅消息）
func Message(c *gin.Context, msg string) {
	c.JSON(CodeOK, MessageBody{Message: msg})
}

// Error 错误响应
func Error(c *gin.Context, statusCode int, msg string) {
	ErrorWithDetails(c, statusCode, msg, nil)
}

// ErrorWithDetails 错误响应（带字段级错误）
func ErrorWithDetails(c *gin.Context, statusCode int, msg string, details interface{}) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{
		StatusCode: statusCode,
		Msg:        msg,
		Errors:     details,
		RequestID:  RequestID(c),
	})
}

// NotFound 404响应
func NotFound(c *gin.Context, msg string) {
	Error(c, CodeNotFound, msg)
}

// BadRequest 400响应
func BadRequest(c *gin.Context, msg string) {
	Error(c, CodeBadRequest, msg)
}

// RequestID 读取中间件写入的请求 ID
func RequestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if value, ok := c.Get("request_id"); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
