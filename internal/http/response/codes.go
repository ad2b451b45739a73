package response

import "net/http"

const (
	CodeOK                  = http.StatusOK
	CodeBadRequest          = http.StatusBadRequest
	CodeNotFound            = http.StatusNotFound
	CodeConflict            = http.StatusConflict
	CodeUnprocessableEntity = http.StatusUnprocessableEntity
	CodeTooManyRequests     = http.StatusTooManyRequests
	CodeInternal            = http.StatusInternalServerError
	CodeServiceUnavailable  = http.StatusServiceUnavailable
)
