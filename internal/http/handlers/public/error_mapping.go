package public

import (
	"errors"

	handlershared "github.com/superman-store/internal/http/handlers/shared"
	"github.com/superman-store/internal/http/response"
	"github.com/superman-store/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

var referenceErrorRules = []mappedHandlerError{
	{target: service.ErrCustomerNotFound, code: response.CodeUnprocessableEntity, msg: "Customer not found"},
	{target: service.ErrProductNotFound, code: response.CodeUnprocessableEntity, msg: "Product not found"},
	{target: service.ErrDeliveryNotFound, code: response.CodeUnprocessableEntity, msg: "Delivery not found"},
	{target: service.ErrReferenceNotFound, code: response.CodeUnprocessableEntity, msg: "Referenced entity not found"},
}

var conflictErrorRules = []mappedHandlerError{
	{target: service.ErrEmailExists, code: response.CodeConflict, msg: "Email already registered"},
	{target: service.ErrRatingExists, code: response.CodeConflict, msg: "Customer has already rated this product"},
	{target: service.ErrProductInUse, code: response.CodeConflict, msg: "Product has purchases and cannot be deleted"},
	{target: service.ErrCustomerInUse, code: response.CodeConflict, msg: "Customer is still referenced and cannot be deleted"},
	{target: service.ErrInvalidTransition, code: response.CodeConflict, msg: "Delivery status transition not allowed"},
	{target: service.ErrConflict, code: response.CodeConflict, msg: "Request conflicts with existing data"},
}

var storeErrorRules = concatMappedHandlerErrors(referenceErrorRules, conflictErrorRules)

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

// respondServiceError 按错误类别输出响应；未识别的错误统一 500，不暴露细节
func respondServiceError(c *gin.Context, err error, entity string) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		handlershared.RespondAppError(c, response.WrapError(response.CodeBadRequest, "Validation failed", err).WithDetails(verr.Fields))
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		msg := "Not found"
		if entity != "" {
			msg = entity + " not found"
		}
		handlershared.RespondError(c, response.CodeNotFound, msg, nil)
		return
	}
	for _, rule := range storeErrorRules {
		if errors.Is(err, rule.target) {
			handlershared.RespondError(c, rule.code, rule.msg, err)
			return
		}
	}
	handlershared.RespondError(c, response.CodeInternal, "Internal server error", err)
}
