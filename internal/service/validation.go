package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/superman-store/internal/constants"
	"github.com/superman-store/internal/models"

	"github.com/go-playground/validator/v10"
)

// 与 customers 表 check_email_format 约束保持一致的宽松格式 x@y.z
var emailShapePattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// 错误信息中使用 JSON 字段名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 金额按数值参与 gt/gte 等比较
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if money, ok := field.Interface().(models.Money); ok {
			return money.Decimal.InexactFloat64()
		}
		return nil
	}, models.Money{})

	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShapePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("delivery_type", func(fl validator.FieldLevel) bool {
		return containsString(constants.DeliveryTypes, fl.Field().String())
	})
	_ = v.RegisterValidation("delivery_status", func(fl validator.FieldLevel) bool {
		return containsString(constants.DeliveryStatuses, fl.Field().String())
	})
	return v
}

// validateInput 校验输入结构体，返回字段级 ValidationError
func validateInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewFieldError("body", err.Error())
	}
	result := &ValidationError{}
	for _, fe := range fieldErrs {
		result.Add(fe.Field(), describeFieldError(fe))
	}
	return result
}

func describeFieldError(fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		if isText {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "emailshape":
		return "must be a valid email address"
	case "delivery_type":
		return "must be one of: " + strings.Join(constants.DeliveryTypes, ", ")
	case "delivery_status":
		return "must be one of: " + strings.Join(constants.DeliveryStatuses, ", ")
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
