package response

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-playground/validator/v10"

	"book-management/internal/shared/apperror"
	"book-management/internal/shared/i18n"
)

func init() {
	// binding errors report the json name of a field, same as ozzo-validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// fieldErrors flattens binding and ozzo-validation failures into per field details.
// ok is false when err is not a validation failure (malformed JSON, wrong types).
func fieldErrors(c *gin.Context, err error) ([]FieldError, bool) {
	var bindErrs validator.ValidationErrors
	if errors.As(err, &bindErrs) {
		details := make([]FieldError, 0, len(bindErrs))
		for _, fe := range bindErrs {
			code := apperror.CodeFieldInvalid
			if fe.Tag() == "required" {
				code = apperror.CodeFieldRequired
			}
			details = append(details, FieldError{
				Field:   fe.Field(),
				Code:    code,
				Message: i18n.Message(c, code),
			})
		}
		return details, true
	}

	var ruleErrs validation.Errors
	if errors.As(err, &ruleErrs) {
		fields := make([]string, 0, len(ruleErrs))
		for field := range ruleErrs {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		details := make([]FieldError, 0, len(ruleErrs))
		for _, field := range fields {
			details = append(details, ruleDetail(c, field, ruleErrs[field]))
		}
		return details, true
	}

	return nil, false
}

func ruleDetail(c *gin.Context, field string, err error) FieldError {
	var ve validation.Error
	if errors.As(err, &ve) {
		if i18n.Has(ve.Code()) {
			return FieldError{Field: field, Code: ve.Code(), Message: i18n.Message(c, ve.Code())}
		}
		return FieldError{Field: field, Code: apperror.CodeFieldInvalid, Message: ve.Error()}
	}
	return FieldError{Field: field, Code: apperror.CodeFieldInvalid, Message: i18n.Message(c, apperror.CodeFieldInvalid)}
}
