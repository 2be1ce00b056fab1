// Package validator API 요청 구조체 검증과 한국어 오류 메시지 변환을 제공합니다.
//
// 구조체 필드의 korean 태그 값이 오류 메시지의 필드명으로 사용됩니다.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

// Get 전역 validator 인스턴스를 반환합니다.
func Get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())

		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("korean"); name != "" {
				return name
			}
			return fld.Name
		})
	})

	return instance
}

// Struct 구조체의 validate 태그를 기준으로 검증합니다.
func Struct(s any) error {
	return Get().Struct(s)
}

// FormatValidationError 검증 오류를 한국어 메시지로 변환합니다. 여러 오류가 있으면 첫 번째만 사용합니다.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err.Error()
	}

	return formatFieldError(validationErrors[0])
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s는 필수입니다", field)
	case "required_without_all":
		// 파라미터는 Go 필드명이므로 메시지에 노출하지 않습니다.
		return fmt.Sprintf("%s를 포함한 관련 항목 중 하나 이상을 입력해야 합니다", field)
	case "min", "gte":
		if isString {
			return fmt.Sprintf("%s는 최소 %s자 이상이어야 합니다", field, fe.Param())
		}
		if fe.Tag() == "gte" {
			return fmt.Sprintf("%s는 %s 이상이어야 합니다", field, fe.Param())
		}
		return fmt.Sprintf("%s는 최소 %s 이상이어야 합니다", field, fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("%s는 최대 %s자까지 입력 가능합니다", field, fe.Param())
		}
		if fe.Tag() == "lte" {
			return fmt.Sprintf("%s는 %s 이하이어야 합니다", field, fe.Param())
		}
		return fmt.Sprintf("%s는 최대 %s까지 입력 가능합니다", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s는 %s보다 커야 합니다", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s는 허용된 값 중 하나여야 합니다 [%s]", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s는 올바른 URL 형식이어야 합니다", field)
	default:
		return fmt.Sprintf("%s 값 검증 실패 (%s)", field, fe.Tag())
	}
}
