// Package validator wires gin's binding validator to the universal
// translator and registers custom validation rules.
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	validatorV10 "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

// Setup registers tag name mapping, the timestamp rule and translations
// on gin's validator engine. Safe to call more than once.
func Setup() (*ut.UniversalTranslator, error) {
	enLocale := en.New()
	zhLocale := zh.New()
	uni := ut.New(enLocale, enLocale, zhLocale)

	v, ok := binding.Validator.Engine().(*validatorV10.Validate)
	if !ok {
		return nil, fmt.Errorf("unexpected gin validator engine")
	}

	// 错误信息中的字段名取 json tag
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			name = fld.Tag.Get("form")
		}
		name = strings.SplitN(name, ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("timestamp", validTimestamp); err != nil {
		return nil, err
	}

	enTrans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(v, enTrans); err != nil {
		return nil, err
	}
	zhTrans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(v, zhTrans); err != nil {
		return nil, err
	}

	if err := v.RegisterTranslation("timestamp", enTrans, func(ut ut.Translator) error {
		return ut.Add("timestamp", "{0} must be a valid RFC3339 timestamp", true)
	}, func(ut ut.Translator, fe validatorV10.FieldError) string {
		t, _ := ut.T("timestamp", fe.Field())
		return t
	}); err != nil {
		return nil, err
	}

	return uni, nil
}

// validTimestamp accepts RFC3339 strings only.
func validTimestamp(fl validatorV10.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := time.Parse(time.RFC3339, value)
	return err == nil
}
