package app

import (
	"strings"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	val "github.com/go-playground/validator/v10"
)

// ValidError a single field validation failure, serialized into the
// {"errors": [...]} response body.
type ValidError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

// BindAndValid binds the request into obj and translates validator failures
// into per-field messages.
func BindAndValid(c *gin.Context, obj interface{}) (bool, ValidErrors) {
	var errs ValidErrors
	err := c.ShouldBind(obj)
	if err != nil {
		trans, _ := c.Value("trans").(ut.Translator)
		verrs, ok := err.(val.ValidationErrors)
		if !ok {
			errs = append(errs, &ValidError{
				Field:   "",
				Message: err.Error(),
			})
			return false, errs
		}

		for key, value := range verrs.Translate(trans) {
			field := key
			if i := strings.LastIndex(key, "."); i >= 0 {
				field = key[i+1:]
			}
			errs = append(errs, &ValidError{
				Field:   field,
				Message: value,
			})
		}
		return false, errs
	}
	return true, nil
}
