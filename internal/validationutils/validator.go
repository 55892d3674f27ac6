package validationutils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TagNameFunction reports fields by their yaml name, falling back to json, so validation
// errors point at the key a user wrote in the config file.
var TagNameFunction = func(fld reflect.StructField) string {
	for _, tag := range []string{"yaml", "json"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return ""
}

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(TagNameFunction)
	return validate
}
