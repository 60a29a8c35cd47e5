package http

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"clubhouse/internal/domain/entities"
)

var registerOnce sync.Once

// registerValidators adds the phone10 tag to gin's validator and reports JSON field names in errors.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
			return entities.IsPhone(strings.TrimSpace(fl.Field().String()))
		})
	})
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}
