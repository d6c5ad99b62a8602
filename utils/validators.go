package utils

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator instance. Field names in
// validation errors follow the struct's json tags so the error
// mapping matches what the client actually sent.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// MaxContentCheckLength is a local advisory threshold, not an enforced
// create rule. Nothing in the request flow rejects longer content.
const MaxContentCheckLength = 5000

// ContentWithinLimit reports whether content fits the advisory
// threshold.
func ContentWithinLimit(content string) bool {
	return len(content) <= MaxContentCheckLength
}
