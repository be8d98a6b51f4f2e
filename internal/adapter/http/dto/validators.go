package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	testIDRe    = regexp.MustCompile(`^[A-Za-z0-9_\-.:]+$`)
	productIDRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_.]*$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("test_id", validateTestID)
		_ = v.RegisterValidation("product_id", validateProductID)
	}
}

func validateTestID(fl validator.FieldLevel) bool {
	return testIDRe.MatchString(fl.Field().String())
}

// Play product ids start with a lowercase letter or digit and may contain
// lowercase letters, digits, underscores and periods.
func validateProductID(fl validator.FieldLevel) bool {
	return productIDRe.MatchString(fl.Field().String())
}

// SanitizeStruct trims every exported string field of a struct pointer.
// Fields tagged sanitize:"html" are also HTML-escaped; sanitize:"-" fields
// are left untouched.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() || f.Kind() != reflect.String {
			continue
		}
		switch rt.Field(i).Tag.Get("sanitize") {
		case "-":
		case "html":
			f.SetString(html.EscapeString(strings.TrimSpace(f.String())))
		default:
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
}
