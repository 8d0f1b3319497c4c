package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

var (
	once     sync.Once
	validate *validator.Validate
	trans    ut.Translator
)

// setup builds the shared validator: binding tags, json field names, the
// decimal=<precision>.<scale> rule, and english messages.
func setup() {
	validate = validator.New()
	validate.SetTagName("binding")
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = validate.RegisterValidation("decimal", decimalRule)

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	_ = entrans.RegisterDefaultTranslations(validate, trans)
	_ = validate.RegisterTranslation("decimal", trans,
		func(ut ut.Translator) error {
			return ut.Add("decimal", "{0} must be a decimal with at most {1} digits", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("decimal", fe.Field(), fe.Param())
			return msg
		},
	)
}

// LazyInitGinValidator swaps gin's binding validator for the shared one so
// ShouldBind and the service layer enforce identical rules.
func LazyInitGinValidator(language string) {
	once.Do(func() {
		setup()
		binding.Validator = &structValidator{v: validate}
	})
}

// Struct validates any request shape against its binding tags.
func Struct(obj interface{}) error {
	once.Do(setup)
	if err := validate.Struct(obj); err != nil {
		return fmt.Errorf("%s", Translate(err))
	}
	return nil
}

// Translate flattens a validator error into one field-naming message.
func Translate(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	var combined error
	for _, fe := range verrs {
		combined = multierr.Append(combined, fmt.Errorf("%s", fe.Translate(trans)))
	}
	return combined.Error()
}

// decimalRule validates a string field as an exact decimal bounded by
// precision.scale from the tag param, e.g. binding:"decimal=20.8".
func decimalRule(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	parts := strings.SplitN(fl.Param(), ".", 2)
	if len(parts) != 2 {
		return false
	}
	precision, err1 := strconv.Atoi(parts[0])
	scale, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return false
	}
	return Fits(s, precision, scale)
}

// Fits reports whether s parses as a decimal whose fractional digits do not
// exceed scale and whose integral digits do not exceed precision-scale.
// Over-precision values are rejected outright, never truncated.
func Fits(s string, precision, scale int) bool {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	if exp := int(d.Exponent()); exp < 0 && -exp > scale {
		return false
	}
	intPart := d.Abs().Truncate(0)
	intDigits := len(intPart.String())
	if intPart.IsZero() {
		intDigits = 0
	}
	return intDigits <= precision-scale
}

// structValidator adapts the shared instance to gin's binding interface.
type structValidator struct {
	v *validator.Validate
}

func (s *structValidator) ValidateStruct(obj interface{}) error {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}
	return s.v.Struct(obj)
}

func (s *structValidator) Engine() interface{} {
	return s.v
}
