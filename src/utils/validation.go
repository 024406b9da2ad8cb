package utils

import (
	"cafe/src/config"
	"cafe/src/types"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators adds the custom tags and JSON field naming used by the request bodies.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	if err := v.RegisterValidation("datetime_any", func(fl validator.FieldLevel) bool {
		_, err := types.ParseDateTime(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(config.SHIFT_TIME_FORMAT, fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("aftertime", func(fl validator.FieldLevel) bool {
		other := fl.Parent().FieldByName(fl.Param())
		if other.Kind() == reflect.Ptr {
			if other.IsNil() {
				return true
			}
			other = other.Elem()
		}
		start, err := time.Parse(config.SHIFT_TIME_FORMAT, other.String())
		if err != nil {
			// reported by the other field
			return true
		}
		end, err := time.Parse(config.SHIFT_TIME_FORMAT, fl.Field().String())
		if err != nil {
			return true
		}
		return end.After(start)
	})
}

var indexPattern = regexp.MustCompile(`\[(\d+)\]`)

// fieldKey turns "CreateOrderRequestBody.items[0].id" into "items.0.id".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return indexPattern.ReplaceAllString(ns, ".$1")
}

func fieldMessage(fe validator.FieldError) string {
	name := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "required_if":
		parts := strings.Fields(fe.Param())
		if len(parts) == 2 {
			return fmt.Sprintf("The %s field is required when %s is %s.", name, strings.ToLower(strings.ReplaceAll(parts[0], "OrderType", "order type")), parts[1])
		}
		return fmt.Sprintf("The %s field is required.", name)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", name)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", name)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s must be at least %s characters.", name, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("The %s must have at least %s items.", name, fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s.", name, fe.Param())
	case "gte":
		return fmt.Sprintf("The %s must be greater than or equal to %s.", name, fe.Param())
	case "len":
		if n, err := strconv.Atoi(fe.Param()); err == nil && fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s must be %d digits.", name, n)
		}
		return fmt.Sprintf("The %s must be %s long.", name, fe.Param())
	case "numeric":
		return fmt.Sprintf("The %s must be a number.", name)
	case "datetime", "datetime_any":
		return fmt.Sprintf("The %s is not a valid date.", name)
	case "hhmm":
		return fmt.Sprintf("The %s must match the format H:i.", name)
	case "aftertime":
		return fmt.Sprintf("The %s must be a time after %s.", name, strings.ToLower(strings.ReplaceAll(fe.Param(), "Time", " time")))
	}
	return fmt.Sprintf("The %s field is invalid.", name)
}

// TranslateBindError converts gin binding failures into field keyed validation errors.
func TranslateBindError(err error) types.ValidationErrors {
	out := types.ValidationErrors{}
	var ves validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var verr types.ValidationErrors
	switch {
	case errors.As(err, &ves):
		for _, fe := range ves {
			out.Add(fieldKey(fe), fieldMessage(fe))
		}
	case errors.As(err, &verr):
		return verr
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		out.Add(field, fmt.Sprintf("The %s field has an invalid type.", strings.ReplaceAll(field, "_", " ")))
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		out.Add("body", "The request body must be valid JSON.")
	default:
		out.Add("body", err.Error())
	}
	return out
}
