package operations

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	"inheritance-engine/internal/model"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// report fields by their JSON names
		v.RegisterTagNameFunc(jsonName)
		validate = v
	})
	return validate
}

// decode unmarshals body into v and runs struct validation.
func decode(body []byte, v any) []model.CalculationMessage {
	if err := json.Unmarshal(body, v); err != nil {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidRequestBody,
			Message: "Invalid request body: " + err.Error(),
		}}
	}

	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeValidationError,
			Message: err.Error(),
		}}
	}

	root := reflect.TypeOf(v)
	msgs := make([]model.CalculationMessage, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		code := model.CodeValidationError
		if strings.HasPrefix(field, "family_structure.") {
			code = model.CodeInvalidStructure
		}
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    code,
			Field:   field,
			Message: describe(root, field, fe),
		})
	}
	return msgs
}

// fieldPath turns a validator namespace into a JSON path. The root struct and
// embedded structs keep their Go names, and JSON names are lower case, so any
// capitalised segment is dropped.
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	kept := parts[:0]
	for _, p := range parts {
		if p != "" && unicode.IsUpper(rune(p[0])) {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ".")
}

func describe(root reflect.Type, field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", field, fe.Param())
	case "ltefield":
		return fmt.Sprintf("%s must not exceed %s", field, siblingName(root, fe))
	case "min":
		return fmt.Sprintf("%s must contain at least %s entries", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// siblingName resolves the Go field named by a cross-field tag to its JSON
// name by walking the request type along the failing field's namespace.
func siblingName(root reflect.Type, fe validator.FieldError) string {
	t := elem(root)
	segments := strings.Split(fe.StructNamespace(), ".")
	if len(segments) < 2 || t.Kind() != reflect.Struct {
		return fe.Param()
	}
	for _, seg := range segments[1 : len(segments)-1] {
		if i := strings.IndexByte(seg, '['); i >= 0 {
			seg = seg[:i]
		}
		f, ok := t.FieldByName(seg)
		if !ok {
			return fe.Param()
		}
		if t = elem(f.Type); t.Kind() != reflect.Struct {
			return fe.Param()
		}
	}

	f, ok := t.FieldByName(fe.Param())
	if !ok {
		return fe.Param()
	}
	if name := jsonName(f); name != "" {
		return name
	}
	return f.Name
}

func elem(t reflect.Type) reflect.Type {
	for {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map:
			t = t.Elem()
		default:
			return t
		}
	}
}
