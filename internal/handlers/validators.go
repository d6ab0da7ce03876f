package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"stylecraft-backend/internal/checkout"
)

var (
	registerOnce sync.Once
	ist          = time.FixedZone("IST", 5*60*60+30*60)
)

// RegisterValidators adds the custom binding tags used by the request
// models:
//
//	digits=N   exactly N ASCII digits
//	notpast    a YYYY-MM-DD date that is today or later (IST)
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
			n, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return checkout.IsDigits(fl.Field().String(), n)
		})
		_ = v.RegisterValidation("notpast", func(fl validator.FieldLevel) bool {
			return isNotPast(fl.Field().String(), time.Now())
		})
	})
}

func isNotPast(date string, now time.Time) bool {
	d, err := time.ParseInLocation("2006-01-02", date, ist)
	if err != nil {
		return false
	}
	y, m, day := now.In(ist).Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, ist)
	return !d.Before(today)
}

// validationMessage turns a binding error into a message for the client.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "digits":
		if field == "phone" {
			return "Please enter a valid 10-digit mobile number"
		}
		return fmt.Sprintf("%s must be exactly %s digits", field, fe.Param())
	case "notpast":
		return field + " must be a date (YYYY-MM-DD) that is today or later"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "uuid":
		return field + " must be a valid UUID"
	default:
		return field + " is invalid"
	}
}
