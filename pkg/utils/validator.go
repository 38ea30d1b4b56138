package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report json field names in validation errors so callers can name
	// the offending field.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("user_role", validateUserRole); err != nil {
		return
	}
	if err := validate.RegisterValidation("phone", validatePhone); err != nil {
		return
	}
	if err := validate.RegisterValidation("payment_method", validatePaymentMethod); err != nil {
		return
	}
	if err := validate.RegisterValidation("ticket_priority", validateTicketPriority); err != nil {
		return
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// FirstInvalidField returns the json name and failed rule of the first
// invalid field in a validator error, if any.
func FirstInvalidField(err error) (field, rule string, ok bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Tag(), true
	}
	return "", "", false
}

func validateUserRole(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	validRoles := []string{"customer", "courier", "admin"}

	for _, validRole := range validRoles {
		if role == validRole {
			return true
		}
	}
	return false
}

func validatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	re := regexp.MustCompile(`^\+?[0-9\-\s()]{7,15}$`)
	return re.MatchString(phone)
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	method := fl.Field().String()
	validMethods := []string{"cod", "card", "upi", "wallet"}

	for _, validMethod := range validMethods {
		if method == validMethod {
			return true
		}
	}
	return false
}

func validateTicketPriority(fl validator.FieldLevel) bool {
	priority := fl.Field().String()
	validPriorities := []string{"low", "medium", "high", "urgent"}

	for _, validPriority := range validPriorities {
		if priority == validPriority {
			return true
		}
	}
	return false
}
