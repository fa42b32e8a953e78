package flow

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"lokma/internal/models"
)

// phonePattern accepts a loose international number: optional +, country
// code and subscriber number with optional separators, 10 to 18 digits
// total once separators are stripped.
var (
	phoneSeparators = regexp.MustCompile(`[\s\-().]`)
	phoneDigits     = regexp.MustCompile(`^\+?[0-9]{10,18}$`)
	tableDigits     = regexp.MustCompile(`^[0-9]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("intlphone", func(fl validator.FieldLevel) bool {
		cleaned := phoneSeparators.ReplaceAllString(fl.Field().String(), "")
		return phoneDigits.MatchString(cleaned)
	})
	v.RegisterValidation("tablenumber", func(fl validator.FieldLevel) bool {
		return tableDigits.MatchString(fl.Field().String())
	})
	return v
}

type deliveryFields struct {
	CustomerName string `validate:"required,min=2"`
	Address      string `validate:"required"`
	Phone        string `validate:"required,intlphone"`
}

type dineInFields struct {
	CustomerName string `validate:"required,min=2"`
	TableNumber  string `validate:"omitempty,tablenumber"`
}

// fieldMessages maps struct field plus failed tag to the guest-facing text.
var fieldMessages = map[string]string{
	"CustomerName/required": "name is required",
	"CustomerName/min":      "name must be at least 2 characters",
	"Address/required":      "delivery address is required",
	"Phone/required":        "phone number is required",
	"Phone/intlphone":       "phone number is not valid",
	"TableNumber/tablenumber": "table number must contain only digits",
}

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

// ValidationError aborts a submission before any network call is made.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate runs the type-specific required-field checks. Chatbot orders skip
// validation entirely; they are handed to the assistant instead of the
// submission endpoint. An order with no type chosen is rejected outright. A
// nil return means the order may be submitted.
func Validate(order models.Order) *ValidationError {
	var err error
	switch order.Type {
	case models.OrderTypeDelivery:
		err = validate.Struct(deliveryFields{
			CustomerName: strings.TrimSpace(order.CustomerName),
			Address:      strings.TrimSpace(order.Address),
			Phone:        strings.TrimSpace(order.Phone),
		})
	case models.OrderTypeDineIn:
		err = validate.Struct(dineInFields{
			CustomerName: strings.TrimSpace(order.CustomerName),
			TableNumber:  strings.TrimSpace(order.TableNumber),
		})
	case models.OrderTypeChatbot:
		return nil
	default:
		return &ValidationError{Fields: FieldErrors{"Type": "order type is required"}}
	}
	if err == nil {
		return nil
	}

	fields := FieldErrors{}
	for _, fe := range err.(validator.ValidationErrors) {
		msg, ok := fieldMessages[fe.Field()+"/"+fe.Tag()]
		if !ok {
			msg = "invalid value"
		}
		fields[fe.Field()] = msg
	}
	return &ValidationError{Fields: fields}
}
