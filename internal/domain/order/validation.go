// internal/domain/order/validation.go
package order

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CheckoutForm is the shipping and payment form submitted at checkout
type CheckoutForm struct {
	FirstName     string        `json:"firstName" validate:"notblank"`
	LastName      string        `json:"lastName" validate:"notblank"`
	Email         string        `json:"email" validate:"notblank,basicemail"`
	Phone         string        `json:"phone" validate:"notblank,phone10"`
	Address       string        `json:"address" validate:"notblank"`
	City          string        `json:"city" validate:"notblank"`
	State         string        `json:"state" validate:"notblank"`
	ZipCode       string        `json:"zipCode" validate:"notblank"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"oneof=cod card upi netbanking online"`

	CardNumber string `json:"cardNumber,omitempty"`
	CardName   string `json:"cardName,omitempty"`
	Expiry     string `json:"expiry,omitempty"`
	CVV        string `json:"cvv,omitempty"`
	UPIID      string `json:"upiId,omitempty"`
	Bank       string `json:"bank,omitempty"`
}

type cardDetails struct {
	CardNumber string `json:"cardNumber" validate:"notblank,card16"`
	CardName   string `json:"cardName" validate:"notblank"`
	Expiry     string `json:"expiry" validate:"notblank,expiry"`
	CVV        string `json:"cvv" validate:"notblank,cvv"`
}

type upiDetails struct {
	UPIID string `json:"upiId" validate:"notblank,upiid"`
}

type netBankingDetails struct {
	Bank string `json:"bank" validate:"notblank"`
}

// ValidationError carries one message per offending field. Cause, when
// set, is the underlying error and is reachable through errors.Is.
type ValidationError struct {
	Fields map[string]string `json:"errors"`
	Cause  error             `json:"-"`
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

var (
	emailPattern  = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
	upiPattern    = regexp.MustCompile(`^[\w.\-]+@[A-Za-z]+$`)
	nonDigits     = regexp.MustCompile(`\D`)
)

var fieldLabels = map[string]string{
	"firstName":     "First name",
	"lastName":      "Last name",
	"email":         "Email",
	"phone":         "Phone number",
	"address":       "Address",
	"city":          "City",
	"state":         "State",
	"zipCode":       "Zip code",
	"paymentMethod": "Payment method",
	"cardNumber":    "Card number",
	"cardName":      "Cardholder name",
	"expiry":        "Expiry date",
	"cvv":           "CVV",
	"upiId":         "UPI ID",
	"bank":          "Bank",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "basicemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	mustRegister(v, "phone10", func(fl validator.FieldLevel) bool {
		return len(DigitsOnly(fl.Field().String())) == 10
	})
	mustRegister(v, "card16", func(fl validator.FieldLevel) bool {
		raw := strings.NewReplacer(" ", "", "-", "").Replace(fl.Field().String())
		return len(raw) == 16 && DigitsOnly(raw) == raw
	})
	mustRegister(v, "expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	mustRegister(v, "cvv", func(fl validator.FieldLevel) bool {
		return cvvPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	mustRegister(v, "upiid", func(fl validator.FieldLevel) bool {
		return upiPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validator: %v", tag, err))
	}
}

// DigitsOnly strips every non-digit character
func DigitsOnly(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// Normalize fills defaults the storefront form applies before submit
func (f *CheckoutForm) Normalize() {
	f.PaymentMethod = PaymentMethod(strings.ToLower(strings.TrimSpace(string(f.PaymentMethod))))
	if f.PaymentMethod == "" {
		f.PaymentMethod = PaymentMethodCard
	}
}

// ValidateCheckout checks the form and returns a *ValidationError
// listing every offending field, or nil.
func ValidateCheckout(form CheckoutForm) error {
	form.Normalize()

	fields := make(map[string]string)
	collect(fields, validate.Struct(form))

	switch form.PaymentMethod {
	case PaymentMethodCard:
		collect(fields, validate.Struct(cardDetails{
			CardNumber: form.CardNumber,
			CardName:   form.CardName,
			Expiry:     form.Expiry,
			CVV:        form.CVV,
		}))
	case PaymentMethodUPI:
		collect(fields, validate.Struct(upiDetails{UPIID: form.UPIID}))
	case PaymentMethodNetBanking:
		collect(fields, validate.Struct(netBankingDetails{Bank: form.Bank}))
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func collect(fields map[string]string, err error) {
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["form"] = err.Error()
		return
	}

	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = messageFor(fe)
	}
}

func messageFor(fe validator.FieldError) string {
	label := fieldLabels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "notblank":
		return label + " is required"
	case "basicemail":
		return "Email is invalid"
	case "phone10":
		return "Phone number must be 10 digits"
	case "card16":
		return "Card number must be 16 digits"
	case "expiry":
		return "Expiry date must be in MM/YY format"
	case "cvv":
		return "CVV must be 3 or 4 digits"
	case "upiid":
		return "UPI ID must look like name@provider"
	case "oneof":
		return label + " must be one of: " + fe.Param()
	default:
		return label + " is invalid"
	}
}
