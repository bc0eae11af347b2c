package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"tradebot365-admin/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var accountIdentifierPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.:-]{0,63}$`)

// Validator wraps the go-playground validator with the account hierarchy rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("account_id", validateAccountID)
	_ = v.RegisterValidation("connection_status", validateConnectionStatus)
	_ = v.RegisterValidation("status_filter", validateStatusFilter)
	_ = v.RegisterValidation("live_demo_filter", validateLiveDemoFilter)
	_ = v.RegisterValidation("non_negative", validateNonNegative)

	// decimals are validated as their float value
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// validateAccountID accepts the identifiers issued by the account feed:
// 1 to 64 characters, letters, digits and _ . : -
func validateAccountID(fl validator.FieldLevel) bool {
	return accountIdentifierPattern.MatchString(fl.Field().String())
}

func validateConnectionStatus(fl validator.FieldLevel) bool {
	return models.IsValidConnectionStatus(fl.Field().String())
}

// validateStatusFilter accepts the status filter values in any case; empty means all
func validateStatusFilter(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	return value == "" || models.IsValidStatusFilter(models.StatusFilter(value))
}

// validateLiveDemoFilter accepts the live/demo filter values in any case; empty means all
func validateLiveDemoFilter(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	return value == "" || models.IsValidLiveDemoFilter(models.LiveDemoFilter(value))
}

func validateNonNegative(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() >= 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() >= 0
	default:
		return false
	}
}
