// Package validate holds the pure form validators shared by the product
// create and edit flows. Every field is checked independently so one
// submission attempt can report all violations at once.
package validate

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Field error reasons
const (
	ReasonRequired     = "required"
	ReasonInvalidPrice = "invalid_price"
	ReasonInvalidStock = "invalid_stock"
)

// FieldError reports one violated constraint on one form field
type FieldError struct {
	Field   string
	Reason  string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors collects every field error from a single validation pass
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// ByField returns the message for the given field, or "" if the field passed
func (e Errors) ByField(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// ProductForm holds the raw form field strings of a product dialog
type ProductForm struct {
	Name        string
	Description string
	Price       string
	Stock       string
}

var one = decimal.NewFromInt(1)

// Product validates a product form. It returns nil when every field is
// acceptable; otherwise it returns an Errors value with one entry per
// violated field (no short-circuit).
func Product(form ProductForm) Errors {
	var errs Errors

	if strings.TrimSpace(form.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Reason: ReasonRequired, Message: "El nombre es requerido"})
	}
	if strings.TrimSpace(form.Description) == "" {
		errs = append(errs, FieldError{Field: "description", Reason: ReasonRequired, Message: "La descripción es requerida"})
	}
	if !priceOK(form.Price) {
		errs = append(errs, FieldError{Field: "price", Reason: ReasonInvalidPrice, Message: "El precio debe ser un número mayor o igual a 1"})
	}
	if !stockOK(form.Stock) {
		errs = append(errs, FieldError{Field: "stock", Reason: ReasonInvalidStock, Message: "El stock debe ser un número entero mayor o igual a 1"})
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// priceOK reports whether s parses as a number >= 1
func priceOK(s string) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return d.GreaterThanOrEqual(one)
}

// stockOK reports whether s parses as an integer >= 1
func stockOK(s string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return n >= 1
}

// Quantity parses a cart quantity field. It returns the parsed value and
// true only for a strictly positive integer.
func Quantity(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
