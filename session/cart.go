package session

import (
	"errors"

	"github.com/shopspring/decimal"

	"inventario-admin/models"
	"inventario-admin/validate"
)

// Cart errors, surfaced to the user as validation notices
var (
	ErrNoProductSelected = errors.New("no product selected")
	ErrInvalidQuantity   = errors.New("quantity is not a positive integer")
	ErrInsufficientStock = errors.New("quantity exceeds available stock")
)

// AddItem adds the selected product to the cart. The quantity arrives as
// the raw form string and must parse as a positive integer no greater
// than the product's stock. If a line for the product already exists its
// quantity is incremented instead of adding a second row; the merged
// quantity is not re-checked against stock (the backend re-validates at
// submission). On success the transient selection and quantity text are
// cleared; on failure they are kept so the form can re-render them.
func (s *Session) AddItem(product *models.Product, quantityText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product == nil {
		return ErrNoProductSelected
	}

	qty, ok := validate.Quantity(quantityText)
	if !ok {
		return ErrInvalidQuantity
	}
	if qty > product.Stock {
		return ErrInsufficientStock
	}

	for i := range s.lines {
		if s.lines[i].Product.ProductID == product.ProductID {
			s.lines[i].Quantity += qty
			s.clearSelectionLocked()
			return nil
		}
	}

	// freeze the product by value: later catalog refreshes must not
	// change the price recorded in the cart
	s.lines = append(s.lines, models.OrderLine{Product: *product, Quantity: qty})
	s.clearSelectionLocked()
	return nil
}

// RemoveItem removes the line for productID. Removing an absent id is a
// no-op, not an error.
func (s *Session) RemoveItem(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].Product.ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the cart lines in insertion order
func (s *Session) Lines() []models.OrderLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.OrderLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total returns the exact sum of price*quantity over all lines
func (s *Session) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Clear empties the cart and resets the customer name
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.customerName = ""
	s.clearSelectionLocked()
}

func (s *Session) clearSelectionLocked() {
	s.selected = nil
	s.quantityText = ""
}
