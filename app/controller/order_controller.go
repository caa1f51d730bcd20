package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"inventario-admin/catalog"
	"inventario-admin/models"
	"inventario-admin/service"
	"inventario-admin/session"
)

// OrderController handles the order entry page
type OrderController struct {
	store    *catalog.Store
	sessions *session.Store
	orders   *service.OrderService
	views    *Views
	log      logrus.FieldLogger
}

// NewOrderController creates a new OrderController
func NewOrderController(store *catalog.Store, sessions *session.Store, orders *service.OrderService, views *Views, log logrus.FieldLogger) *OrderController {
	return &OrderController{store: store, sessions: sessions, orders: orders, views: views, log: log}
}

// Page handles GET /orders. The q parameter filters the product picker by
// name, case-insensitive.
func (c *OrderController) Page(w http.ResponseWriter, r *http.Request) {
	sess := c.sessions.Attach(w, r)

	if err := c.store.Refresh(r.Context()); err != nil {
		c.log.WithError(err).Error("❌ No se pudieron cargar los productos")
		sess.Notify("error", "Error", "No se pudieron cargar los productos")
	}

	c.render(w, r, sess)
}

// AddItem handles POST /orders/items. The entered customer name travels
// with every form post so it survives page reloads.
func (c *OrderController) AddItem(w http.ResponseWriter, r *http.Request) {
	sess := c.sessions.Attach(w, r)
	sess.SetCustomerName(r.FormValue("customerName"))
	sess.SetQuantityText(r.FormValue("quantity"))

	var selected *models.Product
	if idText := r.FormValue("productId"); idText != "" {
		if id, err := strconv.Atoi(idText); err == nil {
			if p, err := c.store.Get(id); err == nil {
				selected = &p
			}
		}
	}
	sess.Select(selected)

	switch err := sess.AddItem(selected, r.FormValue("quantity")); {
	case errors.Is(err, session.ErrNoProductSelected):
		sess.Notify("error", "Error", "Por favor, seleccione un producto.")
	case errors.Is(err, session.ErrInvalidQuantity):
		sess.Notify("error", "Error", "Por favor, ingrese una cantidad válida mayor a 0.")
	case errors.Is(err, session.ErrInsufficientStock):
		sess.Notify("error", "Error", "No hay suficiente stock disponible.")
	}

	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

// RemoveItem handles POST /orders/items/{id}/remove
func (c *OrderController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess := c.sessions.Attach(w, r)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	sess.RemoveItem(id)

	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

// Submit handles POST /orders/submit. Client-side checks run before any
// network call; the cart survives every failure path.
func (c *OrderController) Submit(w http.ResponseWriter, r *http.Request) {
	sess := c.sessions.Attach(w, r)
	sess.SetCustomerName(r.FormValue("customerName"))

	outcome, err := c.orders.Submit(r.Context(), sess)
	switch {
	case errors.Is(err, service.ErrMissingCustomerName):
		sess.Notify("error", "Error", "Por favor, ingrese el nombre del cliente.")
	case errors.Is(err, service.ErrEmptyOrder):
		sess.Notify("error", "Error", "El pedido está vacío.")
	case err != nil:
		sess.Notify("error", "Error", "No se pudo realizar el pedido")
	case outcome.Status == models.OrderCreated:
		sess.Notify("success", "Éxito",
			fmt.Sprintf("Orden creada exitosamente. Orden ID: %d. Total: $%s", outcome.OrderID, outcome.Total.StringFixed(2)))
	default:
		// semantic rejection: show the backend's wording, keep the cart
		sess.Notify("error", "Error", outcome.Message)
	}

	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

func (c *OrderController) render(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	term := r.URL.Query().Get("q")

	c.views.Render(w, "orders", map[string]interface{}{
		"Products":     c.store.Search(term),
		"SearchTerm":   term,
		"Lines":        sess.Lines(),
		"Total":        sess.Total(),
		"CustomerName": sess.CustomerName(),
		"Selected":     sess.Selected(),
		"QuantityText": sess.QuantityText(),
		"Notice":       sess.PopNotice(),
	})
}
