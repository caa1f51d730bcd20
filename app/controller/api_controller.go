package controller

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"inventario-admin/catalog"
	"inventario-admin/models"
	"inventario-admin/session"
)

// APIController exposes the presentation boundary as JSON: the product
// snapshot, and the cart lines with their computed totals. A UI consuming
// these endpoints never re-implements validation or totals.
type APIController struct {
	store    *catalog.Store
	sessions *session.Store
	log      logrus.FieldLogger
}

// NewAPIController creates a new APIController
func NewAPIController(store *catalog.Store, sessions *session.Store, log logrus.FieldLogger) *APIController {
	return &APIController{store: store, sessions: sessions, log: log}
}

// cartLineView is one cart line with its derived subtotal
type cartLineView struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Subtotal string         `json:"subtotal"`
}

// cartView is the JSON shape of the session cart
type cartView struct {
	CustomerName string         `json:"customerName"`
	Lines        []cartLineView `json:"lines"`
	Total        string         `json:"total"`
}

// Products handles GET /api/products
func (c *APIController) Products(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, c.store.Products())
}

// Cart handles GET /api/cart
func (c *APIController) Cart(w http.ResponseWriter, r *http.Request) {
	sess := c.sessions.Attach(w, r)

	lines := sess.Lines()
	view := cartView{
		CustomerName: sess.CustomerName(),
		Lines:        make([]cartLineView, len(lines)),
		Total:        sess.Total().StringFixed(2),
	}
	for i, l := range lines {
		view.Lines[i] = cartLineView{
			Product:  l.Product,
			Quantity: l.Quantity,
			Subtotal: l.Subtotal().StringFixed(2),
		}
	}

	c.writeJSON(w, view)
}

func (c *APIController) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.log.WithError(err).Error("❌ Error encoding response")
	}
}
