package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"inventario-admin/app/controller"
)

// Controllers groups the controllers the router wires up
type Controllers struct {
	Product *controller.ProductController
	Order   *controller.OrderController
	API     *controller.APIController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// New builds the route table for both pages and the JSON boundary
func New(c *Controllers, log logrus.FieldLogger) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/ping", pingHandler).Methods(http.MethodGet)

	// product administration page
	r.HandleFunc("/", c.Product.List).Methods(http.MethodGet)
	r.HandleFunc("/products", c.Product.Create).Methods(http.MethodPost)
	r.HandleFunc("/products/{id}/edit", c.Product.EditForm).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", c.Product.Update).Methods(http.MethodPost)
	r.HandleFunc("/products/{id}/delete", c.Product.ConfirmDelete).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}/delete", c.Product.Delete).Methods(http.MethodPost)

	// order entry page
	r.HandleFunc("/orders", c.Order.Page).Methods(http.MethodGet)
	r.HandleFunc("/orders/items", c.Order.AddItem).Methods(http.MethodPost)
	r.HandleFunc("/orders/items/{id}/remove", c.Order.RemoveItem).Methods(http.MethodPost)
	r.HandleFunc("/orders/submit", c.Order.Submit).Methods(http.MethodPost)

	// presentation boundary
	r.HandleFunc("/api/products", c.API.Products).Methods(http.MethodGet)
	r.HandleFunc("/api/cart", c.API.Cart).Methods(http.MethodGet)

	return logRequests(r, log)
}

// logRequests logs one line per handled request
func logRequests(next http.Handler, log logrus.FieldLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Debug("request handled")
	})
}
