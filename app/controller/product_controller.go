package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"inventario-admin/catalog"
	"inventario-admin/models"
	"inventario-admin/session"
	"inventario-admin/validate"
)

// ProductController handles the product administration page
type ProductController struct {
	store    *catalog.Store
	sessions *session.Store
	views    *Views
	log      logrus.FieldLogger
}

// NewProductController creates a new ProductController
func NewProductController(store *catalog.Store, sessions *session.Store, views *Views, log logrus.FieldLogger) *ProductController {
	return &ProductController{store: store, sessions: sessions, views: views, log: log}
}

// productFormView carries a product form's entered values and its field
// errors back into the template
type productFormView struct {
	Values validate.ProductForm
	Errors validate.Errors
}

// List handles GET /. It refreshes the catalog and renders the table;
// when the refresh fails the previously fetched snapshot is shown with an
// error notice.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	sess := c.sessions.Attach(w, r)

	if err := c.store.Refresh(r.Context()); err != nil {
		c.log.WithError(err).Error("❌ No se pudieron cargar los productos")
		sess.Notify("error", "Error", "No se pudieron cargar los productos")
	}

	c.views.Render(w, "products", map[string]interface{}{
		"Products": c.store.Products(),
		"Form":     productFormView{},
		"Notice":   sess.PopNotice(),
	})
}

// Create handles POST /products. Validation reports every violated field
// at once; a failed backend call leaves the catalog untouched.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	sess := c.sessions.Attach(w, r)

	form := validate.ProductForm{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Stock:       r.FormValue("stock"),
	}
	if errs := validate.Product(form); errs != nil {
		c.views.Render(w, "products", map[string]interface{}{
			"Products": c.store.Products(),
			"Form":     productFormView{Values: form, Errors: errs},
			"Notice":   sess.PopNotice(),
		})
		return
	}

	draft := draftFromForm(form)
	if err := c.store.Add(r.Context(), draft); err != nil {
		c.log.WithError(err).Error("❌ No se pudo agregar el producto")
		sess.Notify("error", "Error", "No se pudo agregar el producto")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sess.Notify("success", "Éxito", "Producto agregado correctamente")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditForm handles GET /products/{id}/edit
func (c *ProductController) EditForm(w http.ResponseWriter, r *http.Request) {
	sess := c.sessions.Attach(w, r)

	product, ok := c.productFromPath(w, r)
	if !ok {
		return
	}

	c.views.Render(w, "product_edit", map[string]interface{}{
		"Product": product,
		"Form": productFormView{Values: validate.ProductForm{
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price.String(),
			Stock:       strconv.Itoa(product.Stock),
		}},
		"Notice": sess.PopNotice(),
	})
}

// Update handles POST /products/{id}: a full-record replace, id fixed
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	sess := c.sessions.Attach(w, r)

	product, ok := c.productFromPath(w, r)
	if !ok {
		return
	}

	form := validate.ProductForm{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Stock:       r.FormValue("stock"),
	}
	if errs := validate.Product(form); errs != nil {
		c.views.Render(w, "product_edit", map[string]interface{}{
			"Product": product,
			"Form":    productFormView{Values: form, Errors: errs},
			"Notice":  sess.PopNotice(),
		})
		return
	}

	draft := draftFromForm(form)
	updated := models.Product{
		ProductID:   product.ProductID,
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Stock:       draft.Stock,
	}
	if err := c.store.Update(r.Context(), updated); err != nil {
		c.log.WithError(err).Error("❌ No se pudo actualizar el producto")
		sess.Notify("error", "Error", "No se pudo actualizar el producto")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sess.Notify("success", "Éxito", "Producto actualizado correctamente")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ConfirmDelete handles GET /products/{id}/delete: the blocking yes/no
// prompt before a destructive call. The cancel link goes back to the list
// without issuing any network call.
func (c *ProductController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	sess := c.sessions.Attach(w, r)

	product, ok := c.productFromPath(w, r)
	if !ok {
		return
	}

	c.views.Render(w, "product_delete", map[string]interface{}{
		"Product": product,
		"Notice":  sess.PopNotice(),
	})
}

// Delete handles POST /products/{id}/delete, reached only through the
// confirmation page
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	sess := c.sessions.Attach(w, r)

	product, ok := c.productFromPath(w, r)
	if !ok {
		return
	}

	if err := c.store.Remove(r.Context(), product.ProductID); err != nil {
		c.log.WithError(err).Error("❌ No se pudo eliminar el producto")
		sess.Notify("error", "Error", "No se pudo eliminar el producto")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sess.Notify("success", "Eliminado!", "El producto ha sido eliminado.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// productFromPath resolves {id} against the catalog snapshot. It writes
// the error response itself and returns ok=false when the id is missing
// or unknown.
func (c *ProductController) productFromPath(w http.ResponseWriter, r *http.Request) (models.Product, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return models.Product{}, false
	}
	product, err := c.store.Get(id)
	if err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return models.Product{}, false
	}
	return product, true
}

// draftFromForm converts an already-validated form into a draft. The
// parses cannot fail after validate.Product accepted the form.
func draftFromForm(form validate.ProductForm) models.ProductDraft {
	price, _ := decimal.NewFromString(strings.TrimSpace(form.Price))
	stock, _ := strconv.Atoi(strings.TrimSpace(form.Stock))
	return models.ProductDraft{
		Name:        form.Name,
		Description: form.Description,
		Price:       price,
		Stock:       stock,
	}
}
