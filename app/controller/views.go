package controller

import (
	"html/template"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"inventario-admin/utils"
)

// Views renders the page templates. Templates only render and forward
// form posts; validation and totals always come from the packages above.
type Views struct {
	templates *template.Template
	log       logrus.FieldLogger
}

// NewViews parses every template under dir (glob *.html)
func NewViews(dir string, log logrus.FieldLogger) (*Views, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"price": func(d decimal.Decimal) string { return utils.FormatPrice(d) },
	}).ParseGlob(dir + "/*.html")
	if err != nil {
		return nil, err
	}
	return &Views{templates: t, log: log}, nil
}

// Render executes the named template with data
func (v *Views) Render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := v.templates.ExecuteTemplate(w, name, data); err != nil {
		v.log.WithError(err).WithField("template", name).Error("❌ Error rendering template")
	}
}
