package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"inventario-admin/app/controller"
	"inventario-admin/app/router"
	"inventario-admin/catalog"
	"inventario-admin/config"
	"inventario-admin/gateway"
	"inventario-admin/service"
	"inventario-admin/session"
)

// Initialize wires the application: configuration, gateway client (with
// the one-time authentication), stores, controllers and routes. It
// returns the ready-to-serve handler.
func Initialize(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (http.Handler, error) {
	client := gateway.NewClient(cfg.APIBaseURL, cfg.APIUsername, cfg.APIPassword, cfg.APITimeout, log)

	// token obtained once at startup; there is no refresh logic
	if err := client.Authenticate(ctx); err != nil {
		return nil, fmt.Errorf("failed to authenticate against inventory API: %w", err)
	}

	store := catalog.NewStore(client)
	sessions := session.NewStore()
	orders := service.NewOrderService(client, log)

	views, err := controller.NewViews("templates", log)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	controllers := &router.Controllers{
		Product: controller.NewProductController(store, sessions, views, log),
		Order:   controller.NewOrderController(store, sessions, orders, views, log),
		API:     controller.NewAPIController(store, sessions, log),
	}

	return router.New(controllers, log), nil
}
