package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventario-admin/models"
)

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "admin", "secret", 2*time.Second, testLogger())
}

func authAndAPI(t *testing.T, api http.HandlerFunc) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/Auth/token", func(w http.ResponseWriter, r *http.Request) {
		var req models.TokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin", req.Username)
		assert.Equal(t, "secret", req.Password)
		json.NewEncoder(w).Encode(models.TokenResponse{Token: "tok-123"})
	})
	mux.HandleFunc("/", api)

	client := newTestClient(t, mux)
	require.NoError(t, client.Authenticate(context.Background()))
	return client
}

func TestAuthenticateFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))

	err := client.Authenticate(context.Background())
	require.Error(t, err)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusUnauthorized, terr.Status)
}

func TestFetchProductsAttachesBearerToken(t *testing.T) {
	client := authAndAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/Products", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]models.Product{
			{ProductID: 1, Name: "Widget", Description: "w", Price: decimal.RequireFromString("9.99"), Stock: 5},
		})
	})

	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, "9.99", products[0].Price.StringFixed(2))
}

func TestCreateProduct(t *testing.T) {
	var got models.ProductDraft
	client := authAndAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Products", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})

	draft := models.ProductDraft{Name: "Nuevo", Description: "n", Price: decimal.RequireFromString("2.50"), Stock: 4}
	require.NoError(t, client.CreateProduct(context.Background(), draft))
	assert.Equal(t, "Nuevo", got.Name)
	assert.Equal(t, 4, got.Stock)
}

func TestUpdateProductUsesPut(t *testing.T) {
	var got models.Product
	client := authAndAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/Products", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	})

	p := models.Product{ProductID: 7, Name: "Widget", Description: "w", Price: decimal.RequireFromString("9.99"), Stock: 5}
	require.NoError(t, client.UpdateProduct(context.Background(), p))
	assert.Equal(t, 7, got.ProductID)
}

// The backend takes the delete target in the request body, not the path
func TestDeleteProductSendsBody(t *testing.T) {
	var got models.DeleteProductRequest
	client := authAndAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/Products", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	})

	require.NoError(t, client.DeleteProduct(context.Background(), 3))
	assert.Equal(t, 3, got.ProductID)
}

func TestTransportErrorOnHTTPFailure(t *testing.T) {
	client := authAndAPI(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.FetchProducts(context.Background())
	require.Error(t, err)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusInternalServerError, terr.Status)
	assert.Equal(t, "fetch products", terr.Op)
}

func TestTransportErrorOnNetworkFailure(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "admin", "secret", 200*time.Millisecond, testLogger())

	_, err := client.FetchProducts(context.Background())
	require.Error(t, err)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Zero(t, terr.Status, "network failures carry no HTTP status")
}

func TestPlaceOrderOutcomes(t *testing.T) {
	tests := []struct {
		name   string
		resp   models.OrderResponse
		status models.OrderStatus
	}{
		{
			"created on exact success phrase",
			models.OrderResponse{Message: "Orden creada exitosamente.", OrderID: 42, Total: decimal.RequireFromString("19.98")},
			models.OrderCreated,
		},
		{
			"product not found",
			models.OrderResponse{Message: "El producto X no existe."},
			models.OrderProductNotFound,
		},
		{
			"insufficient stock",
			models.OrderResponse{Message: "El producto Widget no tiene suficiente stock."},
			models.OrderStockUnavailable,
		},
		{
			"success phrase with extra text is not success",
			models.OrderResponse{Message: "Orden creada exitosamente. Gracias."},
			models.OrderRejected,
		},
		{
			"unknown wording",
			models.OrderResponse{Message: "estado desconocido"},
			models.OrderRejected,
		},
		{
			"empty message",
			models.OrderResponse{},
			models.OrderRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.OrderRequest
			client := authAndAPI(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/Order", r.URL.Path)
				assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				json.NewEncoder(w).Encode(tt.resp)
			})

			req := models.OrderRequest{
				ClientName:   "Ana",
				OrderDetails: []models.OrderDetail{{ProductID: 1, Quantity: 2}},
			}
			outcome, err := client.PlaceOrder(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, outcome.Status)
			assert.Equal(t, tt.resp.Message, outcome.Message)
			assert.Equal(t, tt.resp.OrderID, outcome.OrderID)
			assert.Equal(t, "Ana", got.ClientName)
		})
	}
}
