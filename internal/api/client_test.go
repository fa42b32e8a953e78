package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lokma/internal/models"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.URL), server
}

func errKind(t *testing.T, err error) ErrorKind {
	t.Helper()
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	return apiErr.Kind
}

func TestFetchMenu(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/webhook/menu", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"1","name":"Classic Burger","nameAr":"برجر كلاسيكي","price":25,"category":"Burgers"},
			{"id":"2","name":"Caesar Salad","price":22,"category":"Salads"}
		]`))
	})
	defer server.Close()

	items, err := client.FetchMenu(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Classic Burger", items[0].Name)
	assert.InDelta(t, 25, items[0].Price, 1e-9)
}

func TestFetchMenuNonArrayResponse(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"maintenance"}`))
	})
	defer server.Close()

	_, err := client.FetchMenu(context.Background())
	assert.Equal(t, ErrKindBadResponse, errKind(t, err))
}

func TestFetchMenuServerError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	_, err := client.FetchMenu(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrKindServer, apiErr.Kind)
	assert.True(t, apiErr.Retryable())
}

func TestFetchMenuConnectionRefused(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	_, err := client.FetchMenu(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrKindNetwork, apiErr.Kind)
	assert.True(t, apiErr.Retryable())
}

func TestCreateOrder(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/webhook/new-order", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"success":true,"payload":{"order_ID":"ORD123","status":"processing"}}`))
	})
	defer server.Close()

	result, err := client.CreateOrder(context.Background(), CreateOrderRequest{
		OrderType: models.OrderTypeDelivery,
		Items:     []models.OrderItem{{ID: "1", Price: 25, Quantity: 2}},
		Total:     50,
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD123", result.OrderID)
	assert.Equal(t, models.StatusProcessing, result.Status)
}

func TestCreateOrderRejectedByBackend(t *testing.T) {
	cases := map[string]string{
		"success false":    `{"success":false}`,
		"missing order id": `{"success":true,"payload":{"status":"processing"}}`,
		"not json":         `oops`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})
			defer server.Close()

			result, err := client.CreateOrder(context.Background(), CreateOrderRequest{})
			assert.Nil(t, result)
			assert.Equal(t, ErrKindBadResponse, errKind(t, err))
		})
	}
}

func TestCreateOrderHTTPErrorClassification(t *testing.T) {
	cases := map[int]ErrorKind{
		http.StatusBadRequest:          ErrKindBadRequest,
		http.StatusNotFound:            ErrKindNotFound,
		http.StatusInternalServerError: ErrKindServer,
	}
	for code, want := range cases {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		})

		_, err := client.CreateOrder(context.Background(), CreateOrderRequest{})
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, want, apiErr.Kind, "status %d", code)
		assert.Equal(t, code, apiErr.StatusCode)
		server.Close()
	}
}

func TestFetchStatusObjectShape(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ORD123", r.URL.Query().Get("orderId"))
		w.Write([]byte(`{"status":"Preparing","order_ID":"ORD123"}`))
	})
	defer server.Close()

	status, err := client.FetchStatus(context.Background(), "ORD123")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPreparing, status)
}

func TestFetchStatusArrayShape(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"status":"ready"},{"status":"processing"}]`))
	})
	defer server.Close()

	status, err := client.FetchStatus(context.Background(), "ORD123")
	require.NoError(t, err)
	assert.Equal(t, models.StatusReady, status)
}

func TestFetchStatusEmptyStatusField(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"","order_ID":"ORD123"}`))
	})
	defer server.Close()

	// A well-formed object with no status yet reads as unknown, not an error.
	status, err := client.FetchStatus(context.Background(), "ORD123")
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnknown, status)
}

func TestFetchStatusUnparseableBody(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	defer server.Close()

	status, err := client.FetchStatus(context.Background(), "ORD123")
	assert.Equal(t, models.StatusUnknown, status)
	assert.Equal(t, ErrKindBadResponse, errKind(t, err))
}

func TestFetchStatusNotFound(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	_, err := client.FetchStatus(context.Background(), "ORD123")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrKindNotFound, apiErr.Kind)
	assert.False(t, apiErr.Retryable())
}

func TestUpdateStatus(t *testing.T) {
	for _, code := range []int{http.StatusOK, http.StatusCreated} {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/webhook/order-update", r.URL.Path)
			w.WriteHeader(code)
		})

		err := client.UpdateStatus(context.Background(), "ORD123", models.StatusCancelled)
		assert.NoError(t, err, "status %d", code)
		server.Close()
	}
}

func TestUpdateStatusFailure(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	defer server.Close()

	err := client.UpdateStatus(context.Background(), "ORD123", models.StatusCancelled)
	assert.Equal(t, ErrKindBadRequest, errKind(t, err))
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("connection reset")
	err := networkErr(inner)
	assert.ErrorIs(t, err, inner)
}
