package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderPostsItems(t *testing.T) {
	var gotPath string
	var gotBody CreateOrderInput

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.Write([]byte(`{"_id":"o1","orderNumber":"ORD-100","status":"pending","totalAmount":240}`))
	})

	order, err := NewOrderService(client).Create(context.Background(), CreateOrderInput{
		Items: []OrderItemInput{{Product: "p7", Quantity: 2, Price: 120}},
		ShippingAddress: ShippingAddress{
			Address: "Moi Ave 12",
			City:    "Nakuru",
			Country: "Kenya",
			Phone:   "+254700000000",
		},
		Payment: Payment{Method: "mpesa", Status: "pending"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/orders", gotPath)
	require.Len(t, gotBody.Items, 1)
	assert.Equal(t, "p7", gotBody.Items[0].Product)
	assert.Equal(t, "ORD-100", order.OrderNumber)
	assert.Equal(t, OrderStatusPending, order.Status)
}

func TestOrderHistoryRoutes(t *testing.T) {
	var gotPaths []string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		w.Write([]byte(`[{"_id":"o1"},{"_id":"o2"}]`))
	})

	svc := NewOrderService(client)

	purchases, err := svc.MyPurchases(context.Background())
	require.NoError(t, err)
	assert.Len(t, purchases, 2)

	sales, err := svc.MySales(context.Background())
	require.NoError(t, err)
	assert.Len(t, sales, 2)

	assert.Equal(t, []string{"/orders/my-orders", "/orders/my-sales"}, gotPaths)
}
