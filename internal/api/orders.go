package api

import "context"

// OrderService exposes the order operations of the API.
type OrderService struct {
	client *Client
}

// NewOrderService returns the orders façade over the given client.
func NewOrderService(c *Client) *OrderService {
	return &OrderService{client: c}
}

// OrderItemInput is one product line of an order being placed. Product
// is the product id; price is the per-unit price at order time.
type OrderItemInput struct {
	Product  string  `json:"product" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gte=1"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

// CreateOrderInput is the payload for placing a new order.
type CreateOrderInput struct {
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddress  `json:"shippingAddress"`
	Payment         Payment          `json:"payment"`
}

// Create places a new order for the authenticated buyer.
func (s *OrderService) Create(ctx context.Context, input CreateOrderInput) (*Order, error) {
	var out Order
	if err := s.client.post(ctx, "/orders", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyPurchases returns the orders the authenticated user placed as a buyer.
func (s *OrderService) MyPurchases(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := s.client.get(ctx, "/orders/my-orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MySales returns the orders received by the authenticated user as a seller.
func (s *OrderService) MySales(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := s.client.get(ctx, "/orders/my-sales", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
