package api

import (
	"context"
	"net/url"
)

// ProductService exposes the product listing operations of the API.
type ProductService struct {
	client *Client
}

// NewProductService returns the products façade over the given client.
func NewProductService(c *Client) *ProductService {
	return &ProductService{client: c}
}

// ListProductsParams are the optional filters of the product listing.
// Zero-valued fields are omitted from the query string.
type ListProductsParams struct {
	Search   string
	Category string
}

func (p ListProductsParams) values() url.Values {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	return q
}

// productList mirrors the server's listing envelope.
type productList struct {
	Products []Product `json:"products"`
}

// CreateProductInput is the payload for listing a new product.
type CreateProductInput struct {
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description" validate:"required"`
	Category       string          `json:"category" validate:"required"`
	Subcategory    string          `json:"subcategory,omitempty"`
	Price          float64         `json:"price" validate:"required,gt=0"`
	Unit           string          `json:"unit" validate:"required"`
	Quantity       int             `json:"quantity" validate:"gte=0"`
	MinOrder       int             `json:"minOrder,omitempty" validate:"omitempty,gte=1"`
	Images         []string        `json:"images,omitempty"`
	Specifications *Specifications `json:"specifications,omitempty"`
	Location       *Location       `json:"location,omitempty"`
}

// UpdateProductInput carries a partial update. Nil fields are omitted
// from the request body and left untouched by the server.
type UpdateProductInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}

// List returns the products matching the given filters. An empty result
// set is an empty slice, not an error.
func (s *ProductService) List(ctx context.Context, params ListProductsParams) ([]Product, error) {
	var out productList
	if err := s.client.get(ctx, "/products", params.values(), &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// Get returns a single product by id.
func (s *ProductService) Get(ctx context.Context, id string) (*Product, error) {
	var out Product
	if err := s.client.get(ctx, "/products/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create lists a new product under the authenticated farmer.
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*Product, error) {
	var out Product
	if err := s.client.post(ctx, "/products", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial update to an existing product.
func (s *ProductService) Update(ctx context.Context, id string, input UpdateProductInput) (*Product, error) {
	var out Product
	if err := s.client.put(ctx, "/products/"+url.PathEscape(id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMine returns the authenticated farmer's own listings.
func (s *ProductService) ListMine(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := s.client.get(ctx, "/products/farmer/my-products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
