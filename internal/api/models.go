package api

import "time"

// Marketplace roles a user account can hold.
const (
	RoleFarmer     = "farmer"
	RoleWholesaler = "wholesaler"
	RoleRetailer   = "retailer"
	RoleAdmin      = "admin"
)

// Message content types. Only text is exercised by the current client;
// the other tags are reserved by the server's schema.
const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
	MessageTypeFile  = "file"
)

// Order lifecycle statuses assigned by the server.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Location is a coarse physical address attached to users and products.
type Location struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Profile holds the optional public profile fields of a user.
type Profile struct {
	Bio          string `json:"bio,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
}

// User is a marketplace participant: farmer, wholesaler, retailer, or admin.
type User struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Phone    string    `json:"phone,omitempty"`
	Location *Location `json:"location,omitempty"`
	Profile  *Profile  `json:"profile,omitempty"`
}

// DisplayName prefers the business name over the personal name, the way
// the marketplace presents sellers.
func (u User) DisplayName() string {
	if u.Profile != nil && u.Profile.BusinessName != "" {
		return u.Profile.BusinessName
	}
	return u.Name
}

// Specifications carries the optional quality attributes of a product.
type Specifications struct {
	Grade         string `json:"grade,omitempty"`
	Variety       string `json:"variety,omitempty"`
	Organic       bool   `json:"organic,omitempty"`
	PesticideFree bool   `json:"pesticideFree,omitempty"`
}

// Product is a listing offered by a farmer.
type Product struct {
	ID             string         `json:"_id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	Subcategory    string         `json:"subcategory,omitempty"`
	Price          float64        `json:"price"`
	Unit           string         `json:"unit"`
	Quantity       int            `json:"quantity"`
	MinOrder       int            `json:"minOrder"`
	Images         []string       `json:"images"`
	Farmer         User           `json:"farmer"`
	Specifications Specifications `json:"specifications"`
	Location       Location       `json:"location"`
	IsAvailable    bool           `json:"isAvailable"`
	Rating         float64        `json:"rating"`
	ReviewCount    int            `json:"reviewCount"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// OrderItem is one product line within an order.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ShippingAddress is the delivery destination of an order.
type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

// Payment records the method and settlement status of an order.
type Payment struct {
	Method string `json:"method"`
	Status string `json:"status"`
}

// Order is a purchase placed by a buyer against a seller's listings.
type Order struct {
	ID              string          `json:"_id"`
	OrderNumber     string          `json:"orderNumber"`
	Buyer           User            `json:"buyer"`
	Seller          User            `json:"seller"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     float64         `json:"totalAmount"`
	Status          string          `json:"status"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Payment         Payment         `json:"payment"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Message is one entry in a two-party conversation. The server owns the
// id, creation timestamp, and read flag; the client never mutates a
// message after creation.
type Message struct {
	ID        string    `json:"_id"`
	ChatID    string    `json:"chatId"`
	Sender    User      `json:"sender"`
	Receiver  User      `json:"receiver"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
