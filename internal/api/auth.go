package api

import "context"

// AuthService exposes the authentication operations of the API.
type AuthService struct {
	client *Client
}

// NewAuthService returns the auth façade over the given client.
func NewAuthService(c *Client) *AuthService {
	return &AuthService{client: c}
}

// LoginInput is the credential pair sent to /auth/login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput is the account-creation payload sent to /auth/register.
type RegisterInput struct {
	Name     string    `json:"name" validate:"required"`
	Email    string    `json:"email" validate:"required,email"`
	Password string    `json:"password" validate:"required,min=6"`
	Role     string    `json:"role" validate:"required,oneof=farmer wholesaler retailer"`
	Phone    string    `json:"phone,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// AuthResponse is the session issued on successful login or registration.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login exchanges an email/password pair for a session token.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	var out AuthResponse
	if err := s.client.post(ctx, "/auth/login", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account and returns its first session.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	var out AuthResponse
	if err := s.client.post(ctx, "/auth/register", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the account behind the current session credential.
func (s *AuthService) Me(ctx context.Context) (*User, error) {
	var out User
	if err := s.client.get(ctx, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
