package api

import (
	"context"

	"fixnow/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login exchanges credentials for a token pair and user record. Backend
// rejections are returned unchanged as *Error; nothing is persisted here.
func (c *Client) Login(ctx context.Context, email, password, role string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	err := c.doJSON(ctx, "POST", "/auth/login", loginRequest{
		Email:    email,
		Password: password,
		Role:     role,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
