package inventory_dashboard

import (
	"inventory_dashboard/internal/models"
	"inventory_dashboard/internal/store"
)

// LoginRequest is the body of POST /api/auth.
type LoginRequest struct {
	Username string `json:"username" example:"shrisant"`
	Password string `json:"password" example:"shrisantp"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	Token string `json:"token" example:"mocked_token"`
}

// MessageResponse carries a human-readable outcome, used by the login endpoint.
type MessageResponse struct {
	Message string `json:"message" example:"Invalid credentials"`
}

// ErrorResponse is the error envelope of every other endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProductsResponse is one page of the stateless product query.
type ProductsResponse struct {
	Data       []models.Product `json:"data"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

// DashboardResponse is the view state plus derived footer and chart data.
type DashboardResponse struct {
	store.ViewState
	TotalPages int                    `json:"total_pages"`
	Chart      []models.CategoryCount `json:"chart"`
}

// Intent bodies for the dashboard endpoints. Pointers tell a missing field
// apart from a zero value.
type (
	SetPageRequest struct {
		Page *int `json:"page" binding:"required" example:"2"`
	}
	SetPageSizeRequest struct {
		PageSize *int `json:"page_size" binding:"required" example:"20"`
	}
	SetSortRequest struct {
		Field string `json:"field" binding:"required" example:"price"`
	}
	SetFilterRequest struct {
		Text *string `json:"text" binding:"required" example:"book"`
	}
)
