package handler

import "github.com/skywings/booking-system/internal/core/domain"

type createUserRequest struct {
	Name          string `json:"name"          validate:"required"`
	Email         string `json:"email"         validate:"required,email"`
	Role          string `json:"role"          validate:"required,oneof=User Admin"`
	MemberSince   string `json:"memberSince"`
	TotalFlights  int    `json:"totalFlights"  validate:"gte=0"`
	LoyaltyPoints int    `json:"loyaltyPoints" validate:"gte=0"`
	Status        string `json:"status"        validate:"required,oneof=Active Suspended Inactive"`
	LastLogin     string `json:"lastLogin"`
}

type updateUserRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"         validate:"omitempty,email"`
	Role          *string `json:"role"          validate:"omitempty,oneof=User Admin"`
	MemberSince   *string `json:"memberSince"`
	TotalFlights  *int    `json:"totalFlights"  validate:"omitempty,gte=0"`
	LoyaltyPoints *int    `json:"loyaltyPoints" validate:"omitempty,gte=0"`
	Status        *string `json:"status"        validate:"omitempty,oneof=Active Suspended Inactive"`
	LastLogin     *string `json:"lastLogin"`
}

type listUsersResponse struct {
	Items  []domain.User `json:"items"`
	Total  int           `json:"total"`
	Source string        `json:"source"`
}

type reloadUsersResponse struct {
	Source string `json:"source"`
}
