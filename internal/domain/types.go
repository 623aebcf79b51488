package domain

// ID is used across domain entities.
type ID int64

// Status represents a lightweight state value.
type Status string

// Document lifecycle states shared by tickets, deposits, vouchers and others.
const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total,omitempty"`
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID ID     `json:"userId"`
	Role   string `json:"role"`
}
