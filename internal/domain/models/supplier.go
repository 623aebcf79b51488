package models

// Supplier is a master-data record for airlines and service providers.
// NumericCode is the 3-digit airline prefix stamped onto ticket numbers.
type Supplier struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	NumericCode string `json:"numeric_code"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Notes       string `json:"notes"`
}

// City is a reference record used by voucher trip fields.
type City struct {
	ID      int64  `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Country string `json:"country"`
}
