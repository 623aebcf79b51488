package models

// Customer is a master-data record selected into booking forms.
type Customer struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	AddressLine3 string `json:"address_line3"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	TaxID        string `json:"tax_id"`
	BranchType   string `json:"branch_type"`
	BranchNumber string `json:"branch_number"`
	CreditDays   int    `json:"credit_days"`
}

// CustomerOverride is a per-document patch of customer display fields.
// A nil field means "use the stored customer record"; the master record
// is never mutated by an override.
type CustomerOverride struct {
	Name         *string `json:"name,omitempty"`
	Address      *string `json:"address,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	TaxID        *string `json:"tax_id,omitempty"`
	BranchType   *string `json:"branch_type,omitempty"`
	BranchNumber *string `json:"branch_number,omitempty"`
}

// Empty reports whether no field is overridden.
func (o CustomerOverride) Empty() bool {
	return o.Name == nil && o.Address == nil && o.Phone == nil &&
		o.TaxID == nil && o.BranchType == nil && o.BranchNumber == nil
}
