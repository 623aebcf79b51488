package formsync

import (
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

// Display helpers prefer the per-document override field when present
// and fall back to the stored customer record otherwise. The override
// is a sparse patch; a nil field means "not overridden".

func DisplayCustomerName(c models.Customer, o models.CustomerOverride) string {
	if o.Name != nil {
		return *o.Name
	}
	return c.Name
}

func DisplayCustomerAddress(c models.Customer, o models.CustomerOverride) string {
	if o.Address != nil {
		return *o.Address
	}
	return utils.JoinAddress(c.AddressLine1, c.AddressLine2, c.AddressLine3)
}

func DisplayCustomerPhone(c models.Customer, o models.CustomerOverride) string {
	if o.Phone != nil {
		return *o.Phone
	}
	return c.Phone
}

func DisplayCustomerTaxID(c models.Customer, o models.CustomerOverride) string {
	if o.TaxID != nil {
		return *o.TaxID
	}
	return c.TaxID
}

func DisplayCustomerBranch(c models.Customer, o models.CustomerOverride) (string, string) {
	branchType := c.BranchType
	branchNumber := c.BranchNumber
	if o.BranchType != nil {
		branchType = *o.BranchType
	}
	if o.BranchNumber != nil {
		branchNumber = *o.BranchNumber
	}
	return branchType, branchNumber
}

// BuildOverride captures only the fields that differ from the stored
// customer record, so an untouched form yields an empty patch.
func BuildOverride(c models.Customer, name, address, phone, taxID, branchType, branchNumber string) models.CustomerOverride {
	var o models.CustomerOverride
	baseAddress := utils.JoinAddress(c.AddressLine1, c.AddressLine2, c.AddressLine3)
	if name != c.Name {
		o.Name = &name
	}
	if address != baseAddress {
		o.Address = &address
	}
	if phone != c.Phone {
		o.Phone = &phone
	}
	if taxID != c.TaxID {
		o.TaxID = &taxID
	}
	if branchType != c.BranchType {
		o.BranchType = &branchType
	}
	if branchNumber != c.BranchNumber {
		o.BranchNumber = &branchNumber
	}
	return o
}
