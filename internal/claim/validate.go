package claim

import (
	"fmt"
	"regexp"
	"strings"
)

// emailPattern is a shape check, not an RFC validator: something@something.tld.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError ties a validation failure to the offending input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a set of facts the way the intake form does: required
// fields, minimum lengths for address-shaped fields, email shape, a positive
// amount, and deposit-before-move-out date order. Returns one FieldError per
// failed field; an empty slice means the facts are ready for letter
// generation.
func Validate(f Facts) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(f.TenantName) == "" {
		errs = append(errs, FieldError{"tenant_name", "your name is required"})
	} else if len(strings.TrimSpace(f.TenantName)) < 2 {
		errs = append(errs, FieldError{"tenant_name", "name must be at least 2 characters"})
	}

	if strings.TrimSpace(f.StateCode) == "" {
		errs = append(errs, FieldError{"state", "state is required"})
	}

	errs = appendAddressError(errs, "rental_address", f.RentalAddress, "rental address")
	errs = appendAddressError(errs, "forwarding_address", f.ForwardingAddress, "forwarding address")
	errs = appendAddressError(errs, "landlord_info", f.LandlordInfo, "landlord name and address")

	if strings.TrimSpace(f.TenantEmail) == "" {
		errs = append(errs, FieldError{"tenant_email", "email address is required"})
	} else if !emailPattern.MatchString(f.TenantEmail) {
		errs = append(errs, FieldError{"tenant_email", "please enter a valid email address"})
	}

	if f.DepositAmountCents < 1 {
		errs = append(errs, FieldError{"deposit_amount_cents", "deposit amount must be greater than 0"})
	}

	if f.DepositDate.IsZero() {
		errs = append(errs, FieldError{"deposit_date", "deposit payment date is required"})
	}
	if f.MoveOutDate.IsZero() {
		errs = append(errs, FieldError{"move_out_date", "move-out date is required"})
	} else if !f.DepositDate.IsZero() && f.MoveOutDate.Before(f.DepositDate) {
		errs = append(errs, FieldError{"move_out_date", "move-out date must be on or after deposit payment date"})
	}

	return errs
}

func appendAddressError(errs []FieldError, field, value, label string) []FieldError {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return append(errs, FieldError{field, label + " is required"})
	}
	if len(trimmed) < 10 {
		return append(errs, FieldError{field, "please provide a complete " + label})
	}
	return errs
}
