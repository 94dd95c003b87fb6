// internal/domain/checkout/form.go
package checkout

import (
	"github.com/oncloth/storefront/internal/pkg/security"
)

// CustomerForm is the checkout form as submitted
type CustomerForm struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Notes      string `json:"notes"`
}

// Customer is a sanitized CustomerForm. Email is empty when the submitted
// address was rejected.
type Customer struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Notes      string `json:"notes"`
}

// SanitizeForm strips markup from every field and normalizes the email
func SanitizeForm(form CustomerForm) Customer {
	email, _ := security.SanitizeEmail(form.Email)

	return Customer{
		Name:       security.SanitizeText(form.Name),
		Email:      email,
		Phone:      security.SanitizeText(form.Phone),
		Address:    security.SanitizeText(form.Address),
		City:       security.SanitizeText(form.City),
		State:      security.SanitizeText(form.State),
		PostalCode: security.SanitizeText(form.PostalCode),
		Country:    security.SanitizeText(form.Country),
		Notes:      security.SanitizeText(form.Notes),
	}
}

// ValidateForm collects every problem with c. It returns nil when c is
// complete.
func ValidateForm(c Customer) error {
	var problems []string

	if !security.IsValidRequired(c.Name, 2) {
		problems = append(problems, "Please enter a valid name (minimum 2 characters)")
	}
	if !security.IsValidEmail(c.Email) {
		problems = append(problems, "Please enter a valid email address")
	}
	if c.Phone != "" && !security.IsValidPhone(c.Phone) {
		problems = append(problems, "Please enter a valid phone number")
	}
	if !security.IsValidRequired(c.Address, 5) {
		problems = append(problems, "Please enter a valid address (minimum 5 characters)")
	}
	if !security.IsValidRequired(c.City, 2) {
		problems = append(problems, "Please enter a valid city")
	}
	if !security.IsValidRequired(c.PostalCode, 3) {
		problems = append(problems, "Please enter a valid postal code")
	}
	if !security.IsValidRequired(c.Country, 2) {
		problems = append(problems, "Please select a country")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
