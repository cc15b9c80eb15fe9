package models

import (
	"regexp"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingFailed    BookingStatus = "failed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentFailed  PaymentStatus = "failed"
)

type PaymentMethodType string

const (
	PaymentCard          PaymentMethodType = "card"
	PaymentPayPal        PaymentMethodType = "paypal"
	PaymentBankTransfer  PaymentMethodType = "bank_transfer"
	PaymentDigitalWallet PaymentMethodType = "digital_wallet"
)

type PaymentMethod struct {
	Type  PaymentMethodType `json:"type"`
	Last4 string            `json:"last4,omitempty"`
	Brand string            `json:"brand,omitempty"`
}

type CustomerInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

type BookingItem struct {
	Type        string `json:"type"`
	ReferenceID string `json:"reference_id"`
	Description string `json:"description"`
	Price       Price  `json:"price"`
}

type BookingRequest struct {
	Items         []BookingItem `json:"items"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Customer      CustomerInfo  `json:"customer"`
}

const (
	ErrNoBookingItems      ValidationError = "booking must contain at least one item"
	ErrMissingPayment      ValidationError = "payment method is required"
	ErrMissingCustomerName ValidationError = "customer first and last name are required"
	ErrInvalidEmail        ValidationError = "customer email is invalid"
	ErrIncompleteCard      ValidationError = "card payments require last4 digits and a brand"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var last4Pattern = regexp.MustCompile(`^[0-9]{4}$`)

// Validate enforces the booking contract. Violations are deterministic
// caller errors, distinct from simulated provider failures.
func (r *BookingRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrNoBookingItems
	}
	if r.PaymentMethod.Type == "" {
		return ErrMissingPayment
	}
	if r.Customer.FirstName == "" || r.Customer.LastName == "" {
		return ErrMissingCustomerName
	}
	if !emailPattern.MatchString(r.Customer.Email) {
		return ErrInvalidEmail
	}
	if r.PaymentMethod.Type == PaymentCard {
		if !last4Pattern.MatchString(r.PaymentMethod.Last4) || r.PaymentMethod.Brand == "" {
			return ErrIncompleteCard
		}
	}
	return nil
}

type BookingResult struct {
	ID               string        `json:"id"`
	ConfirmationCode string        `json:"confirmation_code"`
	Status           BookingStatus `json:"status"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	Items            []BookingItem `json:"items"`
	Total            Price         `json:"total"`
	Customer         CustomerInfo  `json:"customer"`
	CreatedAt        time.Time     `json:"created_at"`
}
