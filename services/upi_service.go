// Package services holds the small domain helpers behind the controllers.
// File: services/upi_service.go
package services

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// PaymentRequest describes one fee payment to be made through a UPI app.
type PaymentRequest struct {
	UPIID     string
	PayeeName string
	// Amount is in whole rupees.
	Amount int
	// Reference ties the payment back to an event registration.
	Reference string
}

// NewPaymentReference returns a fresh transaction reference for the `tr`
// parameter of the deep link.
func NewPaymentReference() string {
	return uuid.NewString()
}

// BuildUPILink composes the upi://pay deep link a mobile UPI app consumes.
// The QR code on the payment page encodes exactly this string.
func BuildUPILink(request PaymentRequest) (string, error) {
	if request.UPIID == "" {
		return "", errors.New("missing UPI id")
	}
	if request.Amount <= 0 {
		return "", errors.New("payment amount must be positive")
	}

	values := url.Values{}
	values.Set("pa", request.UPIID)
	values.Set("pn", request.PayeeName)
	values.Set("am", fmt.Sprintf("%d", request.Amount))
	values.Set("cu", "INR")
	if request.Reference != "" {
		values.Set("tr", request.Reference)
	}
	return "upi://pay?" + values.Encode(), nil
}
