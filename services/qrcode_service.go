// Package services - services/qrcode_service.go
package services

import (
	"errors"

	"github.com/skip2/go-qrcode"
)

// QRCodeEncoder matches qrcode.Encode so tests can swap the encoder.
type QRCodeEncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// GeneratePaymentQRCode renders the given UPI deep link as a PNG of the
// requested size.
func GeneratePaymentQRCode(link string, size int, encode QRCodeEncoder) ([]byte, error) {
	if link == "" {
		return nil, errors.New("nothing to encode")
	}
	if size <= 0 {
		return nil, errors.New("invalid size: must be positive")
	}

	png, err := encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
