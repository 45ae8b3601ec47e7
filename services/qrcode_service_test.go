// File: services/qrcode_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
)

// Mock encoder function (successful)
func mockQRCodeEncoderSuccess(content string, level qrcode.RecoveryLevel, size int) ([]byte, error) {
	return []byte("mock_qr_code_data"), nil
}

// Mock encoder function (failure)
func mockQRCodeEncoderFailure(content string, level qrcode.RecoveryLevel, size int) ([]byte, error) {
	return nil, errors.New("QR code generation failed")
}

// Test: Generate QR Code Successfully
func TestGeneratePaymentQRCode_Success(t *testing.T) {
	data, err := GeneratePaymentQRCode("upi://pay?pa=a@bank&am=99", 200, mockQRCodeEncoderSuccess)

	assert.NoError(t, err)
	assert.Equal(t, "mock_qr_code_data", string(data))
}

// Test: Empty content is rejected before the encoder runs
func TestGeneratePaymentQRCode_EmptyLink(t *testing.T) {
	data, err := GeneratePaymentQRCode("", 200, mockQRCodeEncoderSuccess)

	assert.Error(t, err)
	assert.Nil(t, data)
}

// Test: Fail QR Code Generation Due to Non-Positive Size
func TestGeneratePaymentQRCode_InvalidSize(t *testing.T) {
	data, err := GeneratePaymentQRCode("upi://pay?pa=a@bank", 0, mockQRCodeEncoderSuccess)

	assert.Error(t, err)
	assert.Nil(t, data)
	assert.Equal(t, "invalid size: must be positive", err.Error())
}

// Test: QR Code Generation Fails Due to Encoder Error
func TestGeneratePaymentQRCode_EncoderFails(t *testing.T) {
	data, err := GeneratePaymentQRCode("upi://pay?pa=a@bank", 200, mockQRCodeEncoderFailure)

	assert.Error(t, err)
	assert.Nil(t, data)
	assert.Equal(t, "QR code generation failed", err.Error())
}
