// Package controllers controllers/payment_controller.go
package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"go-campus-events/apiclient"
	"go-campus-events/logger"
	"go-campus-events/services"
)

// PaymentController serves the UPI payment page for paid event
// registrations.
type PaymentController struct {
	api apiclient.EventAPI
	// UPI payee details from configuration.
	upiID     string
	payeeName string
}

// NewPaymentController wires the controller to the backend client and the
// configured payee.
func NewPaymentController(api apiclient.EventAPI, upiID, payeeName string) *PaymentController {
	return &PaymentController{api: api, upiID: upiID, payeeName: payeeName}
}

// ShowPayment renders the payment page with the UPI deep link and QR code
// for the event's fee.
func (pc *PaymentController) ShowPayment(c *gin.Context) {
	eventID := c.Query("eventId")
	registrationID := c.Query("registrationId")
	if eventID == "" {
		c.Redirect(http.StatusFound, "/events")
		return
	}

	event, err := pc.api.GetEvent(c.Request.Context(), sessionToken(c), eventID)
	if err != nil {
		logger.Error.Printf("ShowPayment: fetching event %s failed: %v", eventID, err)
		data := pageData(c)
		data["Error"] = apiclient.UserMessage(err, "Could not load payment details.")
		c.HTML(http.StatusOK, "payment.html", data)
		return
	}

	reference := registrationID
	if reference == "" {
		reference = services.NewPaymentReference()
	}

	link, err := services.BuildUPILink(services.PaymentRequest{
		UPIID:     pc.upiID,
		PayeeName: pc.payeeName,
		Amount:    event.Fee,
		Reference: reference,
	})
	if err != nil {
		logger.Error.Printf("ShowPayment: building UPI link failed: %v", err)
		data := pageData(c)
		data["Error"] = "This event has no fee to pay."
		c.HTML(http.StatusOK, "payment.html", data)
		return
	}

	data := pageData(c)
	data["Event"] = event
	data["RegistrationID"] = registrationID
	data["UPILink"] = link
	data["QRCodeURL"] = "/payment/qrcode?link=" + url.QueryEscape(link)
	c.HTML(http.StatusOK, "payment.html", data)
}

// PaymentQRCode streams the QR code PNG for a UPI deep link. Only UPI pay
// links are encoded; anything else would turn this into a QR generator for
// arbitrary content served from our origin.
func (pc *PaymentController) PaymentQRCode(c *gin.Context) {
	link := c.Query("link")
	if !strings.HasPrefix(link, "upi://pay?") {
		logger.Warn.Printf("PaymentQRCode: rejecting non-UPI link %q", link)
		c.String(http.StatusBadRequest, "Invalid payment link")
		return
	}

	qrBytes, err := services.GeneratePaymentQRCode(link, 300, services.QRCodeEncoder(qrcode.Encode))
	if err != nil {
		logger.Error.Printf("PaymentQRCode: QR generation failed: %v", err)
		c.String(http.StatusBadRequest, "QR generation failed")
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename=\"payment.png\"")
	if _, err := c.Writer.Write(qrBytes); err != nil {
		logger.Error.Printf("PaymentQRCode: writing QR bytes failed: %v", err)
	}
}

// VerifyPayment asks the backend to confirm the payment session and renders
// the verdict.
func (pc *PaymentController) VerifyPayment(c *gin.Context) {
	sessionID := c.PostForm("sessionId")
	if sessionID == "" {
		data := pageData(c)
		data["Error"] = "Missing payment session."
		c.HTML(http.StatusBadRequest, "payment.html", data)
		return
	}

	success, message, err := pc.api.VerifyPayment(c.Request.Context(), sessionToken(c), sessionID)
	data := pageData(c)
	if err != nil {
		logger.Error.Printf("VerifyPayment: verification failed: %v", err)
		data["Error"] = apiclient.UserMessage(err, "Could not verify the payment.")
		c.HTML(http.StatusOK, "payment.html", data)
		return
	}

	data["Verified"] = success
	data["Message"] = message
	if success {
		logger.Info.Printf("VerifyPayment: payment session %s confirmed", sessionID)
		c.HTML(http.StatusOK, "payment_result.html", data)
		return
	}
	logger.Warn.Printf("VerifyPayment: payment session %s rejected: %s", sessionID, message)
	c.HTML(http.StatusOK, "payment_result.html", data)
}
