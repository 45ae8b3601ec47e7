// Package controllers controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-campus-events/apiclient"
	"go-campus-events/auth"
	"go-campus-events/logger"
	"go-campus-events/models"
	"go-campus-events/services"
)

// AuthController serves the login and registration pages and drives the
// session manager.
type AuthController struct {
	manager *auth.Manager
}

// NewAuthController wires the controller to the session manager.
func NewAuthController(manager *auth.Manager) *AuthController {
	return &AuthController{manager: manager}
}

// ShowLoginPage renders the login form. An already authenticated user is sent
// home instead.
func (ac *AuthController) ShowLoginPage(c *gin.Context) {
	if currentPrincipal(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", pageData(c))
}

// PerformLogin processes the login form. Invalid credentials re-render the
// form with the backend's message; success redirects home.
func (ac *AuthController) PerformLogin(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	if email == "" || password == "" {
		data := pageData(c)
		data["Error"] = "Email and password are required."
		data["Email"] = email
		c.HTML(http.StatusBadRequest, "login.html", data)
		return
	}

	browserSession := sessions.Default(c)
	store := auth.NewSessionStore(browserSession)
	cache := auth.NewSessionPrincipalCache(browserSession)

	principal, err := ac.manager.Login(c.Request.Context(), store, cache, email, password)
	if err != nil {
		logger.Warn.Printf("PerformLogin: login rejected for %s: %v", email, err)
		services.PublishLoginFailure(Environment)
		data := pageData(c)
		data["Error"] = apiclient.UserMessage(err, "Invalid email or password.")
		data["Email"] = email
		c.HTML(http.StatusUnauthorized, "login.html", data)
		return
	}

	logger.Info.Printf("PerformLogin: %s signed in", principal.Email)
	c.Redirect(http.StatusFound, "/")
}

// ShowRegisterPage renders the registration form.
func (ac *AuthController) ShowRegisterPage(c *gin.Context) {
	if currentPrincipal(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "register.html", pageData(c))
}

// PerformRegister processes the registration form. The role field is checked
// against the known set before the backend is asked to create anything.
func (ac *AuthController) PerformRegister(c *gin.Context) {
	input := apiclient.RegisterInput{
		Name:       c.PostForm("name"),
		Email:      c.PostForm("email"),
		Password:   c.PostForm("password"),
		Role:       c.PostForm("role"),
		Department: c.PostForm("department"),
	}

	if input.Name == "" || input.Email == "" || input.Password == "" {
		data := pageData(c)
		data["Error"] = "Name, email and password are required."
		data["Form"] = input
		c.HTML(http.StatusBadRequest, "register.html", data)
		return
	}
	if !models.Role(input.Role).Valid() {
		data := pageData(c)
		data["Error"] = "Please choose a valid role."
		data["Form"] = input
		c.HTML(http.StatusBadRequest, "register.html", data)
		return
	}

	browserSession := sessions.Default(c)
	store := auth.NewSessionStore(browserSession)
	cache := auth.NewSessionPrincipalCache(browserSession)

	principal, err := ac.manager.Register(c.Request.Context(), store, cache, input)
	if err != nil {
		logger.Warn.Printf("PerformRegister: registration rejected for %s: %v", input.Email, err)
		data := pageData(c)
		data["Error"] = apiclient.UserMessage(err, "Registration failed. Please check the form and try again.")
		data["Form"] = input
		c.HTML(http.StatusBadRequest, "register.html", data)
		return
	}

	logger.Info.Printf("PerformRegister: account created for %s (%s)", principal.Email, principal.Role)
	c.Redirect(http.StatusFound, "/")
}

// Logout clears the session and returns to the login page. Safe to hit while
// already signed out.
func (ac *AuthController) Logout(c *gin.Context) {
	browserSession := sessions.Default(c)
	store := auth.NewSessionStore(browserSession)
	cache := auth.NewSessionPrincipalCache(browserSession)

	ac.manager.Logout(store, cache)
	logger.Info.Println("Logout: session cleared")
	c.Redirect(http.StatusFound, "/login")
}
