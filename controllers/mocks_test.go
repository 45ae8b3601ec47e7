// file: controllers/mocks_test.go
// Shared scaffolding for controller tests: a router factory, a canned auth
// backend, and hand-rolled mocks for each backend API slice.
package controllers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"go-campus-events/apiclient"
	"go-campus-events/auth"
	"go-campus-events/middleware"
	"go-campus-events/models"
)

// setupTestRouter creates a new Gin engine with session middleware, the
// session resolver and fake HTML templates.
func setupTestRouter(t *testing.T, manager *auth.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Set up sessions with cookie store.
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))
	router.Use(middleware.ResolveSession(manager))

	// Create minimal templates to avoid panics during testing.
	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}

	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))
	return router
}

// createDummyTemplates writes a set of minimal HTML templates to the provided directory.
func createDummyTemplates(dir string) error {
	templates := map[string]string{
		"index.html":          `<html><body>Home {{.Error}}</body></html>`,
		"login.html":          `<html><body>Login {{.Error}}</body></html>`,
		"register.html":       `<html><body>Register {{.Error}}</body></html>`,
		"about.html":          `<html><body>About</body></html>`,
		"privacy_policy.html": `<html><body>Privacy</body></html>`,
		"events.html":         `<html><body>Events {{.Error}}</body></html>`,
		"event_details.html":  `<html><body>Event {{.Error}} {{.Info}}</body></html>`,
		"not_found.html":      `<html><body>Not found</body></html>`,
		"create_event.html":   `<html><body>Create {{.Error}}</body></html>`,
		"profile.html":        `<html><body>Profile {{.Error}}</body></html>`,
		"admin.html":          `<html><body>Admin {{.Error}}</body></html>`,
		"notifications.html":  `<html><body>Notifications {{.Error}}</body></html>`,
		"community.html":      `<html><body>Community {{.Error}}</body></html>`,
		"motivation.html":     `<html><body>Motivation {{.Error}}</body></html>`,
		"payment.html":        `<html><body>Payment {{.Error}}</body></html>`,
		"payment_result.html": `<html><body>Result {{.Message}}</body></html>`,
	}

	for name, content := range templates {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// stubAuth is a canned auth backend for controller tests.
type stubAuth struct {
	principal models.Principal
	loginErr  error
	regErr    error
}

func (s *stubAuth) Me(ctx context.Context, token string) (*models.Principal, error) {
	if token == "" {
		return nil, apiclient.ErrUnauthenticated
	}
	p := s.principal
	return &p, nil
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (*apiclient.AuthSession, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &apiclient.AuthSession{Token: "test-token", User: s.principal}, nil
}

func (s *stubAuth) Register(ctx context.Context, input apiclient.RegisterInput) (*apiclient.AuthSession, error) {
	if s.regErr != nil {
		return nil, s.regErr
	}
	return &apiclient.AuthSession{Token: "test-token", User: s.principal}, nil
}

// signIn establishes an authenticated browser session through a helper route
// and returns the session cookie for subsequent requests.
func signIn(t *testing.T, router *gin.Engine, manager *auth.Manager) *http.Cookie {
	t.Helper()
	router.GET("/__signin", func(c *gin.Context) {
		browserSession := sessions.Default(c)
		store := auth.NewSessionStore(browserSession)
		cache := auth.NewSessionPrincipalCache(browserSession)
		if _, err := manager.Login(c.Request.Context(), store, cache, "test@campus.edu", "pw"); err != nil {
			c.String(http.StatusInternalServerError, "signin failed: %v", err)
			return
		}
		c.String(http.StatusOK, "ok")
	})

	req, _ := http.NewRequest("GET", "/__signin", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("signin helper failed: %d %s", w.Code, w.Body.String())
	}

	for _, ck := range w.Result().Cookies() {
		if ck.Name == "testsession" {
			return ck
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

// doRequest performs one request against the router, optionally carrying the
// session cookie and a URL-encoded form body.
func doRequest(router *gin.Engine, method, target string, ck *http.Cookie, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, _ := http.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if ck != nil {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// mockEventAPI implements apiclient.EventAPI with overridable functions.
type mockEventAPI struct {
	listEvents       func(filters apiclient.EventFilters) ([]models.Event, error)
	getEvent         func(id string) (*models.Event, error)
	createEvent      func(input apiclient.CreateEventInput, photoName string) (*models.Event, error)
	deleteEvent      func(id string) error
	bookEvent        func(id string) error
	cancelBooking    func(id string) error
	registerAttendee func(reg models.EventRegistration) (string, error)
	userEvents       func() ([]models.Event, error)
	verifyPayment    func(sessionID string) (bool, string, error)
}

func (m *mockEventAPI) ListEvents(ctx context.Context, token string, filters apiclient.EventFilters) ([]models.Event, error) {
	if m.listEvents == nil {
		return nil, nil
	}
	return m.listEvents(filters)
}

func (m *mockEventAPI) GetEvent(ctx context.Context, token, id string) (*models.Event, error) {
	if m.getEvent == nil {
		return &models.Event{ID: id}, nil
	}
	return m.getEvent(id)
}

func (m *mockEventAPI) CreateEvent(ctx context.Context, token string, input apiclient.CreateEventInput, photo io.Reader, photoName string) (*models.Event, error) {
	if m.createEvent == nil {
		return &models.Event{ID: "new"}, nil
	}
	return m.createEvent(input, photoName)
}

func (m *mockEventAPI) DeleteEvent(ctx context.Context, token, id string) error {
	if m.deleteEvent == nil {
		return nil
	}
	return m.deleteEvent(id)
}

func (m *mockEventAPI) BookEvent(ctx context.Context, token, id string) error {
	if m.bookEvent == nil {
		return nil
	}
	return m.bookEvent(id)
}

func (m *mockEventAPI) CancelBooking(ctx context.Context, token, id string) error {
	if m.cancelBooking == nil {
		return nil
	}
	return m.cancelBooking(id)
}

func (m *mockEventAPI) RegisterAttendee(ctx context.Context, token string, reg models.EventRegistration) (string, error) {
	if m.registerAttendee == nil {
		return "reg-1", nil
	}
	return m.registerAttendee(reg)
}

func (m *mockEventAPI) UserEvents(ctx context.Context, token string) ([]models.Event, error) {
	if m.userEvents == nil {
		return nil, nil
	}
	return m.userEvents()
}

func (m *mockEventAPI) VerifyPayment(ctx context.Context, token, sessionID string) (bool, string, error) {
	if m.verifyPayment == nil {
		return true, "", nil
	}
	return m.verifyPayment(sessionID)
}

// mockNotificationAPI implements apiclient.NotificationAPI.
type mockNotificationAPI struct {
	list     func() ([]models.Notification, error)
	markRead func(id string) error
	remove   func(id string) error
}

func (m *mockNotificationAPI) ListNotifications(ctx context.Context, token string) ([]models.Notification, error) {
	if m.list == nil {
		return nil, nil
	}
	return m.list()
}

func (m *mockNotificationAPI) MarkNotificationRead(ctx context.Context, token, id string) error {
	if m.markRead == nil {
		return nil
	}
	return m.markRead(id)
}

func (m *mockNotificationAPI) DeleteNotification(ctx context.Context, token, id string) error {
	if m.remove == nil {
		return nil
	}
	return m.remove(id)
}

// mockMessageAPI implements apiclient.MessageAPI.
type mockMessageAPI struct {
	list   func() ([]models.Message, error)
	post   func(content string) (*models.Message, error)
	remove func(id string) error
}

func (m *mockMessageAPI) ListMessages(ctx context.Context, token string) ([]models.Message, error) {
	if m.list == nil {
		return nil, nil
	}
	return m.list()
}

func (m *mockMessageAPI) PostMessage(ctx context.Context, token, content string) (*models.Message, error) {
	if m.post == nil {
		return &models.Message{ID: "m1", Content: content}, nil
	}
	return m.post(content)
}

func (m *mockMessageAPI) DeleteMessage(ctx context.Context, token, id string) error {
	if m.remove == nil {
		return nil
	}
	return m.remove(id)
}

// mockMotivationAPI implements apiclient.MotivationAPI.
type mockMotivationAPI struct {
	generate      func(feeling string) (*models.MotivationContent, error)
	generateEvent func(eventID string) error
	updateEvent   func(eventID string, content models.MotivationContent) error
}

func (m *mockMotivationAPI) GenerateMotivation(ctx context.Context, token, feeling string) (*models.MotivationContent, error) {
	if m.generate == nil {
		return &models.MotivationContent{}, nil
	}
	return m.generate(feeling)
}

func (m *mockMotivationAPI) GenerateEventMotivation(ctx context.Context, token, eventID string) error {
	if m.generateEvent == nil {
		return nil
	}
	return m.generateEvent(eventID)
}

func (m *mockMotivationAPI) UpdateEventMotivation(ctx context.Context, token, eventID string, content models.MotivationContent) error {
	if m.updateEvent == nil {
		return nil
	}
	return m.updateEvent(eventID, content)
}

// fakeMessenger records what the controllers push to the live channel.
type fakeMessenger struct {
	communityMessages []models.Message
	notifications     []models.Notification
	notifiedUsers     []string
}

func (f *fakeMessenger) PublishCommunityMessage(message models.Message) {
	f.communityMessages = append(f.communityMessages, message)
}

func (f *fakeMessenger) PublishNotification(userID string, notification models.Notification) {
	f.notifiedUsers = append(f.notifiedUsers, userID)
	f.notifications = append(f.notifications, notification)
}

func (f *fakeMessenger) BroadcastRaw(msg []byte) {}
