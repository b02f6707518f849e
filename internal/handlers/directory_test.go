package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/staffdir/internal/config"
	"github.com/localnerve/staffdir/internal/dataset"
	"github.com/localnerve/staffdir/internal/handlers"
	"github.com/localnerve/staffdir/internal/middleware"
	"github.com/localnerve/staffdir/internal/models"
	"github.com/localnerve/staffdir/internal/services"
	"github.com/localnerve/staffdir/internal/types"
	"golang.org/x/crypto/bcrypt"
)

// setupApp wires a Fiber app the way cmd/server does, over fixture
// relations and a single test user.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}
	cfg := &config.Config{
		Port:              "3000",
		AvatarFallbackURL: config.DefaultAvatarFallbackURL,
		Credentials: config.CredentialTable{
			Usernames: map[string]config.Credential{
				"jsmith": {Name: "Jane Smith", Email: "jsmith@x", Password: string(hash)},
			},
		},
		Cookie: config.CookieSettings{
			Name:       "staffdir_session",
			Key:        "test-signing-key",
			ExpiryDays: 1,
		},
	}

	store := &dataset.Store{
		Employees: []models.Employee{
			{EmployeeCode: "001", Email: "a@x", DisplayName: "Alice"},
			{EmployeeCode: "002", Email: "b@x", DisplayName: "Bob"},
		},
		Memberships: []models.DivisionMembership{
			{Email: "a@x", Company: "Acme", Division: "Sales/Tokyo"},
			{Email: "b@x", Company: "Acme", Division: "Sales/Tokyo"},
		},
		Properties: []models.PropertyAssignment{
			{StaffCode: "001", ProjectCode: "10", ProjectName: "Tower A"},
		},
		Opportunities: []models.OpportunityRecord{
			{Email: "a@x", ProjectCode: "10"},
		},
		Sales: []models.SalesRecord{
			{EmployeeCode: "001", ProjectCode: "10"},
		},
		Images: map[string]string{},
	}

	auth := services.NewAuthenticator(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var customErr *types.CustomError
			if errors.As(err, &customErr) {
				return c.Status(customErr.Code).JSON(fiber.Map{
					"status":  customErr.Code,
					"message": customErr.Message,
					"ok":      false,
					"type":    customErr.Type,
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status": fiber.StatusInternalServerError, "message": err.Error(), "ok": false,
			})
		},
	})

	authHandler := &handlers.AuthHandler{Auth: auth}
	directoryHandler := &handlers.DirectoryHandler{Store: store, Cfg: cfg}

	api := app.Group("/api")
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", authHandler.Logout)
	api.Get("/auth/session", middleware.AuthUser(auth), authHandler.GetSession)

	directory := api.Group("/directory", middleware.AuthUser(auth))
	directory.Get("/", directoryHandler.GetEmployees)
	directory.Get("/options", directoryHandler.GetOptions)
	directory.Get("/profile", directoryHandler.GetProfile)
	directory.Get("/profile/:email", directoryHandler.GetProfileByEmail)
	directory.Post("/select", directoryHandler.PostSelect)

	api.Get("/avatar/:employeeCode", middleware.AuthUser(auth), directoryHandler.GetAvatar)

	return app
}

// login authenticates the test user and returns the session cookie
func login(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"username": "jsmith", "password": "secret"})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute login request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected login status 200, got %d", resp.StatusCode)
	}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "staffdir_session" {
			return cookie
		}
	}
	t.Fatal("Expected a staffdir_session cookie")
	return nil
}

func TestDirectoryRequiresAuth(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest("GET", "/api/directory", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	app := setupApp(t)

	body, _ := json.Marshal(map[string]string{"username": "jsmith", "password": "wrong"})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}

func TestSearchDirectory(t *testing.T) {
	app := setupApp(t)
	cookie := login(t, app)

	req := httptest.NewRequest("GET", "/api/directory?name=alice", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var rows []models.EmployeeRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(rows) != 1 || rows[0].Email != "a@x" {
		t.Errorf("Expected Alice only, got %v", rows)
	}
}

func TestSearchDirectoryNoMatches(t *testing.T) {
	app := setupApp(t)
	cookie := login(t, app)

	req := httptest.NewRequest("GET", "/api/directory?name=zzz", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 204 {
		t.Errorf("Expected status 204, got %d", resp.StatusCode)
	}
}

func TestProfileAndPeerPivot(t *testing.T) {
	app := setupApp(t)
	cookie := login(t, app)

	// No selection yet
	req := httptest.NewRequest("GET", "/api/directory/profile", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404 before selection, got %d", resp.StatusCode)
	}

	// Detail click selects Alice
	req = httptest.NewRequest("GET", "/api/directory/profile/a@x", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var profile models.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if profile.Name != "Alice" {
		t.Errorf("Expected Alice's profile, got %+v", profile)
	}
	expected := []string{"Tower A asset", "Tower A opportunity+sales"}
	if len(profile.Projects) != 2 || profile.Projects[0] != expected[0] || profile.Projects[1] != expected[1] {
		t.Errorf("Expected projects %v, got %v", expected, profile.Projects)
	}
	if len(profile.Peers["Sales/Tokyo"]) != 1 || profile.Peers["Sales/Tokyo"][0].Name != "Bob" {
		t.Errorf("Expected Bob as the Sales/Tokyo peer, got %v", profile.Peers)
	}

	// Peer pivot replaces the selection
	body, _ := json.Marshal(map[string]string{"email": "b@x"})
	req = httptest.NewRequest("POST", "/api/directory/select", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	// The selected profile is now Bob's
	req = httptest.NewRequest("GET", "/api/directory/profile", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if profile.Name != "Bob" {
		t.Errorf("Expected Bob after pivot, got %+v", profile)
	}
}

func TestProfileUnknownEmail(t *testing.T) {
	app := setupApp(t)
	cookie := login(t, app)

	req := httptest.NewRequest("GET", "/api/directory/profile/nobody@x", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

func TestAvatarRedirect(t *testing.T) {
	app := setupApp(t)
	cookie := login(t, app)

	req := httptest.NewRequest("GET", "/api/avatar/001", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 302 {
		t.Fatalf("Expected status 302, got %d", resp.StatusCode)
	}
	location := resp.Header.Get("Location")
	want := config.DefaultAvatarFallbackURL + "?seed=001"
	if location != want {
		t.Errorf("Expected redirect to %q, got %q", want, location)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	app := setupApp(t)
	cookie := login(t, app)

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest("GET", "/api/directory", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("Expected status 401 after logout, got %d", resp.StatusCode)
	}
}
