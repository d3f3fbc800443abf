package user

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/gvormbrock/user-registry-backend/internal/apperr"
	"github.com/gvormbrock/user-registry-backend/internal/country"
)

func makeTestApp() *fiber.App {
	countries := country.NewService(country.NewInMemoryRepository([]country.Country{
		{Name: "France", Code: "fr"},
		{Name: "England", Code: "en"},
	}))
	service := NewService(NewInMemoryRepository(nil), countries)
	handler := NewHandler(service)

	app := fiber.New()
	handler.RegisterRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}

func errorDetails(t *testing.T, body []byte) apperr.ErrorDetails {
	t.Helper()
	var details apperr.ErrorDetails
	if err := json.Unmarshal(body, &details); err != nil {
		t.Fatalf("failed to decode error body %s: %v", body, err)
	}
	return details
}

func TestCreateReadUpdateDeleteFlow(t *testing.T) {
	app := makeTestApp()

	// POST with only the country code; the response is denormalized.
	status, body := doJSON(t, app, "POST", "/users",
		`{"name":"UserControllerTest","birthday":"2000-01-01","countryCode":"fr"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, body)
	}

	var created Dto
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("failed to decode created user: %v", err)
	}
	if created.ID == nil || *created.ID == 0 {
		t.Fatalf("expected assigned id, got %s", body)
	}
	if created.CountryName == nil || *created.CountryName != "France" {
		t.Fatalf("expected countryName France, got %s", body)
	}

	id := strconv.FormatInt(*created.ID, 10)

	// GET by id.
	status, body = doJSON(t, app, "GET", "/users/"+id, "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	if !strings.Contains(string(body), "UserControllerTest") {
		t.Fatalf("unexpected body %s", body)
	}

	// PUT the same id with verify=false and a changed gender.
	status, body = doJSON(t, app, "PUT", "/users?verify=false",
		`{"id":`+id+`,"name":"UserControllerTest","birthday":"2000-01-01","countryCode":"fr","gender":"Female"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201 on update, got %d: %s", status, body)
	}

	status, body = doJSON(t, app, "GET", "/users/"+id, "")
	if status != fiber.StatusOK || !strings.Contains(string(body), "Female") {
		t.Fatalf("gender not updated: %d %s", status, body)
	}

	// PUT the same (name, birthday) as a new record with verify=true.
	status, body = doJSON(t, app, "PUT", "/users?verify=true",
		`{"name":"UserControllerTest","birthday":"2000-01-01","countryCode":"fr"}`)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 on duplicate, got %d: %s", status, body)
	}
	if details := errorDetails(t, body); details.ErrorCode != apperr.CodeDuplicateUser {
		t.Fatalf("expected errorCode 120, got %d", details.ErrorCode)
	}

	// DELETE then GET answers 404.
	status, _ = doJSON(t, app, "DELETE", "/users/"+id, "")
	if status != fiber.StatusNoContent {
		t.Fatalf("expected 204 on delete, got %d", status)
	}

	status, body = doJSON(t, app, "GET", "/users/"+id, "")
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d: %s", status, body)
	}
	if details := errorDetails(t, body); details.ErrorCode != apperr.CodeUserNotFound {
		t.Fatalf("expected errorCode 400, got %d", details.ErrorCode)
	}

	status, body = doJSON(t, app, "DELETE", "/users/"+id, "")
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404 on repeated delete, got %d", status)
	}
	if details := errorDetails(t, body); details.ErrorCode != apperr.CodeDeleteNotFound {
		t.Fatalf("expected errorCode 401, got %d", details.ErrorCode)
	}
}

func TestListUsers(t *testing.T) {
	app := makeTestApp()

	doJSON(t, app, "POST", "/users",
		`{"name":"UserControllerTest","birthday":"2000-10-19","countryCode":"fr"}`)
	doJSON(t, app, "POST", "/users",
		`{"name":"UserControllerTest","birthday":"2000-10-20","countryName":"France"}`)

	status, body := doJSON(t, app, "GET", "/users", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var users []Dto
	if err := json.Unmarshal(body, &users); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if *users[0].CountryCode != "fr" || *users[1].CountryCode != "fr" {
		t.Fatalf("expected denormalized country codes, got %s", body)
	}
}

func TestCreateBusinessRuleFailures(t *testing.T) {
	app := makeTestApp()

	cases := []struct {
		name string
		body string
		code int
	}{
		{"missing country", `{"name":"UserControllerTest","birthday":"2000-01-01"}`, apperr.CodeCountryNotFound},
		{"unknown country", `{"name":"UserControllerTest","birthday":"2000-01-01","countryCode":"xx"}`, apperr.CodeCountryNotFound},
		{"not french", `{"name":"UserControllerTest","birthday":"2000-01-01","countryCode":"en"}`, apperr.CodeNotFrench},
		{"underage", `{"name":"UserControllerTest","birthday":"2020-01-01","countryCode":"fr"}`, apperr.CodeUnderage},
		{"blank name", `{"name":"   ","birthday":"2000-01-01","countryCode":"fr"}`, apperr.CodeValidation},
	}

	for _, tc := range cases {
		status, body := doJSON(t, app, "POST", "/users", tc.body)
		if status != fiber.StatusInternalServerError {
			t.Fatalf("%s: expected 500, got %d: %s", tc.name, status, body)
		}
		if details := errorDetails(t, body); details.ErrorCode != tc.code {
			t.Fatalf("%s: expected errorCode %d, got %d", tc.name, tc.code, details.ErrorCode)
		}
	}
}

func TestBindingFailures(t *testing.T) {
	app := makeTestApp()

	status, body := doJSON(t, app, "GET", "/users/abc", "")
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", status)
	}
	if details := errorDetails(t, body); details.ErrorCode != 0 {
		t.Fatalf("expected errorCode 0, got %d", details.ErrorCode)
	}

	status, _ = doJSON(t, app, "PUT", "/users?verify=banana",
		`{"name":"UserControllerTest","birthday":"2000-01-01","countryCode":"fr"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad verify value, got %d", status)
	}

	status, _ = doJSON(t, app, "POST", "/users", `{not json`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", status)
	}
}

func TestErrorBodyShape(t *testing.T) {
	app := makeTestApp()

	status, body := doJSON(t, app, "GET", "/users/42", "")
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	for _, key := range []string{"errorCode", "errorMessage", "devErrorMessage", "additionalData"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("error body missing %q: %s", key, body)
		}
	}
	if raw["devErrorMessage"] == "" {
		t.Fatalf("devErrorMessage should carry a stack detail")
	}
}
