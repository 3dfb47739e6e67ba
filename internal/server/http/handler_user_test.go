package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"storefront/internal/common"
	"storefront/internal/server/models"
)

func TestRegister_Success(t *testing.T) {
	us := &fakeUserService{
		registerFn: func(ctx context.Context, username, email string, fullName *string, password string) (*models.User, error) {
			if fullName == nil || *fullName != "John Doe" {
				t.Fatalf("full name not passed: %v", fullName)
			}
			return &models.User{ID: 1, Username: username, Email: email, IsActive: true}, nil
		},
	}
	s := newTestServer(us, &fakeItemService{})

	body := `{"username":"johndoe","email":"john@example.com","full_name":"John Doe","password":"secret123"}`
	w := doRequest(s, http.MethodPost, "/users/", body, withJSON())
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d, body: %s", w.Code, w.Body.String())
	}

	var resp userResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.ID != 1 || resp.Username != "johndoe" || !resp.IsActive {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if resp.Items == nil || len(resp.Items) != 0 {
		t.Fatalf("fresh account must own an empty item list: %s", w.Body.String())
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	us := &fakeUserService{
		registerFn: func(ctx context.Context, username, email string, fullName *string, password string) (*models.User, error) {
			return nil, common.ErrorAlreadyExists
		},
	}
	s := newTestServer(us, &fakeItemService{})

	body := `{"username":"johndoe","email":"john@example.com","password":"secret123"}`
	w := doRequest(s, http.MethodPost, "/users/", body, withJSON())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp["detail"] != "username already registered" {
		t.Fatalf("unexpected detail: %q", resp["detail"])
	}
}

func TestRegister_Validation(t *testing.T) {
	s := newTestServer(&fakeUserService{}, &fakeItemService{})

	cases := []struct {
		name string
		body string
	}{
		{"short username", `{"username":"jo","email":"john@example.com","password":"secret123"}`},
		{"bad email", `{"username":"johndoe","email":"not-an-email","password":"secret123"}`},
		{"short password", `{"username":"johndoe","email":"john@example.com","password":"12345"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(s, http.MethodPost, "/users/", tc.body, withJSON())
			if w.Code != http.StatusBadRequest {
				t.Fatalf("unexpected status: %d", w.Code)
			}
		})
	}
}

func TestLogin_TokenExchange(t *testing.T) {
	us := &fakeUserService{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			if username != "johndoe" || password != "secret123" {
				t.Fatalf("unexpected credentials: %q/%q", username, password)
			}
			return "issued-token", nil
		},
	}
	s := newTestServer(us, &fakeItemService{})

	form := url.Values{"username": {"johndoe"}, "password": {"secret123"}}
	w := doRequest(s, http.MethodPost, "/token", form.Encode(), withForm())
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d, body: %s", w.Code, w.Body.String())
	}

	var resp tokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.AccessToken != "issued-token" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	us := &fakeUserService{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			return "", common.ErrorUnauthorized
		},
	}
	s := newTestServer(us, &fakeItemService{})

	form := url.Values{"username": {"johndoe"}, "password": {"wrong"}}
	w := doRequest(s, http.MethodPost, "/token", form.Encode(), withForm())
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	if w.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Fatal("missing WWW-Authenticate header")
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp["detail"] != "incorrect username or password" {
		t.Fatalf("unexpected detail: %q", resp["detail"])
	}
}

func TestLogin_MissingFields(t *testing.T) {
	s := newTestServer(&fakeUserService{}, &fakeItemService{})

	form := url.Values{"username": {"johndoe"}}
	w := doRequest(s, http.MethodPost, "/token", form.Encode(), withForm())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}

func TestWhoami(t *testing.T) {
	is := &fakeItemService{
		listOwnedFn: func(ctx context.Context, ownerID int64) ([]*models.Item, error) {
			return []*models.Item{sampleItem()}, nil
		},
	}
	s := newTestServer(&fakeUserService{}, is)

	w := doRequest(s, http.MethodGet, "/users/me/", "", withBearer(t))
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d, body: %s", w.Code, w.Body.String())
	}

	var resp userResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Username != "johndoe" {
		t.Fatalf("unexpected username: %q", resp.Username)
	}
	if len(resp.Items) != 1 || resp.Items[0].Name != "widget" {
		t.Fatalf("owned items missing: %s", w.Body.String())
	}
}

func TestWhoami_RequiresToken(t *testing.T) {
	s := newTestServer(&fakeUserService{}, &fakeItemService{})

	w := doRequest(s, http.MethodGet, "/users/me/", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}
