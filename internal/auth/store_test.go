package auth_test

import (
	"context"
	"testing"

	"github.com/meera-jewels/meera/internal/auth"
	"github.com/meera-jewels/meera/internal/kv"
)

func newSession(t *testing.T) (*auth.SessionStore, *kv.MemoryStore, *auth.Registry) {
	t.Helper()
	mem := kv.NewMemoryStore()
	reg := auth.NewRegistry()
	return auth.NewSessionStore(context.Background(), reg, mem, "client"), mem, reg
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{"admin credentials", "admin@meerajewels.com", "admin123", true},
		{"customer credentials", "john@example.com", "password123", true},
		{"email case-insensitive", "JOHN@example.com", "password123", true},
		{"wrong password", "john@example.com", "nope", false},
		{"unknown email", "ghost@example.com", "password123", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newSession(t)
			if got := s.Login(context.Background(), tt.email, tt.password); got != tt.want {
				t.Errorf("Login(%q) = %v, want %v", tt.email, got, tt.want)
			}
			if got := s.IsAuthenticated(); got != tt.want {
				t.Errorf("IsAuthenticated = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogin_AdminDerivation(t *testing.T) {
	s, _, _ := newSession(t)
	ctx := context.Background()

	if !s.Login(ctx, "admin@meerajewels.com", "admin123") {
		t.Fatal("admin login failed")
	}
	if !s.IsAdmin() {
		t.Error("IsAdmin = false for admin role")
	}

	s.Logout(ctx)
	if !s.Login(ctx, "john@example.com", "password123") {
		t.Fatal("customer login failed")
	}
	if s.IsAdmin() {
		t.Error("IsAdmin = true for customer role")
	}
}

func TestSubAdminCountsAsAdmin(t *testing.T) {
	u := &auth.User{Role: auth.RoleSubAdmin}
	if !u.IsAdmin() {
		t.Error("sub-admin should pass the admin check")
	}
}

func TestRegister(t *testing.T) {
	s, _, _ := newSession(t)
	ctx := context.Background()

	ok := s.Register(ctx, auth.RegisterInput{
		Name:     "Asha Mehta",
		Email:    "asha@example.com",
		Password: "secret",
		Phone:    "+91 9000000000",
	})
	if !ok {
		t.Fatal("register failed")
	}

	u := s.Current()
	if u == nil {
		t.Fatal("no current user after register")
	}
	if u.Role != auth.RoleCustomer {
		t.Errorf("role = %q, want customer", u.Role)
	}
	if u.ID == "" {
		t.Error("registered user has empty id")
	}
}

func TestRegister_SharedRegistry(t *testing.T) {
	mem := kv.NewMemoryStore()
	reg := auth.NewRegistry()
	ctx := context.Background()

	first := auth.NewSessionStore(ctx, reg, mem, "client-a")
	if !first.Register(ctx, auth.RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "secret"}) {
		t.Fatal("register failed")
	}

	// Another client on the same registry can log in with the new account.
	second := auth.NewSessionStore(ctx, reg, mem, "client-b")
	if !second.Login(ctx, "asha@example.com", "secret") {
		t.Error("login with registered credentials failed on second client")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s, _, _ := newSession(t)
	ctx := context.Background()

	if s.Register(ctx, auth.RegisterInput{Name: "X", Email: "john@example.com", Password: "p"}) {
		t.Error("register with a taken email should fail")
	}
	if s.IsAuthenticated() {
		t.Error("failed registration must not log anyone in")
	}
}

func TestLogout_RemovesPersistedProfile(t *testing.T) {
	s, mem, reg := newSession(t)
	ctx := context.Background()

	if !s.Login(ctx, "john@example.com", "password123") {
		t.Fatal("login failed")
	}
	if _, err := mem.Get(ctx, "user:client"); err != nil {
		t.Fatalf("profile not persisted: %v", err)
	}

	s.Logout(ctx)
	if s.IsAuthenticated() {
		t.Error("still authenticated after logout")
	}
	if _, err := mem.Get(ctx, "user:client"); err == nil {
		t.Error("profile still persisted after logout")
	}

	// A fresh store over the same medium is logged out.
	fresh := auth.NewSessionStore(ctx, reg, mem, "client")
	if fresh.IsAuthenticated() {
		t.Error("fresh store authenticated after logout")
	}
}

func TestReload_RestoresProfile(t *testing.T) {
	mem := kv.NewMemoryStore()
	reg := auth.NewRegistry()
	ctx := context.Background()

	first := auth.NewSessionStore(ctx, reg, mem, "client")
	if !first.Login(ctx, "john@example.com", "password123") {
		t.Fatal("login failed")
	}

	second := auth.NewSessionStore(ctx, reg, mem, "client")
	u := second.Current()
	if u == nil {
		t.Fatal("profile not restored")
	}
	if u.Email != "john@example.com" || u.Name != "John Doe" {
		t.Errorf("restored profile = %+v", u)
	}
}

func TestCorruptProfileMeansLoggedOut(t *testing.T) {
	mem := kv.NewMemoryStore()
	ctx := context.Background()
	if err := mem.Set(ctx, "user:client", "{broken"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := auth.NewSessionStore(ctx, auth.NewRegistry(), mem, "client")
	if s.IsAuthenticated() {
		t.Error("corrupt profile should degrade to logged out")
	}
}
