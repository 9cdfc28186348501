package auth

import "testing"

// TestIssueAndValidate checks tokens are unique, role-bound, and live
// until revoked.
func TestIssueAndValidate(t *testing.T) {
	s := NewSessionStore()

	adminToken, err := s.Issue(RoleAdmin, "admin")
	if err != nil {
		t.Fatalf("Issue(admin) returned error: %v", err)
	}
	userToken, err := s.Issue(RoleUser, "visitor@example.org")
	if err != nil {
		t.Fatalf("Issue(user) returned error: %v", err)
	}

	if adminToken == userToken {
		t.Fatal("admin and user tokens collided")
	}
	if len(adminToken) != 48 {
		t.Errorf("token length = %d, want 48 hex chars", len(adminToken))
	}

	if !s.Validate(adminToken, RoleAdmin) {
		t.Error("admin token rejected for admin role")
	}
	if s.Validate(userToken, RoleAdmin) {
		t.Error("user token accepted for admin role")
	}
	if !s.Validate(userToken, RoleUser) {
		t.Error("user token rejected for user role")
	}
	if s.Validate("", RoleAdmin) {
		t.Error("empty token accepted")
	}
	if s.Validate("deadbeef", RoleUser) {
		t.Error("unknown token accepted")
	}
}

// TestValidateAny checks the any-role check used by upload routes.
func TestValidateAny(t *testing.T) {
	s := NewSessionStore()

	adminToken, _ := s.Issue(RoleAdmin, "admin")
	userToken, _ := s.Issue(RoleUser, "visitor@example.org")

	if !s.ValidateAny(adminToken) || !s.ValidateAny(userToken) {
		t.Error("valid tokens rejected by ValidateAny")
	}
	if s.ValidateAny("nope") {
		t.Error("unknown token accepted by ValidateAny")
	}
}

// TestRevoke checks a revoked token stops validating immediately.
func TestRevoke(t *testing.T) {
	s := NewSessionStore()

	token, _ := s.Issue(RoleAdmin, "admin")
	s.Revoke(token)

	if s.Validate(token, RoleAdmin) {
		t.Error("revoked token still validates")
	}
}
