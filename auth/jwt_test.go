package auth

import "testing"

func TestInitSecretSignsAndVerifies(t *testing.T) {
	Init("segredo-da-configuracao")
	t.Cleanup(func() { Init("") })

	token, err := GenerateToken(42, "user@gmail.com", 7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 || claims.Role != RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

// The configured secret must win over the environment variable when both are
// present.
func TestInitSecretOverridesEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-do-ambiente")
	Init("segredo-da-configuracao")
	t.Cleanup(func() { Init("") })

	token, err := GenerateToken(1, "user@gmail.com", 7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	Init("")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected env-keyed validation of a config-keyed token to fail")
	}

	Init("segredo-da-configuracao")
	if _, err := ValidateToken(token); err != nil {
		t.Fatalf("validate with config secret: %v", err)
	}
}

func TestEnvSecretFallback(t *testing.T) {
	Init("")
	t.Setenv("JWT_SECRET", "segredo-do-ambiente")

	token, err := GenerateAdminToken("admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Role != RoleAdmin {
		t.Fatalf("expected admin role, got %q", claims.Role)
	}
}
