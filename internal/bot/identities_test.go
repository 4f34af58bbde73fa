package bot

import "testing"

func TestFallbackIdentityCountsAsBot(t *testing.T) {
	// No pool is loaded in this test binary, so the fallback path applies.
	identity := GetBotIdentity(7)
	if identity.UserID == "" {
		t.Fatal("fallback identity has no user ID")
	}
	if !IsBot(identity.UserID) {
		t.Fatalf("IsBot(%q) = false for a fabricated bot identity", identity.UserID)
	}
	if GetBotDisplayName(identity.UserID) == "" {
		t.Errorf("fallback identity %q has no display name", identity.UserID)
	}
}
