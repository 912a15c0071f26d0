package domain_test

import (
	"testing"

	"go.cachet.dev/cachet/internal/core/domain"
)

func TestComposeFingerprint_OrderIndependent(t *testing.T) {
	// Maps iterate in randomized order, so build the same logical map twice
	// with different insertion orders and assert digest equality repeatedly.
	a := domain.ToolchainFingerprint{}
	a["node"] = "24.11.0"
	a["python"] = "3.13.1"
	a["go"] = "1.25.3"

	b := domain.ToolchainFingerprint{}
	b["go"] = "1.25.3"
	b["python"] = "3.13.1"
	b["node"] = "24.11.0"

	for i := 0; i < 16; i++ {
		da := domain.ComposeFingerprint(a, "pnpm", "9.1.0", "")
		db := domain.ComposeFingerprint(b, "pnpm", "9.1.0", "")
		if da != db {
			t.Fatalf("digest differs across insertion orders: %q vs %q", da, db)
		}
	}
}

func TestComposeFingerprint_Length(t *testing.T) {
	d := domain.ComposeFingerprint(domain.ToolchainFingerprint{"node": "24.11.0"}, "pnpm", "9.1.0", "")
	if len(d) != domain.DigestLen {
		t.Errorf("expected %d hex chars, got %d (%q)", domain.DigestLen, len(d), d)
	}
}

func TestComposeFingerprint_BustTokenChangesDigest(t *testing.T) {
	tc := domain.ToolchainFingerprint{"node": "24.11.0"}

	plain := domain.ComposeFingerprint(tc, "pnpm", "9.1.0", "")
	busted := domain.ComposeFingerprint(tc, "pnpm", "9.1.0", "verify-2026-08")

	if plain == busted {
		t.Error("expected bust token to change the digest")
	}
}

func TestComposeFingerprint_VersionChangesDigest(t *testing.T) {
	old := domain.ComposeFingerprint(domain.ToolchainFingerprint{"node": "24.11.0"}, "pnpm", "9.1.0", "")
	next := domain.ComposeFingerprint(domain.ToolchainFingerprint{"node": "24.12.0"}, "pnpm", "9.1.0", "")

	if old == next {
		t.Error("expected toolchain version bump to change the digest")
	}
}

func TestHashString_Deterministic(t *testing.T) {
	if domain.HashString("main") != domain.HashString("main") {
		t.Error("expected identical digests for identical input")
	}
	if domain.HashString("main") == domain.HashString("develop") {
		t.Error("expected different digests for different branches")
	}
}
