package domain_test

import (
	"regexp"
	"strings"
	"testing"

	"go.cachet.dev/cachet/internal/core/domain"
)

func TestBuildKey_FourSegments(t *testing.T) {
	vh := domain.ComposeFingerprint(domain.ToolchainFingerprint{"node": "24.11.0"}, "pnpm", "9.1.0", "")
	ch := domain.HashString("X")

	key := domain.BuildKey("linux", vh, "main", ch)

	pattern := regexp.MustCompile(`^linux-[0-9a-f]{8}-[0-9a-f]{8}-[0-9a-f]{8}$`)
	if !pattern.MatchString(key.String()) {
		t.Errorf("key %q does not match the 4-segment pattern", key.String())
	}
}

func TestBuildKey_EmptyBranchUsesSentinel(t *testing.T) {
	vh := domain.HashString("v")
	ch := domain.HashString("c")

	key := domain.BuildKey("linux", vh, "", ch)

	if key.BranchHash == "" {
		t.Fatal("expected a branch hash even with no branch")
	}
	if parts := strings.Split(key.String(), "-"); len(parts) != 4 {
		t.Errorf("expected exactly 4 segments, got %d", len(parts))
	}
	// The sentinel must not collide with a real branch literally named "".
	withBranch := domain.BuildKey("linux", vh, "main", ch)
	if key.BranchHash == withBranch.BranchHash {
		t.Error("sentinel branch hash collides with a real branch hash")
	}
}

func TestRestoreChain_Order(t *testing.T) {
	key := domain.BuildKey("linux", domain.HashString("v"), "main", domain.HashString("c"))

	chain := key.RestoreChain(false)
	if len(chain) != 2 {
		t.Fatalf("expected 2 fallback prefixes, got %d", len(chain))
	}

	same := "linux-" + key.VersionHash + "-" + key.BranchHash + "-"
	cross := "linux-" + key.VersionHash + "-"
	if chain[0] != same {
		t.Errorf("expected same-branch prefix first, got %q", chain[0])
	}
	if chain[1] != cross {
		t.Errorf("expected cross-branch prefix second, got %q", chain[1])
	}

	// Every prefix must actually prefix the primary key.
	for _, p := range chain {
		if !strings.HasPrefix(key.String(), p) {
			t.Errorf("prefix %q does not prefix primary key %q", p, key.String())
		}
	}
}

func TestRestoreChain_EmptyWhenBusted(t *testing.T) {
	key := domain.BuildKey("linux", domain.HashString("v"), "main", domain.HashString("c"))

	if chain := key.RestoreChain(true); len(chain) != 0 {
		t.Errorf("expected empty chain in exact-match-only mode, got %v", chain)
	}
}

func TestClassifyHit(t *testing.T) {
	primary := "linux-aaaaaaaa-bbbbbbbb-cccccccc"

	cases := []struct {
		name    string
		matched string
		want    domain.HitState
	}{
		{"miss", "", domain.HitMiss},
		{"exact", primary, domain.HitExact},
		{"partial", "linux-aaaaaaaa-bbbbbbbb-dddddddd", domain.HitPartial},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.ClassifyHit(tc.matched, primary); got != tc.want {
				t.Errorf("ClassifyHit(%q) = %v, want %v", tc.matched, got, tc.want)
			}
		})
	}
}
