package statefile

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
)

// runIDVars are checked in order for a CI-provided run identity.
var runIDVars = []string{
	"GITHUB_RUN_ID",
	"CI_PIPELINE_ID",
	"BITRISE_BUILD_SLUG",
	"BUILD_NUMBER",
}

// RunKey derives the key that scopes one pipeline run's handoff record:
// a compact hash of the workspace root plus the CI run identity. Outside CI
// the identity degrades to "local", which still keeps per-workspace records
// apart.
func RunKey(workDir string) string {
	runID := "local"
	for _, v := range runIDVars {
		if val := os.Getenv(v); val != "" {
			runID = val
			break
		}
	}

	h := xxhash.New()
	_, _ = h.WriteString(workDir)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(runID)

	return fmt.Sprintf("%016x", h.Sum64())
}
