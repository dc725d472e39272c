// Package diag collects host diagnostics and renders them as a report.
//
// Each collector is a pure function over the host environment: it reads,
// never writes, and returns an independent value record. The aggregate
// Report is built once per invocation and discarded after rendering.
package diag

import (
	"fmt"
	"os"
	"runtime"
	"time"
)

// RuntimeInfo captures facts about the running process and its host OS.
type RuntimeInfo struct {
	TimestampUTC string
	GoVersion    string
	Executable   string
	Platform     string
	CWD          string
}

// CollectRuntime gathers process and platform facts. Every source is always
// available in a live process; path lookups that fail degrade to an empty
// string rather than aborting the diagnostics.
func CollectRuntime(now func() time.Time) RuntimeInfo {
	exe, _ := os.Executable()
	cwd, _ := os.Getwd()

	return RuntimeInfo{
		TimestampUTC: now().UTC().Format("2006-01-02T15:04:05Z"),
		GoVersion:    runtime.Version(),
		Executable:   exe,
		Platform:     fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		CWD:          cwd,
	}
}
