package diag

import (
	"fmt"
	"strings"

	"github.com/alnah/go-soundcheck/internal/format"
)

// RenderText renders the report as a human-readable multi-section document.
// Section order is fixed. An empty device inventory leaves the devices
// section header-only; absent values render as their literal textual
// representation ("None"), never elided.
func RenderText(r Report) string {
	lines := []string{
		"soundcheck self-diagnostics",
		"",
		"Reflection:",
	}
	lines = appendBullets(lines, "  Philosophy:", r.Reflection.Philosophy)
	lines = appendBullets(lines, "  Existential questions:", r.Reflection.ExistentialQuestions)
	lines = appendBullets(lines, "  Conversational prompts:", r.Reflection.ConversationalPrompts)
	lines = appendBullets(lines, "  Learning notes:", r.Reflection.LearningNotes)
	lines = appendBullets(lines, "  Grounding:", r.Reflection.Grounding)

	lines = append(lines,
		"",
		"Runtime:",
		fmt.Sprintf("  Go version: %s", r.Runtime.GoVersion),
		fmt.Sprintf("  Executable: %s", r.Runtime.Executable),
		fmt.Sprintf("  Platform: %s", r.Runtime.Platform),
		fmt.Sprintf("  CWD: %s", r.Runtime.CWD),
		fmt.Sprintf("  Timestamp (UTC): %s", r.Runtime.TimestampUTC),
		"",
		"Audio defaults:",
		fmt.Sprintf("  Sample rate: %d", r.AudioDefaults.SampleRate),
		fmt.Sprintf("  Sample width: %d", r.AudioDefaults.SampleWidth),
		fmt.Sprintf("  Iter size: %d", r.AudioDefaults.IterSize),
		fmt.Sprintf("  Device block size: %d", r.AudioDefaults.DeviceBlockSize),
		fmt.Sprintf("  Device flush size: %d", r.AudioDefaults.DeviceFlushSize),
		fmt.Sprintf("  Default input device: %s", format.OptionalIndex(r.AudioDefaults.DefaultInputDevice)),
		fmt.Sprintf("  Default output device: %s", format.OptionalIndex(r.AudioDefaults.DefaultOutputDevice)),
		"",
		"Credentials:",
		fmt.Sprintf("  Path: %s", r.Credentials.Path),
		fmt.Sprintf("  Exists: %t", r.Credentials.Exists),
		"",
		"Audio devices:",
	)

	for _, d := range r.AudioDevices {
		lines = append(lines, fmt.Sprintf("  [%d] %s (in:%d out:%d, rate:%s)",
			d.Index, d.Name, d.MaxInputChannels, d.MaxOutputChannels,
			format.SampleRate(d.DefaultSampleRate)))
	}

	return strings.Join(lines, "\n")
}

// appendBullets writes a sub-list header followed by one indented bullet
// line per entry.
func appendBullets(lines []string, header string, entries []string) []string {
	lines = append(lines, header)
	for _, entry := range entries {
		lines = append(lines, "    - "+entry)
	}
	return lines
}
