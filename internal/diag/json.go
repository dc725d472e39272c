package diag

import (
	"encoding/json"
	"fmt"
)

// RenderJSON serializes the report with two-space indentation. The document
// is assembled from maps so that encoding/json emits keys in lexicographic
// order at every nesting level.
func RenderJSON(r Report) (string, error) {
	out, err := json.MarshalIndent(reportDocument(r), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	return string(out), nil
}

// reportDocument maps the report onto its wire key set. Absent default
// devices serialize as null.
func reportDocument(r Report) map[string]any {
	devices := make([]any, len(r.AudioDevices))
	for i, d := range r.AudioDevices {
		devices[i] = map[string]any{
			"index":               d.Index,
			"name":                d.Name,
			"hostapi":             d.HostAPI,
			"max_input_channels":  d.MaxInputChannels,
			"max_output_channels": d.MaxOutputChannels,
			"default_samplerate":  d.DefaultSampleRate,
		}
	}

	return map[string]any{
		"runtime": map[string]any{
			"timestamp_utc": r.Runtime.TimestampUTC,
			"go_version":    r.Runtime.GoVersion,
			"executable":    r.Runtime.Executable,
			"platform":      r.Runtime.Platform,
			"cwd":           r.Runtime.CWD,
		},
		"audio_defaults": map[string]any{
			"sample_rate":           r.AudioDefaults.SampleRate,
			"sample_width":          r.AudioDefaults.SampleWidth,
			"iter_size":             r.AudioDefaults.IterSize,
			"device_block_size":     r.AudioDefaults.DeviceBlockSize,
			"device_flush_size":     r.AudioDefaults.DeviceFlushSize,
			"default_input_device":  optionalIndex(r.AudioDefaults.DefaultInputDevice),
			"default_output_device": optionalIndex(r.AudioDefaults.DefaultOutputDevice),
		},
		"audio_devices": devices,
		"credentials": map[string]any{
			"credentials_path":   r.Credentials.Path,
			"credentials_exists": r.Credentials.Exists,
		},
		"reflection": map[string]any{
			"philosophy":             r.Reflection.Philosophy,
			"existential_questions":  r.Reflection.ExistentialQuestions,
			"conversational_prompts": r.Reflection.ConversationalPrompts,
			"learning_notes":         r.Reflection.LearningNotes,
			"grounding":              r.Reflection.Grounding,
		},
	}
}

func optionalIndex(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
