package diag

import (
	"time"

	"github.com/alnah/go-soundcheck/internal/audio"
)

// Report is the full diagnostic document.
type Report struct {
	Runtime       RuntimeInfo
	AudioDefaults audio.Defaults
	AudioDevices  []audio.DeviceInfo
	Credentials   CredentialsStatus
	Reflection    ReflectionBlock
}

// BuildReport runs every collector once and assembles the aggregate record.
// The collectors share no state, so their order does not matter.
//
// It fails only when device enumeration fails, and the failure is propagated
// unchanged: a broken host audio stack should be visible, not masked by a
// partial report.
func BuildReport(h audio.Host, credentialsPath string, now func() time.Time) (Report, error) {
	devices, err := audio.Enumerate(h)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Runtime:       CollectRuntime(now),
		AudioDefaults: audio.CollectDefaults(h),
		AudioDevices:  devices,
		Credentials:   CollectCredentials(credentialsPath),
		Reflection:    Reflection(),
	}, nil
}
