package audio

import "fmt"

// DeviceInfo is one normalized entry in the diagnostic device inventory.
//
// Every field is always present; values the driver did not report stay at
// their zero value, so renderers never have to special-case missing fields.
// Index is the 0-based position in the driver's enumeration order. It is
// stable within one query, but not across reboots or driver changes.
type DeviceInfo struct {
	Index             int
	Name              string
	HostAPI           string
	MaxInputChannels  int
	MaxOutputChannels int
	DefaultSampleRate float64
}

// Enumerate queries the host for its device list and normalizes each record.
// The host's enumeration order is preserved. A failure here is propagated to
// the caller: the device list reflects the real host, so fabricating one
// would make the diagnostics worthless.
func Enumerate(h Host) ([]DeviceInfo, error) {
	raw, err := h.Devices()
	if err != nil {
		return nil, fmt.Errorf("audio device enumeration: %w", err)
	}

	devices := make([]DeviceInfo, len(raw))
	for i, d := range raw {
		devices[i] = DeviceInfo{
			Index:             i,
			Name:              d.Name,
			HostAPI:           d.HostAPI,
			MaxInputChannels:  d.MaxInputChannels,
			MaxOutputChannels: d.MaxOutputChannels,
			DefaultSampleRate: d.DefaultSampleRate,
		}
	}
	return devices, nil
}
