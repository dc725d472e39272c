package audio

// HostDevice is a device record as reported by the host audio driver.
// Fields are copied verbatim from the driver; anything the driver does not
// report stays at its zero value.
type HostDevice struct {
	Name              string
	HostAPI           string
	MaxInputChannels  int
	MaxOutputChannels int
	DefaultSampleRate float64
}

// Host is a handle to the platform audio subsystem.
//
// Production code uses the PortAudio-backed handle from Open. Tests
// substitute a fake so collectors can run on machines without audio hardware.
type Host interface {
	// Devices returns the driver's device list in enumeration order.
	Devices() ([]HostDevice, error)

	// DefaultInput reports the index of the default input device.
	// ok is false when the host has no default input device.
	DefaultInput() (index int, ok bool)

	// DefaultOutput reports the index of the default output device.
	// ok is false when the host has no default output device.
	DefaultOutput() (index int, ok bool)

	// Close releases the underlying driver handle.
	Close() error
}
