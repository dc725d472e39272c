package audio

// Capture pipeline constants. These mirror the audio helpers of the assistant
// library this tool reports on; they are build-time fixed, not host-dependent.
const (
	DefaultSampleRate      = 16000 // Hz
	DefaultSampleWidth     = 2     // bytes per sample
	DefaultIterSize        = 3200  // bytes per read iteration
	DefaultDeviceBlockSize = 6400  // bytes per device write
	DefaultDeviceFlushSize = 25600 // bytes of silence flushed on stop
)

// Defaults describes the audio configuration the capture pipeline would use
// on this host: the fixed constants above plus the host's default device
// selection.
type Defaults struct {
	SampleRate      int
	SampleWidth     int
	IterSize        int
	DeviceBlockSize int
	DeviceFlushSize int

	// Nil when the host reports no default device of that class.
	DefaultInputDevice  *int
	DefaultOutputDevice *int
}

// CollectDefaults reads the host's default device registry and combines it
// with the fixed constants. Absence of a default device is not an error; it
// is reported as a nil index.
func CollectDefaults(h Host) Defaults {
	d := Defaults{
		SampleRate:      DefaultSampleRate,
		SampleWidth:     DefaultSampleWidth,
		IterSize:        DefaultIterSize,
		DeviceBlockSize: DefaultDeviceBlockSize,
		DeviceFlushSize: DefaultDeviceFlushSize,
	}

	if idx, ok := h.DefaultInput(); ok {
		d.DefaultInputDevice = &idx
	}
	if idx, ok := h.DefaultOutput(); ok {
		d.DefaultOutputDevice = &idx
	}
	return d
}
