package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// Compile-time interface implementation check.
var _ Host = portAudioHost{}

// portAudioHost implements Host on top of PortAudio. The handle owns the
// library initialization; Close terminates it.
type portAudioHost struct{}

// Open initializes the host audio subsystem and returns a handle to it.
// Initialization failure wraps ErrHostUnavailable.
func Open() (Host, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHostUnavailable, err)
	}
	return portAudioHost{}, nil
}

func (portAudioHost) Devices() ([]HostDevice, error) {
	infos, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("query audio devices: %w", err)
	}

	devices := make([]HostDevice, 0, len(infos))
	for _, info := range infos {
		devices = append(devices, fromPortAudio(info))
	}
	return devices, nil
}

func (portAudioHost) DefaultInput() (int, bool) {
	info, err := portaudio.DefaultInputDevice()
	if err != nil || info == nil {
		return 0, false
	}
	return info.Index, true
}

func (portAudioHost) DefaultOutput() (int, bool) {
	info, err := portaudio.DefaultOutputDevice()
	if err != nil || info == nil {
		return 0, false
	}
	return info.Index, true
}

func (portAudioHost) Close() error {
	return portaudio.Terminate()
}

// fromPortAudio copies the driver fields the report cares about.
func fromPortAudio(info *portaudio.DeviceInfo) HostDevice {
	if info == nil {
		return HostDevice{}
	}

	d := HostDevice{
		Name:              info.Name,
		MaxInputChannels:  info.MaxInputChannels,
		MaxOutputChannels: info.MaxOutputChannels,
		DefaultSampleRate: info.DefaultSampleRate,
	}
	if info.HostApi != nil {
		d.HostAPI = info.HostApi.Name
	}
	return d
}
