package diag

import "github.com/alnah/go-soundcheck/internal/audio"

// fakeHost is an audio.Host backed by canned data.
type fakeHost struct {
	devices    []audio.HostDevice
	devicesErr error

	input    int
	inputOK  bool
	output   int
	outputOK bool
}

func (f *fakeHost) Devices() ([]audio.HostDevice, error) {
	return f.devices, f.devicesErr
}

func (f *fakeHost) DefaultInput() (int, bool) {
	return f.input, f.inputOK
}

func (f *fakeHost) DefaultOutput() (int, bool) {
	return f.output, f.outputOK
}

func (f *fakeHost) Close() error {
	return nil
}
