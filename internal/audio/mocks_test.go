package audio

// fakeHost is a Host backed by canned data, for tests that must not touch
// real audio hardware.
type fakeHost struct {
	devices    []HostDevice
	devicesErr error

	input    int
	inputOK  bool
	output   int
	outputOK bool
}

func (f *fakeHost) Devices() ([]HostDevice, error) {
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
