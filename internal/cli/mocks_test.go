package cli

import (
	"sync"

	"github.com/alnah/go-soundcheck/internal/audio"
)

// ---------------------------------------------------------------------------
// Mock HostOpener
// ---------------------------------------------------------------------------

type mockHostOpener struct {
	OpenFunc func() (audio.Host, error)

	mu        sync.Mutex
	openCalls int
}

func (m *mockHostOpener) Open() (audio.Host, error) {
	m.mu.Lock()
	m.openCalls++
	m.mu.Unlock()

	if m.OpenFunc != nil {
		return m.OpenFunc()
	}
	return &fakeHost{}, nil
}

func (m *mockHostOpener) OpenCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.openCalls
}

// ---------------------------------------------------------------------------
// Fake audio.Host
// ---------------------------------------------------------------------------

type fakeHost struct {
	devices    []audio.HostDevice
	devicesErr error

	input    int
	inputOK  bool
	output   int
	outputOK bool

	mu     sync.Mutex
	closed bool
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
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeHost) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}
