package audio

import "errors"

// ErrHostUnavailable indicates the host audio subsystem could not be
// initialized. No meaningful device inventory exists without a working
// driver, so callers treat this as fatal.
var ErrHostUnavailable = errors.New("audio subsystem unavailable")
