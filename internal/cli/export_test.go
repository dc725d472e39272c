package cli

// Export internal functions for testing.

// RunReport exports runReport for testing.
var RunReport = runReport
