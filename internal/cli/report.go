package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alnah/go-soundcheck/internal/config"
	"github.com/alnah/go-soundcheck/internal/diag"
)

// RootCmd creates the soundcheck root command. There is a single command
// surface: collect the diagnostic report once and print it.
func RootCmd(env *Env) *cobra.Command {
	var (
		credentialsPath string
		jsonOutput      bool
	)

	cmd := &cobra.Command{
		Use:   "soundcheck",
		Short: "Report audio devices, capture defaults, and credential status",
		Long: `Collect a self-diagnostic report of the audio capture environment:
runtime facts, capture defaults, the host's audio device inventory, and
whether OAuth2 credential material is present on disk.

The report prints as human-readable text by default; --json emits a
machine-readable document with sorted keys instead.`,
		Example: `  soundcheck
  soundcheck --json
  soundcheck --credentials ~/secrets/credentials.json --json`,
		Args: cobra.NoArgs,
		// Silence Cobra's default error/usage printing; we handle it ourselves.
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(env, credentialsPath, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&credentialsPath, "credentials", config.DefaultCredentialsPath(),
		"Path to read OAuth2 credentials")
	cmd.Flags().BoolVar(&jsonOutput, "json", false,
		"Emit the report as JSON (two-space indent, sorted keys)")

	return cmd
}

// runReport opens the audio host, builds the report, and prints it to stdout
// in the requested mode. The only failure path is the audio subsystem: the
// host failing to open or to enumerate devices.
func runReport(env *Env, credentialsPath string, jsonOutput bool) error {
	host, err := env.HostOpener.Open()
	if err != nil {
		return err
	}
	defer func() { _ = host.Close() }()

	report, err := diag.BuildReport(host, credentialsPath, env.Now)
	if err != nil {
		return err
	}

	var out string
	if jsonOutput {
		out, err = diag.RenderJSON(report)
		if err != nil {
			return err
		}
	} else {
		out = diag.RenderText(report)
	}

	_, _ = fmt.Fprintln(env.Stdout, out)
	return nil
}
