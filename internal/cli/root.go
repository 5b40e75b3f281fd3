package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = charmlog.DebugLevel
	LogInfo  = charmlog.InfoLevel
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version and the
// version command. main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// rootOpts holds the persistent flags shared by every subcommand.
type rootOpts struct {
	verbose bool
	config  string
}

// NewRootCommand builds the lvdist command tree. Logs go to the command's
// error writer; results go to its output writer.
func NewRootCommand() *cobra.Command {
	var opts rootOpts

	root := &cobra.Command{
		Use:          "lvdist",
		Short:        "lvdist computes squared Euclidean distance transforms",
		Long:         `lvdist reads a binary grid as text and writes, for every cell, the squared Euclidean distance to the nearest feature cell.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogInfo
			if opts.verbose {
				level = LogDebug
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(versionString())
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.config, "config", "", "TOML file with transform defaults")

	root.AddCommand(newTransformCmd(&opts))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the lvdist CLI with ctx, which main cancels on interrupt.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func versionString() string {
	return fmt.Sprintf("lvdist %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), versionString())
			return err
		},
	}
}
