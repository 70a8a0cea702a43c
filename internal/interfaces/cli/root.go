package cli

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/quazii/quaziiui-installer/internal/core/domain"
	"github.com/quazii/quaziiui-installer/internal/interfaces/di"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// APIBaseEnvVar overrides the release API origin, mainly for testing
// against a local server.
const APIBaseEnvVar = "QUAZIIUI_API_BASE"

// NewRootCommand builds the root command. Running it without a
// subcommand performs the install.
func NewRootCommand(container *di.Container) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quaziiui-installer",
		Short: "Installs the QuaziiUI addon into World of Warcraft",
		Long: `quaziiui-installer locates your World of Warcraft installation,
downloads the latest QuaziiUI release, and installs it into the retail
AddOns directory, replacing any prior QuaziiUI installation.

If auto-detection cannot find the game, pass the installation root
with --path.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, container)
		},
	}

	// Set custom version template
	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	// Add persistent flags
	rootCmd.PersistentFlags().String("path", "", "World of Warcraft installation root (skips auto-detection)")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().String("log-file", "", "Append console output to this file")

	// Add subcommands
	rootCmd.AddCommand(NewUninstallCommand(container))
	rootCmd.AddCommand(NewLocateCommand(container))

	return rootCmd
}

// buildRunConfig assembles the per-run configuration from flags and
// environment.
func buildRunConfig(cmd *cobra.Command) domain.RunConfig {
	path, _ := cmd.Flags().GetString("path")
	force, _ := cmd.Flags().GetBool("force")
	logFile, _ := cmd.Flags().GetString("log-file")

	return domain.NewRunConfig(path, force, logFile, os.Getenv(APIBaseEnvVar))
}

// runInstall executes the full install pipeline.
func runInstall(cmd *cobra.Command, container *di.Container) error {
	cfg := buildRunConfig(cmd)

	rt := container.BuildRuntime(cfg)
	defer rt.Log.Close()

	summary, err := rt.Pipeline.Run(cmd.Context())
	if err != nil {
		return err
	}

	rt.Log.Debugf("completed in %s", summary.Duration.Round(time.Millisecond))
	return nil
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute runs the root command and exits the process with the code
// classified from the failure. Pipeline failures are already logged
// when they reach here; only errors that never passed through a
// logger are printed.
func Execute(container *di.Container) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.Execute(); err != nil {
		code := domain.ExitCodeFor(err)
		if code == domain.ExitGeneralError {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(int(code))
	}
}
