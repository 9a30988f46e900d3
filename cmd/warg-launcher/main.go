package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/warg-sh/launcher/pkg/config"
	"github.com/warg-sh/launcher/pkg/launch"
)

// Version is set at build time via ldflags
var Version = "dev"

// Reserved launcher-side exit codes. Child exit codes pass through untouched.
const (
	exitConfigError = 78  // sysexits EX_CONFIG
	exitLaunchError = 127 // shell convention for unlaunchable commands
)

// Error classes mapped to reserved exit codes in main.
var (
	errConfig = errors.New("configuration error")
	errLaunch = errors.New("launch error")
)

var (
	configFile string
	serverName string
	dryRun     bool
)

var rootCmd = &cobra.Command{
	Use:          "warg-launcher",
	Short:        "Start warg-server with flags derived from the environment",
	Long:         "warg-launcher reads CONTENT_DIR and WARG_OPERATOR_KEY from the\nenvironment, builds the matching warg-server invocation, and replaces\nitself with the server, forwarding its exit status.",
	Version:      Version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runLaunch,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to TOML defaults file (environment wins)")
	rootCmd.PersistentFlags().StringVar(&serverName, "server", launch.DefaultServer, "server binary to launch")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the invocation instead of launching")
}

func runLaunch(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile, &config.RealEnvGetter{})
	if err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}

	invocation := launch.Build(serverName, cfg)

	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), invocation.String())
		return nil
	}

	err = (&launch.RealExecutor{}).Exec(invocation.Name, invocation.Args)
	if err == nil {
		// Spawn fallback only: the child ran and exited cleanly.
		return nil
	}
	if code, ok := launch.ExitStatus(err); ok {
		// The child ran; its status is ours.
		os.Exit(code)
	}
	return fmt.Errorf("%w: starting %s: %v", errLaunch, invocation.Name, err)
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, errConfig):
		return exitConfigError
	case errors.Is(err, errLaunch):
		return exitLaunchError
	}
	return 1
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}
