package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/warg-sh/launcher/pkg/check"
	"github.com/warg-sh/launcher/pkg/config"
	"github.com/warg-sh/launcher/pkg/launch"
	"github.com/warg-sh/launcher/pkg/output"
)

// ErrCheckFailed is returned when a preflight check fails.
var ErrCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the launch environment without starting the server",
	Args:  cobra.NoArgs,
	RunE:  runCheckCmd,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheckCmd(_ *cobra.Command, _ []string) error {
	failed := false
	for _, r := range launchChecks(configFile, &config.RealEnvGetter{}, launch.RealLocator{}, serverName) {
		output.PrintResult(r)
		if !r.OK() {
			failed = true
		}
	}
	if failed {
		return ErrCheckFailed
	}
	return nil
}

// launchChecks reports whether a launch would succeed: required configuration
// present, operator key state, server binary resolvable.
func launchChecks(path string, getter config.EnvGetter, loc launch.Locator, server string) []check.Result {
	var results []check.Result

	cfg, err := config.Load(path, getter)

	content := check.Result{Name: "config: content-dir"}
	switch {
	case errors.Is(err, config.ErrContentDirUnset):
		content.Fail("not set", err)
	case err != nil:
		content.Fail(err.Error(), err)
	default:
		content.Status = check.StatusOK
		content.AddDetailf("path: %s", cfg.ContentDir)
		if _, statErr := os.Stat(cfg.ContentDir); statErr != nil {
			// Informational only; path validation belongs to the server.
			content.AddDetailf("note: %v", statErr)
		}
	}
	results = append(results, content)

	key := check.Result{Name: "config: operator-key", Status: check.StatusOK}
	if cfg.OperatorKey != "" {
		key.AddDetailf("key: %s", maskValue(cfg.OperatorKey))
	} else {
		key.AddDetail("not set, flag omitted")
	}
	results = append(results, key)

	srv := check.Result{Name: fmt.Sprintf("server: %s", server)}
	if binary, lookErr := loc.LookPath(server); lookErr != nil {
		srv.Fail("not found in PATH", lookErr)
	} else {
		srv.Status = check.StatusOK
		srv.AddDetailf("path: %s", binary)
	}
	results = append(results, srv)

	return results
}

func maskValue(value string) string {
	if len(value) <= 6 {
		return "•••"
	}
	return value[:3] + "•••" + value[len(value)-3:]
}
