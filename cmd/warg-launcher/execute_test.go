package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warg-sh/launcher/pkg/config"
)

func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	resetFlags(rootCmd)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Value.Type() == "stringSlice" || f.Value.Type() == "intSlice" {
			_ = f.Value.Set("")
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// clearLauncherEnv pins every consumed variable to empty (absent) so results
// don't depend on the machine running the tests.
func clearLauncherEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvContentDir, "")
	t.Setenv(config.EnvOperatorKey, "")
	t.Setenv(config.EnvServerOpts, "")
}

func TestVersionFlag(t *testing.T) {
	output, err := executeCommand("--version")
	require.NoError(t, err)
	assert.Contains(t, output, "warg-launcher")
}

func TestHelpFlag(t *testing.T) {
	output, err := executeCommand("--help")
	require.NoError(t, err)
	assert.Contains(t, output, "warg-launcher")
	assert.Contains(t, output, "check")
}

func TestDryRun(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "content dir only",
			env:  map[string]string{config.EnvContentDir: "/data"},
			want: "warg-server --content-dir /data\n",
		},
		{
			name: "with operator key",
			env: map[string]string{
				config.EnvContentDir:  "/data",
				config.EnvOperatorKey: "abc123",
			},
			want: "warg-server --content-dir /data --operator-key abc123\n",
		},
		{
			name: "empty operator key omitted",
			env: map[string]string{
				config.EnvContentDir:  "/data",
				config.EnvOperatorKey: "",
			},
			want: "warg-server --content-dir /data\n",
		},
		{
			name: "server opts appended",
			env: map[string]string{
				config.EnvContentDir: "/data",
				config.EnvServerOpts: "--log-level debug",
			},
			want: "warg-server --content-dir /data --log-level debug\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearLauncherEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			output, err := executeCommand("--dry-run")
			require.NoError(t, err)
			assert.Equal(t, tt.want, output)
		})
	}
}

func TestDryRun_ServerOverride(t *testing.T) {
	clearLauncherEnv(t)
	t.Setenv(config.EnvContentDir, "/data")

	output, err := executeCommand("--dry-run", "--server", "./bin/warg-server")
	require.NoError(t, err)
	assert.Equal(t, "./bin/warg-server --content-dir /data\n", output)
}

func TestMissingContentDir(t *testing.T) {
	clearLauncherEnv(t)

	_, err := executeCommand("--dry-run")
	require.Error(t, err)
	assert.ErrorIs(t, err, errConfig)
}

func TestBadServerOpts(t *testing.T) {
	clearLauncherEnv(t)
	t.Setenv(config.EnvContentDir, "/data")
	t.Setenv(config.EnvServerOpts, `--flag "unterminated`)

	_, err := executeCommand("--dry-run")
	require.Error(t, err)
	assert.ErrorIs(t, err, errConfig)
}

func TestCheckCommand(t *testing.T) {
	t.Run("passes with resolvable server", func(t *testing.T) {
		clearLauncherEnv(t)
		t.Setenv(config.EnvContentDir, t.TempDir())

		// sh stands in for the server binary; PATH resolution is what matters.
		_, err := executeCommand("check", "--server", "sh")
		assert.NoError(t, err)
	})

	t.Run("fails when server is missing", func(t *testing.T) {
		clearLauncherEnv(t)
		t.Setenv(config.EnvContentDir, t.TempDir())

		_, err := executeCommand("check", "--server", "warg-launcher-no-such-binary-12345")
		assert.ErrorIs(t, err, ErrCheckFailed)
	})

	t.Run("fails without content dir", func(t *testing.T) {
		clearLauncherEnv(t)

		_, err := executeCommand("check", "--server", "sh")
		assert.ErrorIs(t, err, ErrCheckFailed)
	})
}
