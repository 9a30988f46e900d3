package launch

import (
	"github.com/kballard/go-shellquote"

	"github.com/warg-sh/launcher/pkg/config"
)

// DefaultServer is the binary launched when no override is given.
const DefaultServer = "warg-server"

// Command is the argument vector for one server invocation.
type Command struct {
	Name string
	Args []string
}

// Build constructs the server invocation from the configuration. The
// operator-key flag appears only when a key is present; extra args follow
// the fixed flags verbatim.
func Build(server string, cfg config.Config) Command {
	args := []string{"--content-dir", cfg.ContentDir}
	if cfg.OperatorKey != "" {
		args = append(args, "--operator-key", cfg.OperatorKey)
	}
	args = append(args, cfg.ExtraArgs...)
	return Command{Name: server, Args: args}
}

// String renders the invocation the way a shell would accept it.
func (c Command) String() string {
	return shellquote.Join(append([]string{c.Name}, c.Args...)...)
}
