package clangformat

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/cfmt-cli/cfmt/key"
	"github.com/cfmt-cli/cfmt/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// ToolInvocationError describes an external binary invocation that failed to
// start or exited with a non-zero status.
type ToolInvocationError struct {
	Binary string
	Stderr string
	Err    error
}

func (e *ToolInvocationError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %s\n%s", e.Binary, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s: %s", e.Binary, e.Err)
}

func (e *ToolInvocationError) Unwrap() error {
	return e.Err
}

// Runner invokes the external formatting binary.
type Runner struct {
	Binary string
}

// NewRunner returns a Runner bound to the configured binary name.
func NewRunner() *Runner {
	return &Runner{Binary: viper.GetString(key.FormatBinary)}
}

// run executes the binary once with the given arguments, blocking until it
// exits, and captures both output streams.
func (r *Runner) run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(r.Binary, args...)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	log.Debugf("running %s %s", r.Binary, strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		return "", "", &ToolInvocationError{
			Binary: r.Binary,
			Stderr: strings.TrimSpace(errBuf.String()),
			Err:    err,
		}
	}

	return outBuf.String(), errBuf.String(), nil
}

// QueryVersion asks the binary to report its version and parses the result.
// The binary emitting anything other than its canonical version line means its
// output contract changed; that aborts the process rather than guessing.
func (r *Runner) QueryVersion() (Version, error) {
	stdout, _, err := r.run("--version")
	if err != nil {
		return Version{}, err
	}

	return lo.Must(ParseVersion(stdout)), nil
}

// formatArgs builds the argument list for a single formatting invocation.
func formatArgs(dryRun bool, files []string) []string {
	args := []string{"-i", "--verbose"}
	if dryRun {
		args = []string{"--dry-run", "-Werror", "--verbose"}
	}
	return append(args, files...)
}

// Format runs the binary exactly once over the whole file set and relays its
// output. With dryRun the binary reports violations instead of rewriting.
func (r *Runner) Format(files []string, dryRun bool) error {
	stdout, stderr, err := r.run(formatArgs(dryRun, files)...)
	if err != nil {
		return err
	}

	if out := strings.TrimRight(stdout, " \t\n"); out != "" {
		fmt.Println(out)
	}
	if out := strings.TrimRight(stderr, " \t\n"); out != "" {
		fmt.Println(out)
	}

	return nil
}
