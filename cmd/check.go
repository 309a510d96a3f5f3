// Package cmd implements the command-line interface for cfmt.
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/cfmt-cli/cfmt/color"
	"github.com/cfmt-cli/cfmt/constant"
	"github.com/cfmt-cli/cfmt/icon"
	"github.com/cfmt-cli/cfmt/key"
	"github.com/cfmt-cli/cfmt/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// CheckDependencies verifies the availability of required system dependencies.
// The current implementation validates the presence of the configured
// formatting binary in the system PATH.
func CheckDependencies() {
	binary := viper.GetString(key.FormatBinary)
	if _, err := exec.LookPath(binary); err != nil {
		printMissingDependencyError(binary)
		os.Exit(1)
	}
}

// installHint suggests a platform-specific install command for the missing binary.
func installHint(dep string) mo.Option[string] {
	switch runtime.GOOS {
	case constant.Darwin:
		return mo.Some("brew install " + dep)
	case constant.Linux:
		return mo.Some("sudo apt install " + dep)
	case constant.Windows:
		return mo.Some("choco install llvm")
	default:
		return mo.None[string]()
	}
}

func printMissingDependencyError(dep string) {
	box := style.New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep)

	suggestion := ""
	if hint, ok := installHint(dep).Get(); ok {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(color.Purple).Bold(true).Render(hint))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
