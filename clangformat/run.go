package clangformat

import (
	"fmt"

	"github.com/cfmt-cli/cfmt/icon"
	"github.com/cfmt-cli/cfmt/log"
	"github.com/cfmt-cli/cfmt/style"
	"github.com/cfmt-cli/cfmt/util"
)

// Options configures a single formatting run.
type Options struct {
	// Paths are the directory or file arguments to expand and format, in order.
	Paths []string

	// DryRun reports style violations without rewriting files.
	DryRun bool
}

// Run executes the whole pipeline: version check, file discovery, then one
// formatting invocation. Any failure is terminal; nothing is retried.
func Run(options *Options) error {
	runner := NewRunner()

	version, err := runner.QueryVersion()
	if err != nil {
		return err
	}

	if version.Less(RequiredVersion) {
		return fmt.Errorf("clang-format version is too old: requires %s but is %s", RequiredVersion, version)
	}

	fmt.Printf("Using clang-format version %s\n", version)

	if version.Major > RequiredVersion.Major {
		note := fmt.Sprintf("Major version used is greater than tested (%d), might behave differently", RequiredVersion.Major)
		fmt.Printf("%s %s\n", style.Warning(icon.Get(icon.Warn)+" NOTE:"), note)
		log.Warn(note)
	}

	files := Discover(options.Paths)
	if len(files) == 0 {
		fmt.Printf("%s %s\n", style.Warning(icon.Get(icon.Warn)+" WARN:"), "no files to format")
		return nil
	}

	log.Infof("formatting %s", util.Quantify(len(files), "file", "files"))
	return runner.Format(files, options.DryRun)
}
