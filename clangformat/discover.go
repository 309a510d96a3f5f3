package clangformat

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cfmt-cli/cfmt/filesystem"
	"github.com/cfmt-cli/cfmt/icon"
	"github.com/cfmt-cli/cfmt/key"
	"github.com/cfmt-cli/cfmt/log"
	"github.com/cfmt-cli/cfmt/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Discover expands the given path arguments into the ordered list of absolute
// file paths to format.
//
// Directories are scanned recursively: files matching the source extension
// group come first, then the header group, each group sorted by path. Explicit
// file arguments pass through verbatim with no extension filtering. Arguments
// that do not resolve to a file or directory are skipped with a warning.
// Overlapping arguments are not deduplicated.
func Discover(paths []string) []string {
	var files []string

	for _, arg := range paths {
		info, err := filesystem.API().Stat(arg)
		if err != nil || !(info.IsDir() || info.Mode().IsRegular()) {
			warn := fmt.Sprintf("%s doesn't exist or is not a file or directory, ignoring", arg)
			fmt.Printf("%s %s\n", style.Warning(icon.Get(icon.Warn)+" WARN:"), warn)
			log.Warn(warn)
			continue
		}

		if info.IsDir() {
			files = append(files, expandDir(arg)...)
			continue
		}

		files = append(files, absolute(arg))
	}

	return files
}

// expandDir collects the directory's source files followed by its header files.
func expandDir(dir string) []string {
	sources := collect(dir, viper.GetStringSlice(key.FormatSourceExtensions))
	headers := collect(dir, viper.GetStringSlice(key.FormatHeaderExtensions))
	return append(sources, headers...)
}

// collect walks dir and returns the sorted absolute paths of regular files
// whose extension belongs to exts.
func collect(dir string, exts []string) []string {
	var matched []string

	_ = filesystem.API().Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info == nil || info.IsDir() {
			return nil
		}
		if lo.Contains(exts, filepath.Ext(path)) {
			matched = append(matched, absolute(path))
		}
		return nil
	})

	sort.Strings(matched)
	return matched
}

func absolute(path string) string {
	return lo.Must(filepath.Abs(path))
}
