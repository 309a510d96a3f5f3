package clangformat

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/cfmt-cli/cfmt/filesystem"
	"github.com/cfmt-cli/cfmt/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

// gatedBinary builds a stub that runs versionAction when asked for --version
// and records any other invocation by creating a sentinel file.
func gatedBinary(t *testing.T, versionAction string) (binary, sentinel string) {
	t.Helper()

	sentinel = filepath.Join(t.TempDir(), "formatted")
	script := fmt.Sprintf(`if [ "$1" = "--version" ]; then
	%s
else
	touch %q
fi`, versionAction, sentinel)
	return fakeBinary(t, script), sentinel
}

func formatted(sentinel string) bool {
	_, err := os.Stat(sentinel)
	return err == nil
}

func TestRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stubs are not available on windows")
	}

	Convey("Given an in-memory project tree", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		viper.Set(key.FormatSourceExtensions, []string{".c"})
		viper.Set(key.FormatHeaderExtensions, []string{".h"})
		touch("/project/a.c")

		Convey("A failing version query aborts before any formatting", func() {
			binary, sentinel := gatedBinary(t, `echo "no license" >&2; exit 1`)
			viper.Set(key.FormatBinary, binary)

			err := Run(&Options{Paths: []string{"/project"}})
			So(err, ShouldNotBeNil)
			So(err, ShouldHaveSameTypeAs, &ToolInvocationError{})
			So(formatted(sentinel), ShouldBeFalse)
		})

		Convey("A version below the required minimum is rejected without formatting", func() {
			binary, sentinel := gatedBinary(t, `echo "clang-format version 12.9.9"`)
			viper.Set(key.FormatBinary, binary)

			err := Run(&Options{Paths: []string{"/project"}})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "requires 13.0.1 but is 12.9.9")
			So(formatted(sentinel), ShouldBeFalse)
		})

		Convey("The exact minimum formats the discovered files", func() {
			binary, sentinel := gatedBinary(t, `echo "clang-format version 13.0.1"`)
			viper.Set(key.FormatBinary, binary)

			So(Run(&Options{Paths: []string{"/project"}}), ShouldBeNil)
			So(formatted(sentinel), ShouldBeTrue)
		})

		Convey("A newer major is accepted and formatting proceeds", func() {
			binary, sentinel := gatedBinary(t, `echo "clang-format version 14.0.0"`)
			viper.Set(key.FormatBinary, binary)

			So(Run(&Options{Paths: []string{"/project"}}), ShouldBeNil)
			So(formatted(sentinel), ShouldBeTrue)
		})

		Convey("An empty discovery set warns and skips the invocation", func() {
			binary, sentinel := gatedBinary(t, `echo "clang-format version 13.0.1"`)
			viper.Set(key.FormatBinary, binary)
			So(filesystem.API().MkdirAll("/empty", 0755), ShouldBeNil)

			So(Run(&Options{Paths: []string{"/empty"}}), ShouldBeNil)
			So(formatted(sentinel), ShouldBeFalse)
		})
	})
}
