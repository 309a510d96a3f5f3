package clangformat

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatArgs(t *testing.T) {
	Convey("formatArgs", t, func() {
		files := []string{"/project/a.c", "/project/b.h"}

		Convey("In-place mode edits files with verbose output", func() {
			So(formatArgs(false, files), ShouldResemble, []string{
				"-i", "--verbose", "/project/a.c", "/project/b.h",
			})
		})

		Convey("Dry-run mode reports violations as errors", func() {
			So(formatArgs(true, files), ShouldResemble, []string{
				"--dry-run", "-Werror", "--verbose", "/project/a.c", "/project/b.h",
			})
		})
	})
}

// fakeBinary writes an executable shell script into a temporary directory and
// returns its path.
func fakeBinary(t *testing.T, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "clang-format")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestQueryVersion(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stubs are not available on windows")
	}

	Convey("QueryVersion", t, func() {
		Convey("Parses the reported version", func() {
			runner := &Runner{Binary: fakeBinary(t, `echo "clang-format version 17.0.6"`)}

			version, err := runner.QueryVersion()
			So(err, ShouldBeNil)
			So(version, ShouldResemble, Version{17, 0, 6})
		})

		Convey("A non-zero exit surfaces a tool invocation error with captured stderr", func() {
			runner := &Runner{Binary: fakeBinary(t, `echo "no license" >&2; exit 1`)}

			_, err := runner.QueryVersion()
			So(err, ShouldNotBeNil)

			invocationErr, ok := err.(*ToolInvocationError)
			So(ok, ShouldBeTrue)
			So(invocationErr.Stderr, ShouldEqual, "no license")
			So(invocationErr.Error(), ShouldContainSubstring, "no license")
		})

		Convey("A missing binary surfaces a tool invocation error", func() {
			runner := &Runner{Binary: "/nonexistent/clang-format"}

			_, err := runner.QueryVersion()
			So(err, ShouldNotBeNil)
			So(err, ShouldHaveSameTypeAs, &ToolInvocationError{})
		})
	})
}

func TestFormat(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stubs are not available on windows")
	}

	Convey("Format", t, func() {
		Convey("Relays a successful invocation", func() {
			runner := &Runner{Binary: fakeBinary(t, `echo "Formatting $3"`)}

			So(runner.Format([]string{"/project/a.c"}, false), ShouldBeNil)
		})

		Convey("Maps a failing invocation to a tool invocation error", func() {
			runner := &Runner{Binary: fakeBinary(t, `echo "a.c: unterminated comment" >&2; exit 1`)}

			err := runner.Format([]string{"/project/a.c"}, false)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unterminated comment")
		})
	})
}
