package clangformat

import (
	"testing"

	"github.com/cfmt-cli/cfmt/filesystem"
	"github.com/cfmt-cli/cfmt/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func touch(path string) {
	So(filesystem.API().WriteFile(path, []byte{}, 0644), ShouldBeNil)
}

func TestDiscover(t *testing.T) {
	Convey("Given an in-memory project tree", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		viper.Set(key.FormatSourceExtensions, []string{".c"})
		viper.Set(key.FormatHeaderExtensions, []string{".h"})

		Convey("Directories expand to sources before headers, each sorted", func() {
			touch("/project/b.h")
			touch("/project/a.c")
			touch("/project/c.txt")

			So(Discover([]string{"/project"}), ShouldResemble, []string{
				"/project/a.c",
				"/project/b.h",
			})
		})

		Convey("Expansion recurses into subdirectories", func() {
			touch("/project/zz.c")
			touch("/project/sub/aa.c")
			touch("/project/sub/deep/bb.h")
			touch("/project/top.h")

			So(Discover([]string{"/project"}), ShouldResemble, []string{
				"/project/sub/aa.c",
				"/project/zz.c",
				"/project/sub/deep/bb.h",
				"/project/top.h",
			})
		})

		Convey("Explicit file arguments pass through without extension filtering", func() {
			touch("/project/weird.txt")

			So(Discover([]string{"/project/weird.txt"}), ShouldResemble, []string{
				"/project/weird.txt",
			})
		})

		Convey("Missing paths are skipped with a warning, not an error", func() {
			touch("/project/a.c")

			So(Discover([]string{"/missing", "/project"}), ShouldResemble, []string{
				"/project/a.c",
			})
		})

		Convey("Overlapping arguments are not deduplicated", func() {
			touch("/project/a.c")

			So(Discover([]string{"/project/a.c", "/project"}), ShouldResemble, []string{
				"/project/a.c",
				"/project/a.c",
			})
		})

		Convey("An empty expansion yields no files", func() {
			So(filesystem.API().MkdirAll("/empty", 0755), ShouldBeNil)
			So(Discover([]string{"/empty"}), ShouldBeEmpty)
		})
	})
}
