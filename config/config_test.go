package config

import (
	"testing"

	"github.com/cfmt-cli/cfmt/key"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaults(t *testing.T) {
	Convey("Default registry", t, func() {
		Convey("Registers the formatting binary", func() {
			field, ok := Default[key.FormatBinary]
			So(ok, ShouldBeTrue)
			So(field.Value, ShouldEqual, "clang-format")
		})

		Convey("Registers the extension groups", func() {
			So(Default[key.FormatSourceExtensions].Value, ShouldResemble, []string{".c"})
			So(Default[key.FormatHeaderExtensions].Value, ShouldResemble, []string{".h"})
		})

		Convey("Every field is exposed to the environment", func() {
			So(len(EnvExposed), ShouldEqual, len(Default))
		})
	})
}

func TestFieldEnv(t *testing.T) {
	Convey("Field env names", t, func() {
		field := Default[key.FormatBinary]
		So(field.Env(), ShouldEqual, "CFMT_FORMAT_BINARY")

		field = Default[key.FormatSourceExtensions]
		So(field.Env(), ShouldEqual, "CFMT_FORMAT_SOURCE_EXTENSIONS")
	})
}
