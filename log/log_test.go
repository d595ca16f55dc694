package log

import (
	"testing"
	"time"

	"github.com/animeflow/animeflow/filesystem"
	"github.com/animeflow/animeflow/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Entries should still carry their fields", func() {
			entry := WithFields(Fields{"kind": "transport"})
			So(entry.Data["kind"], ShouldEqual, "transport")
		})

		Convey("Nothing should be written", func() {
			Warn("dropped")
			ok, _ := afero.Exists(filesystem.API(), File(time.Now()))
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer func() {
			viper.Set(key.LogsWrite, false)
			_ = Setup()
		}()

		entry := WithFields(Fields{"source": "animefire"})
		So(Setup(), ShouldBeNil)

		Convey("Entries created before Setup should reach today's file", func() {
			entry.Warn("catalog unavailable")

			data, err := afero.ReadFile(filesystem.API(), File(time.Now()))
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "catalog unavailable")
			So(string(data), ShouldContainSubstring, "source=animefire")
		})
	})
}
