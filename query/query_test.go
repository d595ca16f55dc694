package query

import (
	"testing"

	"github.com/animeflow/animeflow/filesystem"
	"github.com/animeflow/animeflow/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given remembered queries", t, func() {
		So(Remember("Naruto", 1), ShouldBeNil)
		So(Remember("naruto shippuden", 2), ShouldBeNil)
		So(Remember("  BLEACH ", 10), ShouldBeNil)

		Convey("Suggestions are sanitized and ranked", func() {
			So(SuggestMany("ble"), ShouldResemble, []string{"bleach"})
			So(Suggest("nar").MustGet(), ShouldEqual, "naruto shippuden")
		})

		Convey("Remembering again raises the rank and refreshes suggestions", func() {
			So(SuggestMany("nar")[0], ShouldEqual, "naruto shippuden")
			So(Remember("naruto", 5), ShouldBeNil)
			So(SuggestMany("nar")[0], ShouldEqual, "naruto")
		})

		Convey("Blank queries are not remembered", func() {
			So(Remember("   ", 1), ShouldBeNil)
			So(SuggestMany(""), ShouldNotContain, "")
		})

		Convey("Nothing is suggested when suggestions are disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			defer viper.Set(key.SearchShowQuerySuggestions, true)
			So(Suggest("ble").IsAbsent(), ShouldBeTrue)
		})
	})
}
