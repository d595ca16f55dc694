package provider

import (
	"testing"

	"github.com/animeflow/animeflow/key"
	"github.com/animeflow/animeflow/provider/animefire"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("When getting the builtin provider by id or name", t, func() {
		byID, ok := Get(animefire.ID)
		So(ok, ShouldBeTrue)

		byName, ok := Get("animeFIRE")
		So(ok, ShouldBeTrue)
		So(byName, ShouldEqual, byID)

		Convey("Then it creates a working source", func() {
			src, err := byID.CreateSource()
			So(err, ShouldBeNil)
			So(src.ID(), ShouldEqual, animefire.ID)
		})
	})
}

func TestDefault(t *testing.T) {
	Convey("Given a configured default source", t, func() {
		viper.Set(key.DefaultSources, animefire.ID)
		p, ok := Default()
		So(ok, ShouldBeTrue)
		So(p.String(), ShouldEqual, animefire.Name)

		Convey("An unknown one is reported", func() {
			viper.Set(key.DefaultSources, "nyaa")
			_, ok := Default()
			So(ok, ShouldBeFalse)
		})
	})
}
