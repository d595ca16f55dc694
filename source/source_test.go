package source

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestKindOf(t *testing.T) {
	Convey("KindOf", t, func() {
		Convey("nil has no kind", func() {
			So(KindOf(nil), ShouldEqual, KindNone)
		})

		Convey("wrapped sentinels keep their kind", func() {
			So(KindOf(fmt.Errorf("get %s: %w", "x", ErrTransport)), ShouldEqual, KindTransport)
			So(KindOf(fmt.Errorf("no endpoint: %w", ErrShapeMismatch)), ShouldEqual, KindShapeMismatch)
			So(KindOf(fmt.Errorf("no sources: %w", ErrDataAbsent)), ShouldEqual, KindDataAbsent)
		})

		Convey("foreign errors are unknown", func() {
			So(KindOf(errors.New("boom")), ShouldEqual, KindUnknown)
		})
	})
}

func TestModels(t *testing.T) {
	Convey("Models", t, func() {
		Convey("Episode String uses the parsed number", func() {
			So(Episode{Title: "Ep. 07 - Legendado", Num: 7}.String(), ShouldEqual, "Episode 7")
		})

		Convey("AnimeSummary equality ignores the image", func() {
			a := AnimeSummary{Title: "Frieren", URL: "https://x/frieren", Img: "a.jpg"}
			b := AnimeSummary{Title: "Frieren", URL: "https://x/frieren", Img: "b.jpg"}
			So(a.Equal(b), ShouldBeTrue)
			So(a.String(), ShouldEqual, "Frieren")
		})
	})
}
