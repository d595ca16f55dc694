package util

import (
	"testing"

	"github.com/animeflow/animeflow/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "episode", "episodes"), ShouldEqual, "1 episode")
		So(Quantify(0, "episode", "episodes"), ShouldEqual, "0 episodes")
		So(Quantify(12, "episode", "episodes"), ShouldEqual, "12 episodes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
		So(Capitalize("épico"), ShouldEqual, "Épico")
	})
}

func TestEllipsis(t *testing.T) {
	Convey("Ellipsis", t, func() {
		Convey("Short strings are left alone", func() {
			So(Ellipsis("Naruto", 10), ShouldEqual, "Naruto")
		})
		Convey("Long strings are cut by runes", func() {
			So(Ellipsis("Shingeki no Kyojin", 8), ShouldEqual, "Shingek…")
			So(Ellipsis("ação e aventura", 5), ShouldEqual, "ação…")
		})
		Convey("A non-positive limit disables truncation", func() {
			So(Ellipsis("Naruto", 0), ShouldEqual, "Naruto")
		})
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory with a file", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/cache/queries", 0o755), ShouldBeNil)
		So(afero.WriteFile(fs, "/cache/queries/q.json", []byte("{}"), 0o644), ShouldBeNil)

		Convey("Delete removes the whole tree", func() {
			So(Delete("/cache"), ShouldBeNil)
			exists, _ := afero.Exists(fs, "/cache/queries/q.json")
			So(exists, ShouldBeFalse)
		})

		Convey("Deleting a missing path fails", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek().MustGet(), ShouldEqual, 2)
		So(s.Pop().MustGet(), ShouldEqual, 2)
		So(s.Pop().MustGet(), ShouldEqual, 1)
		So(s.Pop().IsAbsent(), ShouldBeTrue)
		So(s.Peek().IsAbsent(), ShouldBeTrue)
		s.Push(3)
		s.Clear()
		So(s.Len(), ShouldEqual, 0)
	})
}
