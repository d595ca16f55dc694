package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestWriteFileAtomic(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()
		path := "/data/nested/file.json"

		Convey("When writing a file that does not exist yet", func() {
			err := WriteFileAtomic(path, []byte("first"), 0o644)

			Convey("Then the parent directories are created and the content is stored", func() {
				So(err, ShouldBeNil)
				b, err := API().ReadFile(path)
				So(err, ShouldBeNil)
				So(string(b), ShouldEqual, "first")
			})

			Convey("And overwriting replaces the content without leaving the temp file", func() {
				So(WriteFileAtomic(path, []byte("second"), 0o644), ShouldBeNil)
				b, _ := API().ReadFile(path)
				So(string(b), ShouldEqual, "second")

				exists, _ := API().Exists(path + ".tmp")
				So(exists, ShouldBeFalse)
			})
		})
	})
}
