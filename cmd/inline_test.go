package cmd

import (
	"bytes"
	"testing"

	"github.com/animeflow/animeflow/source"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
)

func newOutputCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test"}
	outputFlags(cmd, "a JSON array")

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	return cmd, out
}

func TestSchema(t *testing.T) {
	Convey("Given a scripting command", t, func() {
		cmd, out := newOutputCmd()

		Convey("Without --schema nothing should be printed", func() {
			So(schema(cmd, []source.Episode{}), ShouldBeFalse)
			So(out.Len(), ShouldEqual, 0)
		})

		Convey("With --schema the output type should be described", func() {
			So(cmd.Flags().Set("schema", "true"), ShouldBeNil)
			So(schema(cmd, []source.Episode{}), ShouldBeTrue)
			So(out.String(), ShouldContainSubstring, `"num"`)
			So(out.String(), ShouldContainSubstring, `"index"`)
		})

		Convey("Argument checks should be skipped for --schema", func() {
			check := unlessSchema(cobra.ExactArgs(1))
			So(check(cmd, nil), ShouldNotBeNil)

			So(cmd.Flags().Set("schema", "true"), ShouldBeNil)
			So(check(cmd, nil), ShouldBeNil)
		})
	})
}

func TestEncode(t *testing.T) {
	Convey("Encoded output should keep non-ASCII and markup as is", t, func() {
		out := &bytes.Buffer{}
		So(encode(out, source.AnimeSummary{Title: "Shingeki no Kyojin <Dublado>", URL: "/a?b=1&c=2"}), ShouldBeNil)
		So(out.String(), ShouldContainSubstring, "<Dublado>")
		So(out.String(), ShouldContainSubstring, "&c=2")
	})
}
