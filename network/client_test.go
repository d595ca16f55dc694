package network

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/animeflow/animeflow/constant"
	"github.com/animeflow/animeflow/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClientGet(t *testing.T) {
	Convey("Given a client pointed at a test server", t, func() {
		var gotUA, gotReferer string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotReferer = r.Header.Get("Referer")

			switch r.URL.Path {
			case "/ok":
				_, _ = w.Write([]byte("<html>ok</html>"))
			case "/slow":
				time.Sleep(300 * time.Millisecond)
				_, _ = w.Write([]byte("late"))
			default:
				http.NotFound(w, r)
			}
		}))
		defer server.Close()

		client := New(Options{Referer: "https://animefire.plus", Timeout: 100 * time.Millisecond})
		ctx := context.Background()

		Convey("A successful request returns the body and carries the fixed headers", func() {
			body, err := client.Get(ctx, server.URL+"/ok")
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, "<html>ok</html>")
			So(gotUA, ShouldEqual, constant.UserAgent)
			So(gotReferer, ShouldEqual, "https://animefire.plus")
		})

		Convey("A non-2xx status is a transport failure", func() {
			_, err := client.Get(ctx, server.URL+"/missing")
			So(errors.Is(err, source.ErrTransport), ShouldBeTrue)
		})

		Convey("A request exceeding the timeout is a transport failure", func() {
			_, err := client.Get(ctx, server.URL+"/slow")
			So(errors.Is(err, source.ErrTransport), ShouldBeTrue)
		})

		Convey("An unreachable host is a transport failure", func() {
			_, err := client.Get(ctx, "http://127.0.0.1:1/")
			So(errors.Is(err, source.ErrTransport), ShouldBeTrue)
		})
	})
}
