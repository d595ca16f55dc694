package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notifier", t, func() {
		var m Model

		Convey("Notify produces a message that is shown", func() {
			cmd := m.Update(Notify("player started")())
			So(cmd, ShouldNotBeNil)
			So(m.Notification(), ShouldEqual, "player started")
			So(m.View("a\nb"), ShouldStartWith, "a\nb  ")
		})

		Convey("A stale clear does not hide a newer notification", func() {
			m.Update(NotificationMsg("first"))
			m.Update(NotificationMsg("second"))
			m.Update(clearMsg{id: 1})
			So(m.Notification(), ShouldEqual, "second")

			m.Update(clearMsg{id: 2})
			So(m.Notification(), ShouldBeEmpty)
			So(m.View("content"), ShouldEqual, "content")
		})
	})
}
