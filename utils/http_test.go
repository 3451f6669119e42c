package utils

import (
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitWriteJSONWithStatus(t *testing.T) {
	Convey("Writes message response with supplied status", t, func() {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		WriteJSONWithStatus(w, req, NewMessageResponse("not found"), 404)

		So(w.Code, ShouldEqual, 404)
		So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")
		So(w.Body.String(), ShouldEqual, "{\"message\":\"not found\"}\n")
	})
}
