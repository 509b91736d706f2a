package pkg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestCheckFileExist(t *testing.T) {
	convey.Convey("existing and missing files", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "a.dcf")
		convey.So(os.WriteFile(path, []byte("[Dictionary]"), 0o644), convey.ShouldBeNil)

		exist, err := CheckFileExist(path)
		convey.So(err, convey.ShouldBeNil)
		convey.So(exist, convey.ShouldBeTrue)

		exist, err = CheckFileExist(filepath.Join(dir, "missing.dcf"))
		convey.So(err, convey.ShouldBeNil)
		convey.So(exist, convey.ShouldBeFalse)
	})
}

func TestDecodeText(t *testing.T) {
	convey.Convey("utf-8 with and without bom", t, func() {
		s, err := DecodeText(strings.NewReader("\xef\xbb\xbf[Dictionary]\nName=T"))
		convey.So(err, convey.ShouldBeNil)
		convey.So(s, convey.ShouldEqual, "[Dictionary]\nName=T")

		s, err = DecodeText(strings.NewReader("[Dictionary]"))
		convey.So(err, convey.ShouldBeNil)
		convey.So(s, convey.ShouldEqual, "[Dictionary]")
	})

	convey.Convey("utf-16 little endian with bom", t, func() {
		// "[A]" in UTF-16LE
		raw := "\xff\xfe[\x00A\x00]\x00"
		s, err := DecodeText(strings.NewReader(raw))
		convey.So(err, convey.ShouldBeNil)
		convey.So(s, convey.ShouldEqual, "[A]")
	})

	convey.Convey("ReadText reads from disk", t, func() {
		path := filepath.Join(t.TempDir(), "b.dcf")
		convey.So(os.WriteFile(path, []byte("\xef\xbb\xbfx"), 0o644), convey.ShouldBeNil)
		s, err := ReadText(path)
		convey.So(err, convey.ShouldBeNil)
		convey.So(s, convey.ShouldEqual, "x")

		_, err = ReadText(filepath.Join(t.TempDir(), "none"))
		convey.So(err, convey.ShouldNotBeNil)
	})
}
