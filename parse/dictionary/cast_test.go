package dictionary

import (
	"errors"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func attrs(kv ...string) *Attributes {
	a := NewAttributes()
	for i := 0; i+1 < len(kv); i += 2 {
		a.Append(kv[i], kv[i+1])
	}
	return a
}

func castOne(t *testing.T, key, raw string) Value {
	t.Helper()
	values, err := CastAttributes(attrs(key, raw))
	if err != nil {
		t.Fatalf("cast %s=%s: %v", key, raw, err)
	}
	return values[0]
}

func TestCastAttributes(t *testing.T) {
	convey.Convey("every key belongs to one strategy", t, func() {
		convey.So(KindOf("Len"), convey.ShouldEqual, castKinds.Int)
		convey.So(KindOf("RecordTypeValue"), convey.ShouldEqual, castKinds.String)
		convey.So(KindOf("Required"), convey.ShouldEqual, castKinds.Bool)
		convey.So(KindOf("Decimal"), convey.ShouldEqual, castKinds.Passthrough)
		convey.So(KindOf("len"), convey.ShouldEqual, castKinds.Passthrough)
	})

	convey.Convey("scalar casts", t, func() {
		convey.So(castOne(t, "Len", "3").V, convey.ShouldEqual, 3)
		convey.So(castOne(t, "Len", " 12 ").V, convey.ShouldEqual, 12)
		convey.So(castOne(t, "Name", "'T'").V, convey.ShouldEqual, "T")
		convey.So(castOne(t, "Label", "it's").V, convey.ShouldEqual, "it's")
		convey.So(castOne(t, "ZeroFill", "Yes").V, convey.ShouldEqual, true)
		convey.So(castOne(t, "ZeroFill", "'Yes'").V, convey.ShouldEqual, true)
		convey.So(castOne(t, "ZeroFill", "No").V, convey.ShouldEqual, false)
		convey.So(castOne(t, "Required", "yes").V, convey.ShouldEqual, false)
		convey.So(castOne(t, "Required", "").V, convey.ShouldEqual, false)
		convey.So(castOne(t, "Decimal", "2").V, convey.ShouldEqual, "2")
	})

	convey.Convey("Value stays a list even with one entry", t, func() {
		v := castOne(t, "Value", "1;Male")
		convey.So(v.V, convey.ShouldResemble, []string{"1;Male"})
		convey.So(v.Scalar(), convey.ShouldBeFalse)
	})

	convey.Convey("multi-valued attributes are not cast", t, func() {
		values, err := CastAttributes(attrs("Len", "x", "Len", "y", "Name", "N"))
		convey.So(err, convey.ShouldBeNil)
		convey.So(values, convey.ShouldHaveLength, 2)
		convey.So(values[0].Key, convey.ShouldEqual, "Len")
		convey.So(values[0].V, convey.ShouldResemble, []string{"x", "y"})
		convey.So(values[1].V, convey.ShouldEqual, "N")
	})

	convey.Convey("a malformed integer is fatal", t, func() {
		_, err := CastAttributes(attrs("Name", "Q1", "Len", "three"))
		convey.So(errors.Is(err, ErrAttributeCast), convey.ShouldBeTrue)
		var pe *ParseError
		convey.So(errors.As(err, &pe), convey.ShouldBeTrue)
		convey.So(pe.Key, convey.ShouldEqual, "Len")
	})
}
