package dictionary

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestColumnLabels(t *testing.T) {
	convey.Convey("labels follow item order and default to empty", t, func() {
		tree, err := Parse(minimal)
		convey.So(err, convey.ShouldBeNil)
		labels, ok := tree.ColumnLabels("R1")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(labels, convey.ShouldResemble, ColumnLabels{{Name: "Q1", Label: ""}})
		convey.So(labels.Map(), convey.ShouldResemble, map[string]string{"Q1": ""})
	})

	convey.Convey("fixture records", t, func() {
		tree, err := Parse(loadFixture(t, "household.dcf"))
		convey.So(err, convey.ShouldBeNil)
		labels, ok := tree.ColumnLabels("PERSON")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(labels, convey.ShouldHaveLength, 5)
		convey.So(labels[1], convey.ShouldResemble, ColumnLabel{Name: "SEX", Label: "Sex"})
	})

	convey.Convey("absent tree or record", t, func() {
		var none *Tree
		_, ok := none.ColumnLabels("R1")
		convey.So(ok, convey.ShouldBeFalse)

		tree, err := Parse(minimal)
		convey.So(err, convey.ShouldBeNil)
		labels, ok := tree.ColumnLabels("NOPE")
		convey.So(ok, convey.ShouldBeFalse)
		convey.So(labels, convey.ShouldBeNil)
	})
}

func TestValueLabels(t *testing.T) {
	convey.Convey("minimal definition", t, func() {
		tree, err := Parse(minimal)
		convey.So(err, convey.ShouldBeNil)
		vl, ok := tree.ValueLabels("R1", nil)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(vl, convey.ShouldResemble, ValueLabels{"Q1": {1: "Male", 2: "Female"}})
	})

	convey.Convey("ranges are left out", t, func() {
		tree, err := Parse(loadFixture(t, "household.dcf"))
		convey.So(err, convey.ShouldBeNil)
		vl, ok := tree.ValueLabels("PERSON", nil)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(vl["SEX"], convey.ShouldResemble, map[any]string{1: "Male", 2: "Female"})
		convey.So(vl["LINE"], convey.ShouldResemble, map[any]string{})
	})

	convey.Convey("items without value sets and sub items are skipped", t, func() {
		tree, err := Parse(loadFixture(t, "household.dcf"))
		convey.So(err, convey.ShouldBeNil)
		vl, _ := tree.ValueLabels("PERSON", nil)
		_, hasDOB := vl["DOB"]
		convey.So(hasDOB, convey.ShouldBeFalse)
		_, hasYear := vl["DOB_YEAR"]
		convey.So(hasYear, convey.ShouldBeFalse)
	})

	convey.Convey("codes are cast by the item's data type", t, func() {
		tree, err := Parse(loadFixture(t, "household.dcf"))
		convey.So(err, convey.ShouldBeNil)
		vl, _ := tree.ValueLabels("PERSON", nil)
		convey.So(vl["WEIGHT"], convey.ShouldResemble, map[any]string{0.5: "Light", 999.99: "Missing"})
		convey.So(vl["COMMENT"], convey.ShouldResemble, map[any]string{"'   '": "Blank", "NA": "Not asked"})
	})

	convey.Convey("desired columns filter the items", t, func() {
		tree, err := Parse(loadFixture(t, "household.dcf"))
		convey.So(err, convey.ShouldBeNil)
		vl, ok := tree.ValueLabels("PERSON", []string{"SEX", "MISSING"})
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(vl, convey.ShouldHaveLength, 1)
		convey.So(vl, convey.ShouldContainKey, "SEX")

		vl, ok = tree.ValueLabels("PERSON", []string{})
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(vl, convey.ShouldBeEmpty)
	})

	convey.Convey("records are looked up in the last level", t, func() {
		tree, err := Parse(loadFixture(t, "household.dcf"))
		convey.So(err, convey.ShouldBeNil)
		vl, ok := tree.ValueLabels("HOUSING", nil)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(vl["ROOMS"], convey.ShouldResemble, map[any]string{1: "One room", 2: "Two rooms"})
	})

	convey.Convey("absent tree or record", t, func() {
		var none *Tree
		_, ok := none.ValueLabels("R1", nil)
		convey.So(ok, convey.ShouldBeFalse)

		tree, err := Parse(minimal)
		convey.So(err, convey.ShouldBeNil)
		_, ok = tree.ValueLabels("NOPE", nil)
		convey.So(ok, convey.ShouldBeFalse)
	})
}

func TestValueSpecs(t *testing.T) {
	numeric := &Item{DataType: DataTypeNumeric}

	convey.Convey("single codes, ranges and bare strings", t, func() {
		code, label, ok := decodeValueSpec("1;Male", numeric)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(code, convey.ShouldEqual, 1)
		convey.So(label, convey.ShouldEqual, "Male")

		code, label, ok = decodeValueSpec("3;a;b", numeric)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(code, convey.ShouldEqual, 3)
		convey.So(label, convey.ShouldEqual, "a;b")

		_, _, ok = decodeValueSpec("0:9;Range", numeric)
		convey.So(ok, convey.ShouldBeFalse)
		_, _, ok = decodeValueSpec("0:120", numeric)
		convey.So(ok, convey.ShouldBeFalse)
		_, _, ok = decodeValueSpec("plain", numeric)
		convey.So(ok, convey.ShouldBeFalse)
	})

	convey.Convey("NaN codes are dropped", t, func() {
		_, _, ok := decodeValueSpec("NaN;x", &Item{DataType: DataTypeNumeric, Decimal: 1})
		convey.So(ok, convey.ShouldBeFalse)
	})
}

func TestCast(t *testing.T) {
	convey.Convey("numeric items", t, func() {
		convey.So(Cast("7", &Item{DataType: DataTypeNumeric}), convey.ShouldEqual, 7)
		convey.So(Cast(" 7 ", &Item{DataType: DataTypeNumeric}), convey.ShouldEqual, 7)
		convey.So(Cast("7", &Item{DataType: DataTypeNumeric, Decimal: 1}), convey.ShouldEqual, 7.0)
		convey.So(Cast("x", &Item{DataType: DataTypeNumeric}), convey.ShouldEqual, "x")
		convey.So(Cast("1.5", &Item{DataType: DataTypeNumeric}), convey.ShouldEqual, "1.5")
		convey.So(Cast("", &Item{DataType: DataTypeNumeric}), convey.ShouldEqual, "")
	})

	convey.Convey("other items keep text", t, func() {
		convey.So(Cast("7", &Item{DataType: "Alpha"}), convey.ShouldEqual, "7")
	})
}
