package layout

import (
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/leveldesign/field"
)

func TestLoad(t *testing.T) {

	Convey("Load the sample level", t, func() {
		doc, err := Load("testdata/level.toml")
		So(err, ShouldBeNil)
		So(doc.Polygons, ShouldHaveLength, 2)
		So(doc.Rectangles, ShouldHaveLength, 2)
		So(doc.Layer.Origin, ShouldResemble, [2]float64{10, 0})
		So(doc.Polygons[1].Subdivision, ShouldEqual, 16)
		So(doc.Rectangles[0].Border, ShouldNotBeNil)
		So(*doc.Rectangles[0].Border, ShouldEqual, 0.25)
		So(doc.Rectangles[1].Border, ShouldBeNil)

		set, err := doc.Build()
		So(err, ShouldBeNil)
		So(set.Fields, ShouldHaveLength, 4)

		Convey("Fields keep document order", func() {
			var names []string
			for _, n := range set.Fields {
				names = append(names, n.Name)
			}
			So(names, ShouldResemble, []string{"courtyard", "plaza", "spawn", "exit"})
		})

		Convey("Accelerated polygons are wrapped", func() {
			f, ok := set.Lookup("plaza")
			So(ok, ShouldBeTrue)
			a, ok := f.(*field.GridAccelerator)
			So(ok, ShouldBeTrue)
			So(a.Subdivision(), ShouldEqual, 16)

			f, _ = set.Lookup("courtyard")
			_, ok = f.(*field.Polygon)
			So(ok, ShouldBeTrue)

			_, ok = set.Lookup("cellar")
			So(ok, ShouldBeFalse)
		})

		Convey("Points are classified against every field", func() {
			So(set.Classify(field.Pt(12, 1)), ShouldResemble, []Classification{
				{"courtyard", field.Inside},
				{"plaza", field.Outside},
				{"spawn", field.Inside},
				{"exit", field.Outside},
			})
			So(set.Containing(field.Pt(13.1, 1), field.Border), ShouldResemble, []string{"spawn"})
			So(set.Containing(field.Pt(16.5, 1.5), field.Inside), ShouldResemble, []string{"plaza"})
			So(set.Containing(field.Pt(17.5, 1.5), field.Inside), ShouldBeEmpty)
			So(set.Containing(field.Pt(17.5, 4.5), field.Inside), ShouldResemble, []string{"exit"})
		})

		Convey("Moving the layer moves every field", func() {
			set.Layer.SetLocalToLayer(field.Identity)
			So(set.Containing(field.Pt(2, 1), field.Inside), ShouldResemble, []string{"courtyard", "spawn"})
			So(set.Containing(field.Pt(12, 1), field.Inside), ShouldBeEmpty)
		})
	})

	Convey("Load a missing file", t, func() {
		_, err := Load("testdata/missing.toml")
		So(err, ShouldNotBeNil)
	})

}

func TestDecode(t *testing.T) {

	Convey("Defaults apply to omitted values", t, func() {
		doc, err := Decode(strings.NewReader(`
[[rectangle]]
name = "box"
`))
		So(err, ShouldBeNil)
		set, err := doc.Build()
		So(err, ShouldBeNil)
		f, _ := set.Lookup("box")
		r := f.(*field.AxisAlignedField)
		So(r.LocalRect(), ShouldResemble, field.DefaultLocalRect)
		So(r.BorderThickness(), ShouldEqual, field.DefaultBorderThickness)
		So(r.Side(field.Pt(0, 0)), ShouldEqual, field.Inside)
		So(r.Side(field.Pt(0.55, 0)), ShouldEqual, field.Border)
	})

	Convey("Accelerated polygons default to subdivision 10", t, func() {
		doc, err := Decode(strings.NewReader(`
[[polygon]]
name = "tri"
vertices = [[0.0, 0.0], [1.0, 0.0], [0.0, 1.0]]
accelerate = true
fringe_width = 0.01
`))
		So(err, ShouldBeNil)
		set, err := doc.Build()
		So(err, ShouldBeNil)
		f, _ := set.Lookup("tri")
		a := f.(*field.GridAccelerator)
		So(a.Subdivision(), ShouldEqual, field.DefaultSubdivision)
		So(a.FringeWidth(), ShouldEqual, 0.01)
		So(a.Side(field.Pt(0.2, 0.2)), ShouldEqual, field.Inside)
	})

	Convey("Unknown keys are rejected", t, func() {
		_, err := Decode(strings.NewReader(`
[[polygon]]
name = "a"
colour = "red"
`))
		So(errors.Is(err, ErrUnknownKey), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "colour")
	})

	Convey("Malformed documents are rejected", t, func() {
		_, err := Decode(strings.NewReader(`[[polygon]`))
		So(err, ShouldNotBeNil)
	})

	Convey("Names must be present and unique", t, func() {
		doc, err := Decode(strings.NewReader(`
[[polygon]]
name = "a"
[[rectangle]]
name = "a"
`))
		So(err, ShouldBeNil)
		_, err = doc.Build()
		So(errors.Is(err, ErrDuplicateName), ShouldBeTrue)

		doc, err = Decode(strings.NewReader(`
[[rectangle]]
border = 0.5
`))
		So(err, ShouldBeNil)
		_, err = doc.Build()
		So(errors.Is(err, ErrEmptyName), ShouldBeTrue)
	})

}

func TestLayerMatrix(t *testing.T) {

	Convey("Zero scale means one", t, func() {
		m := LayerDoc{Origin: [2]float64{1, 2}}.Matrix()
		So(field.Pt(1, 1).Transform(m), ShouldResemble, field.Pt(2, 3))
	})

	Convey("Rotation is in degrees", t, func() {
		m := LayerDoc{Rotation: 90}.Matrix()
		p := field.Pt(1, 0).Transform(m)
		So(p.X, ShouldAlmostEqual, 0)
		So(p.Y, ShouldAlmostEqual, 1)
	})

}
