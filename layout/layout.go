// Package layout reads field layouts from TOML documents and builds the
// fields they describe.
//
// A document has one [layer] table and any number of [[polygon]] and
// [[rectangle]] tables:
//
//	[layer]
//	origin = [0.0, 0.0]
//	rotation = 0.0
//
//	[[polygon]]
//	name = "courtyard"
//	vertices = [[0.0, 0.0], [4.0, 0.0], [4.0, 3.0], [0.0, 3.0]]
//	accelerate = true
//
//	[[rectangle]]
//	name = "spawn"
//	rect = [-0.5, -0.5, 0.5, 0.5]
//	position = [8.0, 2.0]
//	border = 0.25
//
// Rotations are in degrees. A zero scale component means 1.
package layout

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/leveldesign/field"
)

var (
	ErrEmptyName     = errors.New("layout: field without a name")
	ErrDuplicateName = errors.New("layout: duplicate field name")
	ErrUnknownKey    = errors.New("layout: unknown key")
)

// Document is the decoded form of a layout file.
type Document struct {
	Layer      LayerDoc       `toml:"layer"`
	Polygons   []PolygonDoc   `toml:"polygon"`
	Rectangles []RectangleDoc `toml:"rectangle"`
}

// LayerDoc places the layer. Origin, Scale and Rotation make up its
// local→layer matrix; WorldOrigin offsets layer space in world space.
type LayerDoc struct {
	Origin      [2]float64 `toml:"origin"`
	Scale       [2]float64 `toml:"scale"`
	Rotation    float64    `toml:"rotation"`
	WorldOrigin [2]float64 `toml:"world_origin"`
}

type PolygonDoc struct {
	Name     string       `toml:"name"`
	Vertices [][2]float64 `toml:"vertices"`
	Position [2]float64   `toml:"position"`
	Scale    [2]float64   `toml:"scale"`
	Rotation float64      `toml:"rotation"`

	// Accelerate wraps the polygon in a grid accelerator.
	Accelerate  bool    `toml:"accelerate"`
	Subdivision int     `toml:"subdivision"`
	FringeWidth float64 `toml:"fringe_width"`
}

type RectangleDoc struct {
	Name string `toml:"name"`
	// Rect is x0, y0, x1, y1 in local space. All zeros selects the unit
	// square centered on the origin.
	Rect [4]float64 `toml:"rect"`
	// Border defaults to field.DefaultBorderThickness when absent.
	Border   *float64   `toml:"border"`
	Position [2]float64 `toml:"position"`
	Scale    [2]float64 `toml:"scale"`
	Rotation float64    `toml:"rotation"`
}

// Decode reads a document from r. Keys that do not belong to the document
// are reported as [ErrUnknownKey].
func Decode(r io.Reader) (*Document, error) {
	doc := new(Document)
	md, err := toml.DecodeReader(r, doc)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
	}
	return doc, nil
}

// Load decodes the document stored at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func scale(s [2]float64) field.Vec2 {
	v := field.Vec(s[0], s[1])
	if v.X == 0 {
		v.X = 1
	}
	if v.Y == 0 {
		v.Y = 1
	}
	return v
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func trs(pos [2]float64, deg float64, s [2]float64) field.Affine {
	return field.TRS(field.Vec(pos[0], pos[1]), radians(deg), scale(s))
}

// Matrix returns the layer's local→layer matrix.
func (l LayerDoc) Matrix() field.Affine {
	return trs(l.Origin, l.Rotation, l.Scale)
}

// Build creates the layer and every field of the document, polygons first,
// each group in document order.
func (d *Document) Build() (*Set, error) {
	layer := field.NewLayer(
		d.Layer.Matrix(),
		field.Translate(field.Vec(d.Layer.WorldOrigin[0], d.Layer.WorldOrigin[1])),
	)
	set := &Set{
		Layer: layer,
		index: make(map[string]int),
	}

	for _, pd := range d.Polygons {
		vs := make([]field.Point, len(pd.Vertices))
		for i, v := range pd.Vertices {
			vs[i] = field.Pt(v[0], v[1])
		}
		p := field.NewPolygon(layer, vs...)
		p.Name = pd.Name
		p.SetTransform(trs(pd.Position, pd.Rotation, pd.Scale))

		var f field.Field = p
		if pd.Accelerate {
			n := pd.Subdivision
			if n == 0 {
				n = field.DefaultSubdivision
			}
			a := field.NewGridAccelerator(p, n)
			if pd.FringeWidth > 0 {
				a.SetFringeWidth(pd.FringeWidth)
			}
			f = a
		}
		if err := set.add(pd.Name, f); err != nil {
			return nil, err
		}
	}

	for _, rd := range d.Rectangles {
		local := field.DefaultLocalRect
		if rd.Rect != [4]float64{} {
			local = field.Rect{X0: rd.Rect[0], Y0: rd.Rect[1], X1: rd.Rect[2], Y1: rd.Rect[3]}
		}
		border := field.DefaultBorderThickness
		if rd.Border != nil {
			border = *rd.Border
		}
		r := field.NewAxisAlignedField(layer, local, border)
		r.Name = rd.Name
		r.SetTransform(trs(rd.Position, rd.Rotation, rd.Scale))
		if err := set.add(rd.Name, r); err != nil {
			return nil, err
		}
	}

	field.Logger().WithFields(logrus.Fields{
		"polygons":   len(d.Polygons),
		"rectangles": len(d.Rectangles),
	}).Debug("layout built")
	return set, nil
}

// Named is a field together with the name it was given in its document.
type Named struct {
	Name  string
	Field field.Field
}

// Set holds the fields built from a document. All fields share Layer;
// changing its matrices moves all of them.
type Set struct {
	Layer  *field.Layer
	Fields []Named

	index map[string]int
}

func (s *Set) add(name string, f field.Field) error {
	if name == "" {
		return fmt.Errorf("%w (field %d)", ErrEmptyName, len(s.Fields))
	}
	if _, ok := s.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	s.index[name] = len(s.Fields)
	s.Fields = append(s.Fields, Named{Name: name, Field: f})
	return nil
}

// Lookup returns the field with the given name.
func (s *Set) Lookup(name string) (field.Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.Fields[i].Field, true
}

// Classification is the side of a point with respect to one named field.
type Classification struct {
	Name string
	Side field.Side
}

func (c Classification) String() string {
	return c.Name + "\t" + c.Side.String()
}

// Classify returns the side of p, in layer space, for every field in order.
func (s *Set) Classify(p field.Point) []Classification {
	out := make([]Classification, len(s.Fields))
	for i, n := range s.Fields {
		out[i] = Classification{Name: n.Name, Side: n.Field.Side(p)}
	}
	return out
}

// Containing returns the names of the fields whose Side at p is want.
func (s *Set) Containing(p field.Point, want field.Side) []string {
	var names []string
	for _, c := range s.Classify(p) {
		if c.Side == want {
			names = append(names, c.Name)
		}
	}
	return names
}
