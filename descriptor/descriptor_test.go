package descriptor_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapecast/descriptor"
)

type Point struct{ X, Y int }

type Location struct {
	Name string
	At   Point
}

type Tagged struct {
	Renamed string         `cast:"Alias"`
	Skipped string         `cast:"-"`
	Extra   map[string]any `cast:",dynamic"`
	When    time.Time
	Any     any
	hidden  string
}

type BadDynamic struct {
	Extra []string `cast:",dynamic"`
}

type DoubleDynamic struct {
	A map[string]any `cast:",dynamic"`
	B map[string]any `cast:",dynamic"`
}

func TestOfClassification(t *testing.T) {
	t.Parallel()

	d, err := descriptor.For[Tagged]()
	require.NoError(t, err)

	byName := map[string]descriptor.Field{}
	for _, f := range d.Fields {
		byName[f.Name] = f
	}

	assert.Equal(t, descriptor.FieldKindScalar, byName["Renamed"].Kind)
	assert.Equal(t, descriptor.FieldKindOpaque, byName["Extra"].Kind, "maps are opaque")
	assert.Equal(t, descriptor.FieldKindOpaque, byName["When"].Kind, "no exported fields, copied verbatim")
	assert.Equal(t, descriptor.FieldKindOpaque, byName["Any"].Kind)
	assert.Equal(t, descriptor.FieldKindScalar, byName["hidden"].Kind)
	assert.False(t, byName["hidden"].Assignable())
	assert.False(t, byName["Skipped"].Assignable())
	assert.True(t, byName["Renamed"].Assignable())
}

func TestOfNested(t *testing.T) {
	t.Parallel()

	d, err := descriptor.For[Location]()
	require.NoError(t, err)

	require.Len(t, d.Fields, 2)
	at := d.Fields[1]
	assert.Equal(t, descriptor.FieldKindStruct, at.Kind)
	require.NotNil(t, at.Nested)

	pd, err := descriptor.For[Point]()
	require.NoError(t, err)
	assert.Same(t, pd, at.Nested, "nested descriptor comes from the shared cache")
}

func TestOfCachesAndUnwrapsPointers(t *testing.T) {
	t.Parallel()

	a, err := descriptor.For[Location]()
	require.NoError(t, err)

	b, err := descriptor.For[*Location]()
	require.NoError(t, err)

	assert.Same(t, a, b)
}

func TestOfRejectsNonStructs(t *testing.T) {
	t.Parallel()

	_, err := descriptor.Of(reflect.TypeOf(int(0)))
	assert.ErrorIs(t, err, descriptor.ErrNotAStruct)

	_, err = descriptor.Of(nil)
	assert.ErrorIs(t, err, descriptor.ErrNilType)
}

func TestMatchLadder(t *testing.T) {
	t.Parallel()

	d, err := descriptor.For[Tagged]()
	require.NoError(t, err)

	f, ok := d.Match("Alias")
	require.True(t, ok)
	assert.Equal(t, "Renamed", f.Name)

	f, ok = d.Match("Renamed")
	require.True(t, ok)
	assert.Equal(t, "Renamed", f.Name)

	f, ok = d.Match("renamed")
	require.True(t, ok)
	assert.Equal(t, "Renamed", f.Name)

	_, ok = d.Match("Skipped")
	assert.False(t, ok, "excluded fields never match")

	_, ok = d.Match("hidden")
	assert.False(t, ok, "unexported fields never match")

	_, ok = d.Match("Extra")
	assert.False(t, ok, "the overflow field is not matched by name")
}

func TestDynamicField(t *testing.T) {
	t.Parallel()

	d, err := descriptor.For[Tagged]()
	require.NoError(t, err)

	f, ok := d.DynamicField()
	require.True(t, ok)
	assert.Equal(t, "Extra", f.Name)

	p, err := descriptor.For[Point]()
	require.NoError(t, err)

	_, ok = p.DynamicField()
	assert.False(t, ok)
}

type CaseClash struct {
	Total int64
	TOTAL int64
}

type AliasClash struct {
	A string `cast:"Source"`
	B string `cast:"Source"`
}

func TestDeriveRejectsAmbiguousNames(t *testing.T) {
	t.Parallel()

	_, err := descriptor.For[CaseClash]()
	assert.ErrorContains(t, err, "differ only in case")

	_, err = descriptor.For[AliasClash]()
	assert.ErrorContains(t, err, "share the alias")
}

func TestDeriveRejectsBadDynamic(t *testing.T) {
	t.Parallel()

	_, err := descriptor.For[BadDynamic]()
	assert.ErrorContains(t, err, "must be map[string]any")

	_, err = descriptor.For[DoubleDynamic]()
	assert.ErrorContains(t, err, "more than one dynamic overflow field")
}

func TestTypeID(t *testing.T) {
	t.Parallel()

	d, err := descriptor.For[Location]()
	require.NoError(t, err)

	assert.Equal(t, "shapecast/descriptor_test.Location", d.ID.String())
	assert.Equal(t, "descriptor_test.Location", d.ID.Short())
}

func TestFieldKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "FieldKindScalar", descriptor.FieldKindScalar.String())
	assert.Equal(t, "FieldKindStruct", descriptor.FieldKindStruct.String())
	assert.Equal(t, "FieldKind(17)", descriptor.FieldKind(17).String())
}
