package descriptor_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapecast/descriptor"
)

type Provisioned struct {
	Region string
	Quota  int
}

func (p *Provisioned) InitDefaults() {
	p.Region = "eu-west"
	p.Quota = 10
}

func TestNewInstanceZeroValue(t *testing.T) {
	t.Parallel()

	d, err := descriptor.For[Provisioned]()
	require.NoError(t, err)

	v := descriptor.NewInstance(d, false)
	assert.Equal(t, Provisioned{}, v.Interface())
	assert.True(t, v.CanSet() || v.CanAddr(), "instance fields must be settable")
}

func TestNewInstanceConstructorPath(t *testing.T) {
	t.Parallel()

	d, err := descriptor.For[Provisioned]()
	require.NoError(t, err)

	v := descriptor.NewInstance(d, true)
	assert.Equal(t, Provisioned{Region: "eu-west", Quota: 10}, v.Interface())
}

func TestWrapPointerLevels(t *testing.T) {
	t.Parallel()

	d, err := descriptor.For[Provisioned]()
	require.NoError(t, err)

	v := descriptor.NewInstance(d, true)

	p := descriptor.Wrap(v, reflect.TypeOf((**Provisioned)(nil)))
	require.Equal(t, "**descriptor_test.Provisioned", p.Type().String())
	assert.Equal(t, Provisioned{Region: "eu-west", Quota: 10}, p.Elem().Elem().Interface())

	same := descriptor.Wrap(v, reflect.TypeOf(Provisioned{}))
	assert.Equal(t, v.Interface(), same.Interface())
}

func TestNewInstanceConstructorIsOptional(t *testing.T) {
	t.Parallel()

	d, err := descriptor.For[Point]()
	require.NoError(t, err)

	v := descriptor.NewInstance(d, true)
	assert.Equal(t, Point{}, v.Interface(), "types without InitDefaults just allocate")
}
