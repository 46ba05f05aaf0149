package relabel

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envItem struct {
	Label string
	Count int
}

func init() {
	MustRegister[envItem]("env.Item")
}

func TestMarshalLayout(t *testing.T) {
	t.Parallel()

	data, err := marshal(envItem{Label: "a", Count: 2})
	require.NoError(t, err)

	require.Greater(t, len(data), 4)
	assert.Equal(t, byte(envMagic), data[0])
	assert.Equal(t, byte(envVersion), data[1])
	assert.Equal(t, byte(tagObject), data[2])

	r := bytes.NewReader(data[3:])
	n, err := binary.ReadUvarint(r)
	require.NoError(t, err)
	assert.Equal(t, uint64(len("env.Item")), n)

	name := make([]byte, n)
	_, err = r.Read(name)
	require.NoError(t, err)
	assert.Equal(t, "env.Item", string(name))
}

func TestRewriteTagTouchesOnlyTheTag(t *testing.T) {
	t.Parallel()

	data, err := marshal(envItem{Label: "a", Count: 2})
	require.NoError(t, err)

	out, err := rewriteTag(data, "somewhere.Else")
	require.NoError(t, err)

	oldTail := data[3+1+len("env.Item"):] // 1-byte uvarint for short names
	newTail := out[3+1+len("somewhere.Else"):]
	assert.Equal(t, data[:3], out[:3])
	assert.Equal(t, oldTail, newTail, "field payload bytes must survive untouched")
	assert.Contains(t, string(out), "somewhere.Else")
	assert.NotContains(t, string(out), "env.Item")
}

func TestRewriteTagRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := rewriteTag([]byte{1, 2, 3, 4}, "x")
	assert.ErrorIs(t, err, ErrBadEnvelope)

	_, err = rewriteTag([]byte{envMagic, envVersion, tagObject, 200}, "x")
	assert.ErrorIs(t, err, ErrBadEnvelope)
}

func TestUnmarshalRoundTrip(t *testing.T) {
	t.Parallel()

	src := envItem{Label: "widget", Count: 41}

	data, err := marshal(src)
	require.NoError(t, err)

	v, err := unmarshal(data, AllowAll())
	require.NoError(t, err)
	assert.Equal(t, src, v.Interface())
}

func TestUnmarshalRejectsTruncatedStreams(t *testing.T) {
	t.Parallel()

	data, err := marshal(envItem{Label: "widget", Count: 41})
	require.NoError(t, err)

	for _, cut := range []int{0, 1, 2, 5, len(data) - 1} {
		_, err := unmarshal(data[:cut], AllowAll())
		assert.ErrorIs(t, err, ErrBadEnvelope, "cut at %d", cut)
	}
}
