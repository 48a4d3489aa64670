package cast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewArrayPropertyCopiesInput(t *testing.T) {
	values := []uint32{1, 2, 3}
	p := NewArrayProperty(values...)
	values[0] = 99

	require.Equal(t, []uint32{1, 2, 3}, p.Values())
	require.Equal(t, KindInt32, p.Identifier())
	require.Equal(t, 3, p.ValueCount())
}

func TestNewArrayPropertyPanicsForString(t *testing.T) {
	require.Panics(t, func() {
		NewArrayProperty("a", "b")
	})
}

func TestNewStringPropertyDataSize(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  uint32
	}{
		{name: "empty string", value: "", want: 1},
		{name: "ascii", value: "hello", want: 6},
		{name: "multibyte utf8", value: "café", want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewStringProperty(tt.value)
			require.Equal(t, KindString, p.Identifier())
			require.Equal(t, 1, p.ValueCount())
			require.Equal(t, tt.want, p.DataSize())
		})
	}
}

func TestArrayPropertyDataSize(t *testing.T) {
	tests := []struct {
		name string
		prop iProperty
		want uint32
	}{
		{name: "byte x3", prop: NewArrayProperty[byte](1, 2, 3), want: 3},
		{name: "short x2", prop: NewArrayProperty[uint16](1, 2), want: 4},
		{name: "int32 x1", prop: NewArrayProperty[uint32](1), want: 4},
		{name: "int64 x1", prop: NewArrayProperty[uint64](1), want: 8},
		{name: "float32 x4", prop: NewArrayProperty[float32](1, 2, 3, 4), want: 16},
		{name: "vec3 x2", prop: NewArrayProperty(Vec3{}, Vec3{}), want: 24},
		{name: "vec4 x1", prop: NewArrayProperty(Vec4{}), want: 16},
		{name: "empty array", prop: NewArrayProperty[uint32](), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.prop.DataSize())
		})
	}
}

func TestPropertyFirstAndSetFirst(t *testing.T) {
	p := NewEmptyArrayProperty[uint32](0)
	_, ok := p.First()
	require.False(t, ok)

	p.SetFirst(42)
	v, ok := p.First()
	require.True(t, ok)
	require.Equal(t, uint32(42), v)
}

func TestPropertyAppendValues(t *testing.T) {
	p := NewArrayProperty[uint32](1, 2)
	p.AppendValues(3, 4)
	require.Equal(t, []uint32{1, 2, 3, 4}, p.Values())
}

func TestPropertyAppendValuesPanicsForString(t *testing.T) {
	p := NewStringProperty("hi")
	require.Panics(t, func() {
		p.AppendValues("there")
	})
}

func TestPropertyCloneIsIndependent(t *testing.T) {
	p := NewArrayProperty[uint32](1, 2, 3)
	clone := p.cloneProp().(*Property[uint32])
	clone.SetFirst(99)

	require.Equal(t, uint32(1), p.Values()[0])
	require.Equal(t, uint32(99), clone.Values()[0])
}
