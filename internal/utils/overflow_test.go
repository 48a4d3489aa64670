package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckMultiplyOverflow(t *testing.T) {
	tests := []struct {
		name    string
		a       uint64
		b       uint64
		wantErr bool
	}{
		{name: "no overflow - small numbers", a: 10, b: 20, wantErr: false},
		{name: "no overflow - one zero", a: 0, b: math.MaxUint64, wantErr: false},
		{name: "no overflow - both zero", a: 0, b: 0, wantErr: false},
		{name: "overflow - max * 2", a: math.MaxUint64, b: 2, wantErr: true},
		{name: "overflow - large numbers", a: math.MaxUint64 / 2, b: 3, wantErr: true},
		{name: "no overflow - exact max", a: math.MaxUint64, b: 1, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckMultiplyOverflow(tt.a, tt.b)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSafeMultiply(t *testing.T) {
	tests := []struct {
		name    string
		a       uint64
		b       uint64
		want    uint64
		wantErr bool
	}{
		{name: "normal multiplication", a: 10, b: 20, want: 200},
		{name: "zero multiplication", a: 0, b: 100, want: 0},
		{name: "overflow", a: math.MaxUint64, b: 2, want: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SafeMultiply(tt.a, tt.b)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCheckAddOverflowUint32(t *testing.T) {
	tests := []struct {
		name    string
		a       uint32
		b       uint32
		wantErr bool
	}{
		{name: "no overflow", a: 24, b: 100, wantErr: false},
		{name: "exact max", a: math.MaxUint32 - 1, b: 1, wantErr: false},
		{name: "overflow", a: math.MaxUint32, b: 1, wantErr: true},
		{name: "overflow - two large node sizes", a: math.MaxUint32 / 2, b: math.MaxUint32/2 + 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAddOverflowUint32(tt.a, tt.b)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSafeAddUint32(t *testing.T) {
	got, err := SafeAddUint32(24, 100)
	require.NoError(t, err)
	require.Equal(t, uint32(124), got)

	_, err = SafeAddUint32(math.MaxUint32, 1)
	require.Error(t, err)
}

func TestValidateBufferSize(t *testing.T) {
	tests := []struct {
		name        string
		size        uint64
		maxSize     uint64
		description string
		wantErr     bool
		errContains string
	}{
		{name: "valid size", size: 1000, maxSize: 10000, description: "test buffer"},
		{name: "exact max", size: 10000, maxSize: 10000, description: "test buffer"},
		{
			name: "exceeds max", size: 10001, maxSize: 10000, description: "test buffer",
			wantErr: true, errContains: "exceeds maximum",
		},
		{
			name: "oversized property payload", size: MaxPropertyPayloadSize + 1, maxSize: MaxPropertyPayloadSize,
			description: "property payload", wantErr: true, errContains: "exceeds maximum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBufferSize(tt.size, tt.maxSize, tt.description)
			if tt.wantErr {
				require.ErrorContains(t, err, tt.errContains)
				return
			}
			require.NoError(t, err)
		})
	}
}
