package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPKCS7Pad(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		expected int
		padByte  byte
	}{
		{name: "empty input gets a full block", size: 0, expected: 16, padByte: 16},
		{name: "one byte", size: 1, expected: 16, padByte: 15},
		{name: "one short of a block", size: 15, expected: 16, padByte: 1},
		{name: "aligned input gets a full block", size: 16, expected: 32, padByte: 16},
		{name: "one over a block", size: 17, expected: 32, padByte: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := bytes.Repeat([]byte{'a'}, tt.size)

			padded := pkcs7Pad(data, 16)

			assert.Len(t, padded, tt.expected)
			assert.Equal(t, tt.padByte, padded[len(padded)-1])
			assert.Equal(t, data, padded[:tt.size])
			assert.Len(t, data, tt.size, "input must not be modified")
		})
	}
}

func TestPKCS7Unpad(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for size := 0; size <= 33; size++ {
			data := bytes.Repeat([]byte{'x'}, size)

			out, err := pkcs7Unpad(pkcs7Pad(data, 16), 16)
			require.NoError(t, err)
			assert.Equal(t, data, out)
		}
	})

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "zero pad byte", data: append(bytes.Repeat([]byte{'a'}, 15), 0)},
		{name: "pad byte larger than block", data: append(bytes.Repeat([]byte{'a'}, 15), 17)},
		{name: "pad byte larger than data", data: []byte{'a', 5}},
		{name: "inconsistent pad bytes", data: append(bytes.Repeat([]byte{'a'}, 13), 3, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := pkcs7Unpad(tt.data, 16)
			assert.Error(t, err)
			assert.Nil(t, out)
		})
	}
}
