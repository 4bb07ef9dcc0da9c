package service

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	errEmptyData      = errors.New("empty data")
	errInvalidPadding = errors.New("invalid padding")
)

// pkcs7Pad appends PKCS#7 padding so the result is a multiple of blockSize.
// A full block of padding is added when data is already aligned.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	out := make([]byte, len(data), len(data)+padding)
	copy(out, data)
	return append(out, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

// pkcs7Unpad strips PKCS#7 padding, rejecting anything OpenSSL would reject.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	length := len(data)
	if length == 0 {
		return nil, errEmptyData
	}

	padding := int(data[length-1])
	if padding == 0 || padding > blockSize || padding > length {
		return nil, fmt.Errorf("%w: size %d", errInvalidPadding, padding)
	}

	for _, b := range data[length-padding:] {
		if int(b) != padding {
			return nil, errInvalidPadding
		}
	}

	return data[:length-padding], nil
}
