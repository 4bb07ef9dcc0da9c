package domain

// Blob is the parsed form of an encrypted payload.
//
// Wire layout, in order:
//
//	offset  length  field
//	0       8       salt
//	8       16      IV
//	24      32      HMAC-SHA256 over ciphertext || IV
//	56      n*16    AES-256-CBC ciphertext, PKCS7 padded
type Blob struct {
	Salt       []byte
	IV         []byte
	MAC        []byte
	Ciphertext []byte
}

// ParseBlob splits data into its fields by fixed offsets. The returned fields
// alias data. It returns ErrInvalidData when data is shorter than MinBlobSize;
// no other validation is performed.
func ParseBlob(data []byte) (*Blob, error) {
	if len(data) < MinBlobSize {
		return nil, ErrInvalidData
	}

	return &Blob{
		Salt:       data[saltOffset:ivOffset],
		IV:         data[ivOffset:macOffset],
		MAC:        data[macOffset:ciphertextOffset],
		Ciphertext: data[ciphertextOffset:],
	}, nil
}

// Bytes serializes the blob as salt || IV || MAC || ciphertext.
func (b *Blob) Bytes() []byte {
	out := make([]byte, 0, len(b.Salt)+len(b.IV)+len(b.MAC)+len(b.Ciphertext))
	out = append(out, b.Salt...)
	out = append(out, b.IV...)
	out = append(out, b.MAC...)
	return append(out, b.Ciphertext...)
}
