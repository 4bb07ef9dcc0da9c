package domain

// Zero overwrites b with zeros to clear key material or passwords from memory.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
