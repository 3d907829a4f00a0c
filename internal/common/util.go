package common

// WipeByteArray overwrites b with zeros so that sensitive data such as
// passwords does not linger in memory after use. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
