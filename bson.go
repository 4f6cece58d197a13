package money

import "fmt"

// BSON string helpers shared by the Currency and Money value (un)marshalers.
// The layout is defined by https://bsonspec.org/spec.html: an int32
// little-endian byte length, the bytes, and a null terminator.

// appendBSONString appends the BSON string representation of s.
func appendBSONString(data []byte, s string) []byte {
	l := len(s) + 1
	data = append(data, byte(l), byte(l>>8), byte(l>>16), byte(l>>24))
	data = append(data, s...)
	return append(data, 0)
}

// parseBSONString parses a BSON string.
// The byte order of the input data must be little-endian.
func parseBSONString(data []byte) (string, error) {
	if len(data) < 4 {
		return "", fmt.Errorf("invalid data length %v", len(data))
	}
	u := uint32(data[0])
	u |= uint32(data[1]) << 8
	u |= uint32(data[2]) << 16
	u |= uint32(data[3]) << 24
	l := int(int32(u)) //nolint:gosec
	if l < 1 || len(data) < l+4 {
		return "", fmt.Errorf("invalid string length %v", l)
	}
	if data[l+4-1] != 0 {
		return "", fmt.Errorf("invalid null terminator %v", data[l+4-1])
	}
	return string(data[4 : l+4-1]), nil
}
