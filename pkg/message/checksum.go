package message

// Checksum computes the FIX checksum of data: the arithmetic sum of all
// byte values, reduced modulo 256. The checksum of empty input is 0.
//
// On the wire the checksum covers every byte of the message up to and
// including the SOH that precedes the CheckSum field, and is rendered as
// exactly three zero-padded decimal digits.
func Checksum(data []byte) byte {
	var sum uint32
	for _, b := range data {
		sum += uint32(b)
	}
	return byte(sum % 256)
}
