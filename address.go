package spinor

// encodeAddress writes addrWidth big-endian bytes of offset into buf,
// which must have length >= addrWidth. The opcode itself is not part of
// this buffer; callers prepend it to a separate command slice (see
// buildCommand below).
func encodeAddress(offset uint32, addrWidth uint8, buf []byte) {
	for i := int(addrWidth) - 1; i >= 0; i-- {
		buf[i] = byte(offset)
		offset >>= 8
	}
}

// buildCommand assembles [opcode | address(addrWidth bytes) | dummy
// bytes], ready to be used as the cmd argument to Transport.WriteThenRead.
// dummyBytes is the dummy phase length, already converted from dummy
// cycles by the caller (cycles / 8 for byte-clocked command buffers).
func buildCommand(opcode byte, offset uint32, addrWidth uint8, dummyBytes uint8) []byte {
	buf := make([]byte, 1+int(addrWidth)+int(dummyBytes))
	buf[0] = opcode
	encodeAddress(offset, addrWidth, buf[1:1+addrWidth])
	// Dummy bytes are left zero; their value is never interpreted by the
	// chip during the dummy phase.
	return buf
}
