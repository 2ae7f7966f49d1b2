package wire

// MpInt is an arbitrary-precision integer held as a big-endian magnitude.
// On the wire it is a `string` whose payload always reads back as a
// non-negative two's-complement value: encoding strips redundant leading
// zero bytes down to the minimal form, then prepends a single 0x00 when
// the leading byte would otherwise flip the sign bit.
type MpInt []byte

// Canonical returns the minimal sign-guarded form of v. Zero (and the
// empty magnitude) canonicalizes to the empty buffer.
func (v MpInt) Canonical() MpInt {
	i := 0
	for i < len(v) && v[i] == 0 {
		i++
	}
	trimmed := v[i:]
	if len(trimmed) == 0 {
		return MpInt{}
	}
	if trimmed[0]&0x80 != 0 {
		guarded := make(MpInt, 0, len(trimmed)+1)
		guarded = append(guarded, 0x00)
		return append(guarded, trimmed...)
	}
	out := make(MpInt, len(trimmed))
	copy(out, trimmed)
	return out
}

// AppendMpInt appends the canonical length-prefixed encoding of v to dst.
func AppendMpInt(dst []byte, v MpInt) []byte {
	return AppendBytes(dst, Bytes(v.Canonical()))
}

// DecodeMpInt consumes one mpint from the front of b. No canonicalization
// is enforced on read; callers comparing values re-encode first.
func DecodeMpInt(b []byte) (MpInt, []byte, error) {
	payload, rest, err := DecodeBytes(b)
	if err != nil {
		return nil, nil, err
	}
	return MpInt(payload), rest, nil
}
