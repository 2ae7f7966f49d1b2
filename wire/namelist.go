package wire

import "strings"

// NameList is a `name-list`: a comma-separated sequence of ASCII names.
// Slice order is textual order and carries meaning, it is the preference
// ranking used during algorithm negotiation. Empty names are never part
// of the sequence.
type NameList []string

// Preferred returns the first name of l that also occurs anywhere in
// other, implementing the negotiation tie-break: the receiver's order
// dictates preference. The second return is false when the lists do not
// intersect.
func (l NameList) Preferred(other NameList) (string, bool) {
	for _, name := range l {
		for _, candidate := range other {
			if name == candidate {
				return name, true
			}
		}
	}
	return "", false
}

// Contains reports whether name occurs in l.
func (l NameList) Contains(name string) bool {
	for _, n := range l {
		if n == name {
			return true
		}
	}
	return false
}

// AppendNameList appends the length-prefixed encoding of l to dst,
// joining non-empty names with commas.
func AppendNameList(dst []byte, l NameList) []byte {
	names := make([]string, 0, len(l))
	for _, name := range l {
		if name != "" {
			names = append(names, name)
		}
	}
	return AppendAscii(dst, AsciiString(strings.Join(names, ",")))
}

// DecodeNameList consumes one name-list from the front of b, validating
// it as ASCII and dropping empty names produced by leading, trailing or
// doubled commas.
func DecodeNameList(b []byte) (NameList, []byte, error) {
	s, rest, err := DecodeAscii(b)
	if err != nil {
		return nil, nil, err
	}
	if len(s) == 0 {
		return NameList{}, rest, nil
	}
	split := strings.Split(string(s), ",")
	names := make(NameList, 0, len(split))
	for _, name := range split {
		if name != "" {
			names = append(names, name)
		}
	}
	return names, rest, nil
}
