package runtime

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// UnpackBinary implements the subset of Perl's unpack() template language
// the reference conversions actually use: C/c (byte), n/N (big-endian
// 16/32), v/V (little-endian 16/32), a/A (fixed-width string, A trims
// trailing spaces/nulls), H (hex nibbles), with an optional repeat count
// per directive (including "*" meaning "rest of buffer"). A numeric
// directive that runs past the end of data stops there without zero
// padding, so the result can hold fewer values than the template names.
func UnpackBinary(template string, data []byte) ([]any, error) {
	var out []any
	pos := 0
	i := 0
	for i < len(template) {
		verb := template[i]
		i++
		countStr := ""
		star := false
		for i < len(template) && (template[i] >= '0' && template[i] <= '9') {
			countStr += string(template[i])
			i++
		}
		if i < len(template) && template[i] == '*' {
			star = true
			i++
		}
		count := 1
		if countStr != "" {
			count, _ = strconv.Atoi(countStr)
		}

		switch verb {
		case 'C', 'c':
			if star {
				count = len(data) - pos
			}
			for k := 0; k < count; k++ {
				if pos >= len(data) {
					break
				}
				if verb == 'c' {
					out = append(out, int64(int8(data[pos])))
				} else {
					out = append(out, uint32(data[pos]))
				}
				pos++
			}
		case 'n', 'v':
			if star {
				count = (len(data) - pos) / 2
			}
			for k := 0; k < count; k++ {
				if pos+2 > len(data) {
					break
				}
				var v uint16
				if verb == 'n' {
					v = binary.BigEndian.Uint16(data[pos:])
				} else {
					v = binary.LittleEndian.Uint16(data[pos:])
				}
				out = append(out, uint32(v))
				pos += 2
			}
		case 'N', 'V':
			if star {
				count = (len(data) - pos) / 4
			}
			for k := 0; k < count; k++ {
				if pos+4 > len(data) {
					break
				}
				var v uint32
				if verb == 'N' {
					v = binary.BigEndian.Uint32(data[pos:])
				} else {
					v = binary.LittleEndian.Uint32(data[pos:])
				}
				out = append(out, v)
				pos += 4
			}
		case 'a', 'A':
			n := count
			if star {
				n = len(data) - pos
			}
			if pos+n > len(data) {
				n = len(data) - pos
			}
			if n < 0 {
				n = 0
			}
			s := string(data[pos : pos+n])
			if verb == 'A' {
				s = strings.TrimRight(s, " \x00")
			}
			out = append(out, s)
			pos += n
		case 'H':
			n := count
			if star {
				n = (len(data) - pos) * 2
			}
			nbytes := (n + 1) / 2
			if pos+nbytes > len(data) {
				nbytes = len(data) - pos
			}
			var b strings.Builder
			for k := 0; k < nbytes; k++ {
				fmt.Fprintf(&b, "%02x", data[pos+k])
			}
			hex := b.String()
			if len(hex) > n {
				hex = hex[:n]
			}
			out = append(out, hex)
			pos += nbytes
		default:
			return nil, fmt.Errorf("unsupported unpack directive %q", string(verb))
		}
	}
	return out, nil
}
