package scanline

// decode is a small test-only inverse of Compress, used to round-trip
// encoded streams in scanline_test.go rather than hand-deriving expected
// byte sequences for every case. It is not part of the package's public
// surface (spec.md's Non-goals exclude a decoder from the product).
func decode(stream []byte, rowStride, dataLen int) []byte {
	out := make([]byte, 0, dataLen)
	prev := make([]byte, rowStride)
	pos := 0
	for len(out) < dataLen {
		rowLen := rowStride
		if dataLen-len(out) < rowStride {
			rowLen = dataLen - len(out)
		}
		row := make([]byte, rowLen)
		i := 0
		for i < rowLen {
			n := groupSize
			if rowLen-i < groupSize {
				n = rowLen - i
			}
			flags := stream[pos]
			pos++
			for j := 0; j < n; j++ {
				bit := flags&(1<<uint(groupSize-1-j)) != 0
				if bit {
					row[i+j] = stream[pos]
					pos++
				} else {
					row[i+j] = prev[i+j]
				}
			}
			i += n
		}
		copy(prev, row)
		out = append(out, row...)
	}
	return out
}
