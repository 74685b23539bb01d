package sentry

// Span returns data[offset:offset+size], clamped to the bounds of data.
func Span(data []byte, offset uint64, size uint64) []byte {
	length := uint64(len(data))
	start := offset
	if start > length {
		start = length
	}
	end := offset + size
	if end > length {
		end = length
	}
	return data[start:end]
}

// PayloadDomain returns the bytes of data covered by the payload checksum of entry.
// A directory excludes the trailing entry slot it reserves for its own header.
func PayloadDomain(entry Entry, data []byte) []byte {
	size := uint64(entry.Size)
	if entry.Kind == KindDirectory {
		if size < DefaultEntrySize {
			size = 0
		} else {
			size -= DefaultEntrySize
		}
	}
	return Span(data, uint64(entry.Offset), size)
}
