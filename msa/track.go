package msa

import (
	"encoding/binary"
	"fmt"

	"msa2st/internal/errors"
)

// DecodeTrack decodes the length bytes of track data starting at offset.
// It returns the decoded track and the offset just past the consumed range.
//
// A track whose declared length is below the nominal size is run-length
// encoded; otherwise it is stored verbatim.
func DecodeTrack(data []byte, offset, length int, sectorsPerTrack uint16) ([]byte, int, error) {
	nominal := SectorSize * int(sectorsPerTrack)
	dst := make([]byte, 0, min(nominal, maxPrealloc))
	return appendTrack(dst, data, offset, length, nominal, trackPos{-1, -1}, -1)
}

type trackPos struct {
	track, side int
}

// appendTrack decodes one track onto dst. A non-negative limit bounds the
// number of bytes the track may contribute.
func appendTrack(dst, data []byte, offset, length, nominal int, pos trackPos, limit int) ([]byte, int, error) {
	end := offset + length
	start := len(dst)

	if length >= nominal {
		if end > len(data) {
			return dst, offset, errors.Track(errors.KindTruncated, "raw", pos.track, pos.side, offset,
				fmt.Sprintf("need %d bytes, have %d", length, len(data)-offset))
		}
		if limit >= 0 && length > limit {
			return dst, offset, errors.Track(errors.KindMalformedTrack, "raw", pos.track, pos.side, offset,
				fmt.Sprintf("track of %d bytes exceeds limit of %d", length, limit))
		}
		return append(dst, data[offset:end]...), end, nil
	}

	i := offset
	for i < end {
		if i >= len(data) {
			return dst, i, errors.Track(errors.KindTruncated, "literal", pos.track, pos.side, i,
				fmt.Sprintf("track declared to end at %d", end))
		}

		b := data[i]
		if b != EscapeByte {
			dst = append(dst, b)
			i++
		} else {
			switch need := i + escapeLen; {
			case need > len(data):
				return dst, i, errors.Track(errors.KindTruncated, "escape", pos.track, pos.side, i,
					fmt.Sprintf("need %d bytes, have %d", escapeLen, len(data)-i))
			case need > end:
				return dst, i, errors.Track(errors.KindMalformedTrack, "escape", pos.track, pos.side, i,
					fmt.Sprintf("escape run crosses track end at %d", end))
			}

			value := data[i+1]
			count := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
			for n := 0; n < count; n++ {
				dst = append(dst, value)
			}
			i += escapeLen
		}

		if limit >= 0 && len(dst)-start > limit {
			return dst, i, errors.Track(errors.KindMalformedTrack, "expand", pos.track, pos.side, i,
				fmt.Sprintf("track expands past %d bytes", limit))
		}
	}

	return dst, i, nil
}
