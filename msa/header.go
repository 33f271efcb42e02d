package msa

import (
	"encoding/binary"
	"fmt"

	"msa2st/internal/errors"
)

// Geometry is the disk layout declared by an MSA header.
type Geometry struct {
	SectorsPerTrack uint16
	Sides           int    // number of sides; the header stores the last side index
	StartTrack      uint16 // inclusive
	EndTrack        uint16 // inclusive
}

// ParseHeader validates the fixed 10-byte header at the start of data and
// returns the geometry it declares.
func ParseHeader(data []byte) (Geometry, error) {
	if len(data) < HeaderSize {
		return Geometry{}, errors.Header(errors.KindTooShort, len(data),
			fmt.Sprintf("need %d bytes, have %d", HeaderSize, len(data)))
	}
	if magic := binary.BigEndian.Uint16(data[0:2]); magic != Magic {
		return Geometry{}, errors.Header(errors.KindBadMagic, 0,
			fmt.Sprintf("marker 0x%04X", magic))
	}

	return Geometry{
		SectorsPerTrack: binary.BigEndian.Uint16(data[2:4]),
		Sides:           int(binary.BigEndian.Uint16(data[4:6])) + 1,
		StartTrack:      binary.BigEndian.Uint16(data[6:8]),
		EndTrack:        binary.BigEndian.Uint16(data[8:10]),
	}, nil
}

// TrackSize is the uncompressed size of one track on one side.
func (g Geometry) TrackSize() int {
	return SectorSize * int(g.SectorsPerTrack)
}

// TrackCount is the number of tracks per side, or 0 when the range is
// inverted.
func (g Geometry) TrackCount() int {
	if g.EndTrack < g.StartTrack {
		return 0
	}
	return int(g.EndTrack) - int(g.StartTrack) + 1
}

// ImageSize is the nominal size of the decoded ST image.
func (g Geometry) ImageSize() int {
	return g.TrackSize() * g.Sides * g.TrackCount()
}

func (g Geometry) String() string {
	return fmt.Sprintf("%d sectors/track, %d side(s), tracks %d-%d",
		g.SectorsPerTrack, g.Sides, g.StartTrack, g.EndTrack)
}
