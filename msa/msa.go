// Package msa decodes Atari ST "MSA" floppy-disk images into raw "ST"
// sector images.
//
// An MSA file is a 10-byte big-endian header followed by one record per
// track and side: a 16-bit length prefix and that many bytes of track data.
// A record shorter than the nominal track size is run-length encoded with
// the escape byte 0xE5; anything else is stored verbatim.
//
// Decoding is all-or-nothing and works purely on in-memory buffers, so a
// Decoder may be used from any number of goroutines at once.
package msa

import (
	"encoding/binary"
	"fmt"

	"msa2st/internal/errors"
)

const (
	// Magic is the big-endian marker at the start of every MSA image.
	Magic = 0x0E0F

	// HeaderSize is the length of the fixed MSA header.
	HeaderSize = 10

	// SectorSize is the size of one decoded sector.
	SectorSize = 512

	// EscapeByte introduces a run: escape, value, 16-bit count.
	EscapeByte = 0xE5

	// DefaultMaxImageSize bounds the decoded output. Real disks decode to
	// well under 2 MiB.
	DefaultMaxImageSize = 64 << 20

	escapeLen   = 4
	lengthLen   = 2
	maxPrealloc = 8 << 20
)

// Anomaly records a track whose decoded size differs from the nominal
// track size. Only lenient decoding reports anomalies; strict decoding
// rejects such images.
type Anomaly struct {
	Track int
	Side  int
	Want  int
	Got   int
}

func (a Anomaly) String() string {
	return fmt.Sprintf("track %d side %d decoded to %d bytes, expected %d", a.Track, a.Side, a.Got, a.Want)
}

// Image is a decoded ST image together with the geometry it was built from.
type Image struct {
	Geometry  Geometry
	Data      []byte
	Anomalies []Anomaly
}

// Decoder converts MSA buffers to ST images.
type Decoder struct {
	// Strict rejects tracks whose declared length exceeds the nominal
	// track size and tracks that do not decode to exactly the nominal
	// size. When false, such tracks are accepted as-is.
	Strict bool

	// MaxImageSize caps the decoded output (DefaultMaxImageSize if 0).
	MaxImageSize int
}

// Decode decodes data leniently and returns the raw ST image.
func Decode(data []byte) ([]byte, error) {
	img, err := Decoder{}.Decode(data)
	if err != nil {
		return nil, err
	}
	return img.Data, nil
}

// Decode parses the header and decodes every track, in ascending track
// order with the sides of each track interleaved.
func (d Decoder) Decode(data []byte) (*Image, error) {
	geo, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if geo.EndTrack < geo.StartTrack {
		return nil, errors.Header(errors.KindMalformedTrack, 6,
			fmt.Sprintf("end track %d precedes start track %d", geo.EndTrack, geo.StartTrack))
	}

	maxSize := d.MaxImageSize
	if maxSize <= 0 {
		maxSize = DefaultMaxImageSize
	}

	nominal := geo.TrackSize()
	img := &Image{
		Geometry: geo,
		Data:     make([]byte, 0, max(min(geo.ImageSize(), maxPrealloc, maxSize), 0)),
	}

	cursor := HeaderSize
	for track := int(geo.StartTrack); track <= int(geo.EndTrack); track++ {
		for side := 0; side < geo.Sides; side++ {
			pos := trackPos{track, side}

			if cursor+lengthLen > len(data) {
				return nil, errors.Track(errors.KindTruncated, "length", track, side, cursor,
					fmt.Sprintf("need %d bytes, have %d", lengthLen, len(data)-cursor))
			}
			length := int(binary.BigEndian.Uint16(data[cursor : cursor+lengthLen]))
			cursor += lengthLen

			if d.Strict && length > nominal {
				return nil, errors.Track(errors.KindMalformedTrack, "length", track, side, cursor-lengthLen,
					fmt.Sprintf("declared %d bytes, track holds %d", length, nominal))
			}

			limit := maxSize - len(img.Data)
			if d.Strict {
				limit = min(limit, nominal)
			}

			before := len(img.Data)
			img.Data, cursor, err = appendTrack(img.Data, data, cursor, length, nominal, pos, limit)
			if err != nil {
				return nil, err
			}

			if got := len(img.Data) - before; got != nominal {
				if d.Strict {
					return nil, errors.Track(errors.KindMalformedTrack, "verify", track, side, cursor,
						fmt.Sprintf("decoded %d bytes, expected %d", got, nominal))
				}
				img.Anomalies = append(img.Anomalies, Anomaly{Track: track, Side: side, Want: nominal, Got: got})
			}
		}
	}

	return img, nil
}
