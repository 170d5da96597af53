package kv

import (
	"github.com/DataDog/zstd"
	"github.com/kelindar/binary"
)

// GeocodeEntry hasil geocoding yang disimpan di cache.
type GeocodeEntry struct {
	Lat         float64
	Lon         float64
	BBox        []float64 // [minLat, maxLat, minLon, maxLon]
	DisplayName string
}

func Encode(entry GeocodeEntry) ([]byte, error) {
	return binary.Marshal(entry)
}

func Decode(bb []byte) (GeocodeEntry, error) {
	var entry GeocodeEntry
	err := binary.Unmarshal(bb, &entry)
	return entry, err
}

func Compress(bb []byte) ([]byte, error) {
	var bbCompressed []byte
	bbCompressed, err := zstd.Compress(bbCompressed, bb)
	if err != nil {
		return []byte{}, err
	}
	return bbCompressed, nil
}

func Decompress(bbCompressed []byte) ([]byte, error) {
	var bb []byte
	bb, err := zstd.Decompress(bb, bbCompressed)
	if err != nil {
		return []byte{}, err
	}

	return bb, nil
}
