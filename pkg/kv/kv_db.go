package kv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cockroachdb/pebble"
)

const geocodePrefix = "geocode:"

type KVDB struct {
	db *pebble.DB
}

func NewKVDB(db *pebble.DB) *KVDB {
	return &KVDB{db}
}

// OpenKVDB buka pebble db di dir.
func OpenKVDB(dir string, opts *pebble.Options) (*KVDB, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("open pebble db %s: %w", dir, err)
	}
	return NewKVDB(db), nil
}

// geocodeKey query dinormalisasi (lowercase, spasi dirapikan) supaya "Heidelberg Zoo" & " heidelberg  zoo" satu entry.
func geocodeKey(query string) []byte {
	normalized := strings.ToLower(strings.Join(strings.Fields(query), " "))
	return []byte(geocodePrefix + normalized)
}

func (k *KVDB) SaveGeocode(query string, entry GeocodeEntry) error {
	bb, err := Encode(entry)
	if err != nil {
		return fmt.Errorf("encode geocode entry: %w", err)
	}
	val, err := Compress(bb)
	if err != nil {
		return fmt.Errorf("compress geocode entry: %w", err)
	}
	return k.db.Set(geocodeKey(query), val, pebble.Sync)
}

// GetGeocode return (entry, true, nil) kalau query sudah pernah di-cache.
func (k *KVDB) GetGeocode(query string) (GeocodeEntry, bool, error) {
	val, closer, err := k.db.Get(geocodeKey(query))
	if errors.Is(err, pebble.ErrNotFound) {
		return GeocodeEntry{}, false, nil
	}
	if err != nil {
		return GeocodeEntry{}, false, err
	}
	defer closer.Close()

	bb, err := Decompress(val)
	if err != nil {
		return GeocodeEntry{}, false, fmt.Errorf("decompress geocode entry: %w", err)
	}
	entry, err := Decode(bb)
	if err != nil {
		return GeocodeEntry{}, false, fmt.Errorf("decode geocode entry: %w", err)
	}
	return entry, true, nil
}

func (k *KVDB) Close() error {
	return k.db.Close()
}
