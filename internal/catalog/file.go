package catalog

import (
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
)

// LoadFile reads a catalog JSON file and builds a Store. Files ending in
// .gz are decompressed transparently. This is the one boundary where a
// hard failure is allowed: a missing or unreadable file, or a payload
// whose top level is not an array, is an error. Malformed fields inside
// individual records still degrade to defaults.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open catalog file")
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := pgzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(err, "open gzip reader")
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog file")
	}

	records, err := DecodeProducts(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse catalog file")
	}
	return New(records), nil
}

// WriteFile writes the store's products as a catalog JSON file,
// gzip-compressed when the path ends in .gz.
func WriteFile(path string, s *Store) error {
	data := EncodeProducts(s.All())

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create catalog file")
	}

	if strings.HasSuffix(path, ".gz") {
		zw := pgzip.NewWriter(f)
		if _, err := zw.Write(data); err != nil {
			zw.Close()
			f.Close()
			return errors.Wrap(err, "write gzip data")
		}
		if err := zw.Close(); err != nil {
			f.Close()
			return errors.Wrap(err, "close gzip writer")
		}
	} else if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrap(err, "write catalog data")
	}

	return errors.Wrap(f.Close(), "close catalog file")
}
