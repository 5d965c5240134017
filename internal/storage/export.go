package storage

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// WriteBloomsCSV writes entries with a header row.
func WriteBloomsCSV(w io.Writer, entries []BloomEntry) error {
	if entries == nil {
		entries = []BloomEntry{}
	}
	if err := gocsv.Marshal(entries, w); err != nil {
		return fmt.Errorf("storage: writing blooms csv: %w", err)
	}
	return nil
}
