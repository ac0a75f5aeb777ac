// dataset/csv_writer.go
package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jszwec/csvutil"

	"github.com/gewnthar/flightqa/apperrors"
	"github.com/gewnthar/flightqa/models"
)

// Encode writes records as comma-separated text with a header row.
// The header comes from the csv tags on models.FlightRecord and is written even for an empty table.
func Encode(w io.Writer, records []models.FlightRecord) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	// Plain decimal notation, shortest form that round-trips.
	enc.Register(func(f float64) ([]byte, error) {
		return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
	})

	if err := enc.EncodeHeader(models.FlightRecord{}); err != nil {
		return fmt.Errorf("failed to encode CSV header: %w", err)
	}
	for i := range records {
		if err := enc.Encode(records[i]); err != nil {
			return fmt.Errorf("failed to encode flight %s (row %d): %w", records[i].FlightID, i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// CheckDestination verifies that path names a file inside an existing directory.
func CheckDestination(path string) error {
	if path == "" {
		return apperrors.Configuration("output path is not configured", nil)
	}
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return apperrors.Configuration(fmt.Sprintf("destination directory %s is not accessible", dir), err)
	}
	if !info.IsDir() {
		return apperrors.Configuration(fmt.Sprintf("destination %s is not a directory", dir), nil)
	}
	return nil
}

// WriteFile encodes the full table in memory and then writes it to path through a
// temporary file in the same directory, so a failed run never leaves a half-written file.
// The destination directory must already exist.
func WriteFile(path string, records []models.FlightRecord) error {
	if err := CheckDestination(path); err != nil {
		return err
	}
	dir := filepath.Dir(path)

	var buf bytes.Buffer
	if err := Encode(&buf, records); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return apperrors.Configuration(fmt.Sprintf("destination directory %s is not writable", dir), err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.Configuration(fmt.Sprintf("failed to write %s", tmpName), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperrors.Configuration(fmt.Sprintf("failed to close %s", tmpName), err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return apperrors.Configuration(fmt.Sprintf("failed to set permissions on %s", tmpName), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return apperrors.Configuration(fmt.Sprintf("failed to move dataset into place at %s", path), err)
	}

	slog.Info("wrote flight dataset", "component", "dataset", "path", path, "rows", len(records), "bytes", buf.Len())
	return nil
}
