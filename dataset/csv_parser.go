// dataset/csv_parser.go
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jszwec/csvutil"

	"github.com/gewnthar/flightqa/apperrors"
	"github.com/gewnthar/flightqa/models"
)

// Decode takes an io.Reader containing a flight dataset (header row first)
// and returns a slice of FlightRecord structs.
func Decode(reader io.Reader) ([]models.FlightRecord, error) {
	var records []models.FlightRecord

	// csvutil maps the header row onto the `csv:"..."` tags in models.FlightRecord.
	decoder, err := csvutil.NewDecoder(csv.NewReader(reader))
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("flight dataset is empty: missing header row")
		}
		return nil, fmt.Errorf("failed to create CSV decoder for flight dataset: %w", err)
	}
	decoder.DisallowMissingColumns = true

	if err := decoder.Decode(&records); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode flight dataset: %w", err)
	}

	slog.Debug("parsed flight dataset", "component", "dataset", "rows", len(records))
	return records, nil
}

// ReadFile opens path and decodes it with Decode.
func ReadFile(path string) ([]models.FlightRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Configuration(fmt.Sprintf("cannot open dataset %s", path), err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
