package store

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

// RecordsFromJSON decodes a JSON array of objects into records.
// Returns ErrInvalidRecordsJSON when the data is not a valid JSON array.
func RecordsFromJSON(data []byte) ([]Record, error) {
	if !jsoniter.ConfigFastest.Valid(data) {
		return nil, ErrInvalidRecordsJSON
	}

	var records []Record
	if err := jsoniter.ConfigFastest.Unmarshal(data, &records); err != nil {
		return nil, errors.Join(ErrInvalidRecordsJSON, err)
	}

	if records == nil {
		records = []Record{}
	}

	return records, nil
}

// RecordsToJSON encodes records as a JSON array of objects.
func RecordsToJSON(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}

	return jsoniter.ConfigFastest.Marshal(records)
}

// LoadJSON decodes a JSON array of records and replaces the base data with
// it, emitting load. Invalid JSON leaves the Store untouched.
func (s *Store) LoadJSON(data []byte) error {
	records, err := RecordsFromJSON(data)
	if err != nil {
		return err
	}

	s.LoadData(records)

	return nil
}
