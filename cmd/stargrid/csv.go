package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/stargrid/stargrid"
)

// readCSV loads the six-field star contract from a CSV file: one row per
// star, "id,ra,de,distance,brightness,colorindex" with angles in radians.
// Derived geometry is reconstructed by NewStar on the caller's side.
func readCSV(path string) ([]stargrid.StarData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 6

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	data := make([]stargrid.StarData, 0, len(rows))
	for i, row := range rows {
		d, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		data = append(data, d)
	}

	return data, nil
}

func parseRow(row []string) (stargrid.StarData, error) {
	id, err := strconv.ParseUint(row[0], 10, 64)
	if err != nil {
		return stargrid.StarData{}, fmt.Errorf("id %q: %w", row[0], err)
	}

	var scalars [5]float64
	for i, field := range row[1:] {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return stargrid.StarData{}, fmt.Errorf("field %q: %w", field, err)
		}
		scalars[i] = v
	}

	return stargrid.StarData{
		ID:         stargrid.StarID(id),
		Ra:         scalars[0],
		De:         scalars[1],
		Distance:   float32(scalars[2]),
		Brightness: float32(scalars[3]),
		ColorIndex: float32(scalars[4]),
	}, nil
}
