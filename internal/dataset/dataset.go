// Package dataset loads and validates the fault records searched by the app.
package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/altin/fault-finder/internal/model"
)

//go:embed faults.yaml
var defaultData []byte

type document struct {
	Faults []model.FaultRecord `yaml:"faults"`
}

// Default returns the fault records bundled with the binary.
func Default() ([]model.FaultRecord, error) {
	records, err := Parse(defaultData)
	if err != nil {
		return nil, fmt.Errorf("parse bundled dataset: %w", err)
	}
	return records, nil
}

// Load reads fault records from a YAML file.
func Load(path string) ([]model.FaultRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return records, nil
}

// Parse decodes a YAML document with a top-level "faults" list and validates
// every record. Unknown keys are rejected.
func Parse(data []byte) ([]model.FaultRecord, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDataset
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(doc.Faults) == 0 {
		return nil, ErrEmptyDataset
	}

	for i, r := range doc.Faults {
		if err := Validate(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return doc.Faults, nil
}

// Validate checks the required fields of a record. Optional fields are not
// inspected; an absent cause or check is valid.
func Validate(r model.FaultRecord) error {
	if strings.TrimSpace(r.Brand) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyBrand)
	}
	if strings.TrimSpace(r.FaultCode) == "" {
		return fmt.Errorf("%w: %w (brand %s)", ErrInvalidRecord, ErrEmptyFaultCode, r.Brand)
	}
	if strings.TrimSpace(r.Model) == "" {
		return fmt.Errorf("%w: %w (%s)", ErrInvalidRecord, ErrEmptyModel, r.Key())
	}
	return nil
}

// BrandCount is the number of records filed under one brand.
type BrandCount struct {
	Brand string
	Count int
}

// Brands groups records by brand, ignoring case. The first spelling seen is
// kept and brands are returned in first-seen order.
func Brands(records []model.FaultRecord) []BrandCount {
	var counts []BrandCount
	index := make(map[string]int)

	for _, r := range records {
		k := strings.ToLower(strings.TrimSpace(r.Brand))
		if i, ok := index[k]; ok {
			counts[i].Count++
			continue
		}
		index[k] = len(counts)
		counts = append(counts, BrandCount{Brand: r.Brand, Count: 1})
	}
	return counts
}
