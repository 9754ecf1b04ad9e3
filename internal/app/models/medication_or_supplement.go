package models

import (
	"bytes"

	"github.com/goccy/go-json"
)

// MedicationOrSupplement is one medications or supplements entry. An entry
// whose detail fields are all nil is "bare": it came straight from the free
// text and serializes as a plain string until finalization lifts it.
type MedicationOrSupplement struct {
	Name         string  `json:"name" yaml:"name"`
	DoseStrength *string `json:"dose_strength" yaml:"dose_strength"`
	Frequency    *string `json:"frequency" yaml:"frequency"`
	Purpose      *string `json:"purpose" yaml:"purpose"`
}

type medicationOrSupplement MedicationOrSupplement

func BareMedicationOrSupplement(name string) MedicationOrSupplement {
	return MedicationOrSupplement{Name: name}
}

func (m MedicationOrSupplement) IsBare() bool {
	return m.DoseStrength == nil && m.Frequency == nil && m.Purpose == nil
}

func (m MedicationOrSupplement) Clone() MedicationOrSupplement {
	m.DoseStrength = clonePtr(m.DoseStrength)
	m.Frequency = clonePtr(m.Frequency)
	m.Purpose = clonePtr(m.Purpose)
	return m
}

func (m MedicationOrSupplement) MarshalJSON() ([]byte, error) {
	if m.IsBare() {
		return json.Marshal(m.Name)
	}
	return json.Marshal(medicationOrSupplement(m))
}

func (m *MedicationOrSupplement) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*m = BareMedicationOrSupplement(name)
		return nil
	}

	var entry medicationOrSupplement
	if err := json.Unmarshal(data, &entry); err != nil {
		return err
	}
	*m = MedicationOrSupplement(entry)
	return nil
}

func (m MedicationOrSupplement) MarshalYAML() (interface{}, error) {
	if m.IsBare() {
		return m.Name, nil
	}
	return medicationOrSupplement(m), nil
}
