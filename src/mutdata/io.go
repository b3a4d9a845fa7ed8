package mutdata

import (
	"encoding/json"
	"io/ioutil"
	"strings"

	"gopkg.in/vmihailenco/msgpack.v2"
)

// LoadJSON reads a patient dataset from a (human editable) JSON file
func LoadJSON(path string) (*Patient, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	patient := &Patient{}
	if err := json.Unmarshal(b, patient); err != nil {
		return nil, err
	}
	if err := patient.Validate(); err != nil {
		return nil, err
	}
	return patient, nil
}

// Dump a validated patient dataset to disk
func (Patient *Patient) Dump(path string) error {
	if err := Patient.Validate(); err != nil {
		return err
	}
	b, err := msgpack.Marshal(Patient)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, b, 0644)
}

// Load a patient dataset from disk
func (Patient *Patient) Load(path string) error {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	if err := msgpack.Unmarshal(b, Patient); err != nil {
		return err
	}
	return Patient.Validate()
}

// LoadPatient reads a patient dataset, deciding on the format by file extension
// (.json for the editable input, anything else is treated as a compiled store)
func LoadPatient(path string) (*Patient, error) {
	if strings.HasSuffix(path, ".json") {
		return LoadJSON(path)
	}
	patient := &Patient{}
	if err := patient.Load(path); err != nil {
		return nil, err
	}
	return patient, nil
}
