package service

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"arogya-ai/internal/domain"
)

//go:embed data/conditions.yaml
var defaultConditionsYAML []byte

// ConditionTable es la tabla estática del matcher de síntomas.
// Se decodifica una vez al arrancar y no se modifica después.
type ConditionTable struct {
	Conditions  []domain.Condition `yaml:"conditions"`
	Child       []domain.Condition `yaml:"child_conditions"`
	Elderly     []domain.Condition `yaml:"elderly_conditions"`
	Unspecified []domain.Condition `yaml:"unspecified"`
	Fallback    []domain.Condition `yaml:"fallback"`
}

// DefaultConditionTable decodifica la tabla embebida en el binario.
func DefaultConditionTable() (*ConditionTable, error) {
	return LoadConditionTable(bytes.NewReader(defaultConditionsYAML))
}

// LoadConditionFile lee una tabla alternativa desde disco.
func LoadConditionFile(path string) (*ConditionTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open conditions file: %w", err)
	}
	defer f.Close()
	return LoadConditionTable(f)
}

// LoadConditionTable decodifica y valida una tabla en YAML.
func LoadConditionTable(r io.Reader) (*ConditionTable, error) {
	var table ConditionTable
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil {
		return nil, fmt.Errorf("decode conditions: %w", err)
	}
	if err := table.validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

func (t *ConditionTable) validate() error {
	if len(t.Conditions) == 0 {
		return errors.New("conditions table is empty")
	}
	if len(t.Unspecified) != 1 {
		return errors.New("conditions table needs exactly one unspecified entry")
	}
	if len(t.Fallback) == 0 || len(t.Fallback[len(t.Fallback)-1].Keywords) != 0 {
		return errors.New("fallback rules must end with a keyword-less default")
	}

	groups := [][]domain.Condition{t.Conditions, t.Child, t.Elderly, t.Unspecified, t.Fallback}
	for _, group := range groups {
		for _, c := range group {
			if c.Name == "" {
				return errors.New("condition without name")
			}
			if !c.Urgency.Valid() {
				return fmt.Errorf("condition %q: invalid urgency %q", c.Name, c.Urgency)
			}
			if c.Confidence < 0 || c.Confidence > 100 {
				return fmt.Errorf("condition %q: confidence %d out of range", c.Name, c.Confidence)
			}
		}
	}
	for _, c := range t.Conditions {
		if len(c.Keywords) == 0 {
			return fmt.Errorf("condition %q has no keywords", c.Name)
		}
	}
	return nil
}

// forAge devuelve las condiciones aplicables; no modifica la tabla.
func (t *ConditionTable) forAge(age *int) []domain.Condition {
	out := make([]domain.Condition, 0, len(t.Conditions)+len(t.Child))
	out = append(out, t.Conditions...)
	if age == nil {
		return out
	}
	switch {
	case *age < 18:
		out = append(out, t.Child...)
	case *age > 65:
		out = append(out, t.Elderly...)
	}
	return out
}
