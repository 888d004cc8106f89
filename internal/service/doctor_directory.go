package service

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"arogya-ai/internal/domain"
)

//go:embed data/doctors.yaml
var defaultDoctorsYAML []byte

var ErrDoctorNotFound = errors.New("doctor not found")

// DoctorDirectory es el listado fijo de especialistas. Solo lectura.
type DoctorDirectory struct {
	doctors []domain.Doctor
	byID    map[string]int
}

func DefaultDoctorDirectory() (*DoctorDirectory, error) {
	return LoadDoctorDirectory(bytes.NewReader(defaultDoctorsYAML))
}

func LoadDoctorDirectory(r io.Reader) (*DoctorDirectory, error) {
	var doc struct {
		Doctors []domain.Doctor `yaml:"doctors"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}
	if len(doc.Doctors) == 0 {
		return nil, errors.New("doctor directory is empty")
	}
	byID := make(map[string]int, len(doc.Doctors))
	for i, d := range doc.Doctors {
		if d.ID == "" || d.Name == "" || d.Specialty == "" {
			return nil, fmt.Errorf("doctor %d: id, name and specialty are required", i)
		}
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("doctor %q: duplicated id", d.ID)
		}
		byID[d.ID] = i
	}
	return &DoctorDirectory{doctors: doc.Doctors, byID: byID}, nil
}

// Search filtra por especialidad exacta y por barrio contenido en la ubicación.
// Un filtro vacío o "all" no restringe.
func (d *DoctorDirectory) Search(specialty, location string) []domain.Doctor {
	specialty = strings.TrimSpace(specialty)
	location = strings.ToLower(strings.TrimSpace(location))
	out := make([]domain.Doctor, 0, len(d.doctors))
	for _, doc := range d.doctors {
		if specialty != "" && specialty != "all" && !strings.EqualFold(doc.Specialty, specialty) {
			continue
		}
		if location != "" && location != "all" && !strings.Contains(strings.ToLower(doc.Location), location) {
			continue
		}
		out = append(out, doc)
	}
	return out
}

func (d *DoctorDirectory) Get(id string) (domain.Doctor, error) {
	i, ok := d.byID[id]
	if !ok {
		return domain.Doctor{}, ErrDoctorNotFound
	}
	return d.doctors[i], nil
}

// Specialties lista las especialidades en orden de aparición.
func (d *DoctorDirectory) Specialties() []string {
	seen := make(map[string]bool)
	var out []string
	for _, doc := range d.doctors {
		if !seen[doc.Specialty] {
			seen[doc.Specialty] = true
			out = append(out, doc.Specialty)
		}
	}
	return out
}
