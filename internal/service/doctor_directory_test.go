package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDoctorDirectorySearch(t *testing.T) {
	dir, err := DefaultDoctorDirectory()
	if err != nil {
		t.Fatalf("load directory: %v", err)
	}
	cases := []struct {
		specialty string
		location  string
		want      int
	}{
		{"", "", 25},
		{"all", "all", 25},
		{"Pulmonologist", "", 5},
		{"pediatrician", "", 5},
		{"all", "Kothrud", 4},
		{"ENT Specialist", "aundh", 1},
		{"Cardiologist", "", 0},
	}
	for _, tc := range cases {
		got := dir.Search(tc.specialty, tc.location)
		if len(got) != tc.want {
			t.Fatalf("Search(%q, %q) returned %d doctors, want %d", tc.specialty, tc.location, len(got), tc.want)
		}
	}

	want := []string{"Pulmonologist", "General Physician", "ENT Specialist", "Infectious Disease", "Pediatrician"}
	if diff := cmp.Diff(want, dir.Specialties()); diff != "" {
		t.Fatalf("specialties mismatch (-want +got):\n%s", diff)
	}
}

func TestDoctorDirectoryGet(t *testing.T) {
	dir, err := DefaultDoctorDirectory()
	if err != nil {
		t.Fatalf("load directory: %v", err)
	}
	doc, err := dir.Get("6")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if doc.Name != "Dr. Priya Patel" || doc.Hospital != "" || doc.ConsultationFee != "₹600" {
		t.Fatalf("unexpected doctor %+v", doc)
	}
	if _, err := dir.Get("999"); !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestLoadDoctorDirectoryValidation(t *testing.T) {
	cases := map[string]string{
		"empty":         "doctors: []\n",
		"duplicated id": "doctors:\n  - {id: \"1\", name: A, specialty: X}\n  - {id: \"1\", name: B, specialty: X}\n",
		"missing name":  "doctors:\n  - {id: \"1\", specialty: X}\n",
		"unknown field": "doctors:\n  - {id: \"1\", name: A, specialty: X, phone: \"123\"}\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadDoctorDirectory(strings.NewReader(src)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
