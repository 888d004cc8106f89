package domain

import "time"

type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

type PrescriptionPatient struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

type PrescriptionWarning struct {
	Type     string  `json:"type"`
	Severity Urgency `json:"severity"`
	Message  string  `json:"message"`
}

// Interaction describe el par de medicamentos y su severidad.
type Interaction struct {
	Medications []string `json:"medications"`
	Severity    Urgency  `json:"severity"`
	Description string   `json:"description"`
}

type PrescriptionAI struct {
	ModelUsed       string   `json:"model_used"`
	ConfidenceScore float64  `json:"confidence_score"`
	Recommendations []string `json:"recommendations"`
}

// PrescriptionAnalysis es la lectura simulada de una receta escaneada.
type PrescriptionAnalysis struct {
	Medications  []Medication          `json:"medications"`
	Diagnoses    []string              `json:"diagnoses"`
	DoctorNotes  string                `json:"doctor_notes"`
	PatientInfo  PrescriptionPatient   `json:"patient_info"`
	WarningFlags []PrescriptionWarning `json:"warning_flags"`
	Interactions []Interaction         `json:"interactions"`
	Timestamp    time.Time             `json:"timestamp"`
	AIAnalysis   PrescriptionAI        `json:"ai_analysis"`
}
