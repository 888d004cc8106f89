package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"arogya-ai/internal/domain"
	"arogya-ai/internal/llm"
	"arogya-ai/internal/random"
)

func newTestPrescriptionService(checker llm.HealthChecker, rnd random.Source) *PrescriptionService {
	svc := NewPrescriptionService(checker, rnd, zap.NewNop())
	svc.now = func() time.Time { return reportClock }
	return svc
}

func TestPrescriptionUploadValidate(t *testing.T) {
	cases := []struct {
		name   string
		upload PrescriptionUpload
		want   error
	}{
		{name: "png", upload: PrescriptionUpload{ContentType: "image/png", Size: 2048}},
		{name: "exactly 5MB", upload: PrescriptionUpload{ContentType: "image/jpeg", Size: MaxPrescriptionImageBytes}},
		{name: "pdf", upload: PrescriptionUpload{ContentType: "application/pdf", Size: 2048}, want: ErrInvalidFileType},
		{name: "missing type", upload: PrescriptionUpload{Size: 2048}, want: ErrInvalidFileType},
		{name: "too large", upload: PrescriptionUpload{ContentType: "image/png", Size: MaxPrescriptionImageBytes + 1}, want: ErrFileTooLarge},
		{name: "empty", upload: PrescriptionUpload{ContentType: "image/png"}, want: ErrEmptyFile},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.upload.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPrescriptionServiceRejectsBeforeModel(t *testing.T) {
	checker := availableChecker()
	svc := newTestPrescriptionService(checker, fixedSource{})
	_, err := svc.Analyze(context.Background(), PrescriptionUpload{Name: "scan.pdf", ContentType: "application/pdf", Size: 10})
	if !errors.Is(err, ErrInvalidFileType) {
		t.Fatalf("expected ErrInvalidFileType, got %v", err)
	}
	if checker.Calls != 0 {
		t.Fatalf("model should not be consulted for invalid files")
	}
}

func TestPrescriptionServiceSmallestReading(t *testing.T) {
	svc := newTestPrescriptionService(availableChecker(), fixedSource{f: 0})
	res, err := svc.Analyze(context.Background(), PrescriptionUpload{ContentType: "image/png", Size: 1000})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if diff := cmp.Diff([]domain.Medication{prescriptionMedications[0]}, res.Medications); diff != "" {
		t.Fatalf("medications mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Hypertension"}, res.Diagnoses); diff != "" {
		t.Fatalf("diagnoses mismatch (-want +got):\n%s", diff)
	}
	if res.DoctorNotes != "Patient presents with hypertension. Schedule follow-up in 2 weeks." {
		t.Fatalf("unexpected notes %q", res.DoctorNotes)
	}
	if len(res.WarningFlags) != 1 || res.WarningFlags[0].Type != "Dietary Restriction" {
		t.Fatalf("expected grapefruit warning, got %+v", res.WarningFlags)
	}
	if len(res.Interactions) != 0 {
		t.Fatalf("single medication has no interactions, got %+v", res.Interactions)
	}
	wantPatient := domain.PrescriptionPatient{Name: "Patient", Age: 20, Gender: "Female"}
	if res.PatientInfo != wantPatient {
		t.Fatalf("unexpected patient %+v", res.PatientInfo)
	}
	if res.AIAnalysis.ModelUsed != "Gemini Pro" || res.AIAnalysis.ConfidenceScore != 0.75 {
		t.Fatalf("unexpected ai analysis %+v", res.AIAnalysis)
	}
	if len(res.AIAnalysis.Recommendations) != 5 {
		t.Fatalf("expected hypertension advice appended, got %v", res.AIAnalysis.Recommendations)
	}
}

func TestPrescriptionServiceLargestReading(t *testing.T) {
	svc := newTestPrescriptionService(availableChecker(), fixedSource{f: 0.99})
	res, err := svc.Analyze(context.Background(), PrescriptionUpload{ContentType: "image/jpeg", Size: 199})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(res.Medications) != 3 || len(res.Diagnoses) != 2 {
		t.Fatalf("expected 3 medications and 2 diagnoses, got %d/%d", len(res.Medications), len(res.Diagnoses))
	}
	if len(res.Interactions) != 3 {
		t.Fatalf("expected one interaction per pair, got %d", len(res.Interactions))
	}
	if res.PatientInfo.Gender != "Male" || res.PatientInfo.Age != 69 {
		t.Fatalf("unexpected patient %+v", res.PatientInfo)
	}
	if res.AIAnalysis.ModelUsed != "ChatGPT-4" || res.AIAnalysis.ConfidenceScore != 0.95 {
		t.Fatalf("unexpected ai analysis %+v", res.AIAnalysis)
	}
	if got := res.DoctorNotes; got != "Patient presents with hypertension and type 2 diabetes. Follow up in 3 months to assess medication effectiveness." {
		t.Fatalf("unexpected notes %q", got)
	}
}

func TestPrescriptionServiceSeededReadingsStayInBounds(t *testing.T) {
	svc := newTestPrescriptionService(availableChecker(), random.New(21))
	for size := int64(1); size < 300; size += 7 {
		res, err := svc.Analyze(context.Background(), PrescriptionUpload{ContentType: "image/png", Size: size})
		if err != nil {
			t.Fatalf("analyze: %v", err)
		}
		if n := len(res.Medications); n < 1 || n > 3 {
			t.Fatalf("medication count %d out of range", n)
		}
		if n := len(res.Diagnoses); n < 1 || n > 2 {
			t.Fatalf("diagnosis count %d out of range", n)
		}
		seen := map[string]bool{}
		for _, m := range res.Medications {
			if seen[m.Name] {
				t.Fatalf("duplicated medication %q", m.Name)
			}
			seen[m.Name] = true
		}
		if res.PatientInfo.Age < 20 || res.PatientInfo.Age >= 70 {
			t.Fatalf("patient age %d out of range", res.PatientInfo.Age)
		}
		if c := res.AIAnalysis.ConfidenceScore; c < 0.75 || c > 0.95 {
			t.Fatalf("confidence %v out of range", c)
		}
	}
}

func TestMedicationInteractions(t *testing.T) {
	meds := []domain.Medication{{Name: "Ibuprofen"}, {Name: "Lisinopril"}, {Name: "Metformin"}}
	want := []domain.Interaction{
		{Medications: []string{"Ibuprofen", "Lisinopril"}, Severity: domain.UrgencyMedium, Description: "NSAIDs may reduce effectiveness of blood pressure medications"},
		{Medications: []string{"Ibuprofen", "Metformin"}, Severity: domain.UrgencyLow, Description: "No significant interactions expected between these medications"},
		{Medications: []string{"Lisinopril", "Metformin"}, Severity: domain.UrgencyLow, Description: "Monitor blood glucose levels as combination may enhance glucose-lowering effect"},
	}
	if diff := cmp.Diff(want, medicationInteractions(meds)); diff != "" {
		t.Fatalf("interactions mismatch (-want +got):\n%s", diff)
	}
}

func TestPrescriptionServiceFallbackWhenModelDown(t *testing.T) {
	checker := &llm.MockHealthChecker{Health: llm.Health{Available: false}}
	svc := newTestPrescriptionService(checker, fixedSource{})
	res, err := svc.Analyze(context.Background(), PrescriptionUpload{ContentType: "image/png", Size: 10})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.AIAnalysis.ModelUsed != PrescriptionFallbackModel || res.AIAnalysis.ConfidenceScore != 0.7 {
		t.Fatalf("expected fallback reading, got %+v", res.AIAnalysis)
	}
	if res.Medications[1].Name != "Paracetamol" || res.PatientInfo.Gender != "Unknown" {
		t.Fatalf("unexpected fallback %+v", res)
	}
}
