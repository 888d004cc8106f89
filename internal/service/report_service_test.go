package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"arogya-ai/internal/domain"
	"arogya-ai/internal/llm"
	"arogya-ai/internal/random"
)

// fixedSource devuelve siempre el mínimo de IntN y el mismo Float64.
type fixedSource struct {
	f float64
}

func (s fixedSource) IntN(int) int     { return 0 }
func (s fixedSource) Float64() float64 { return s.f }

var reportClock = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

func newTestReportService(t *testing.T, checker llm.HealthChecker, rnd random.Source) *ReportService {
	t.Helper()
	cat, err := DefaultReportCatalog()
	if err != nil {
		t.Fatalf("load report catalog: %v", err)
	}
	svc := NewReportService(checker, cat, rnd, zap.NewNop())
	svc.now = func() time.Time { return reportClock }
	return svc
}

func TestReportServiceAssistedAnalysis(t *testing.T) {
	svc := newTestReportService(t, availableChecker(), fixedSource{})
	res, err := svc.Analyze(context.Background(), domain.ReportInput{
		Age:        70,
		Gender:     domain.GenderMale,
		BloodType:  intPtr(0),
		TestResult: intPtr(1),
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !res.AIPowered || res.ModelUsed != ReportModel {
		t.Fatalf("expected assisted analysis, got %q ai=%v", res.ModelUsed, res.AIPowered)
	}

	var names []string
	for _, c := range res.PotentialConditions {
		names = append(names, c.Name)
	}
	if diff := cmp.Diff([]string{"Inflammatory Response", "Hypertension", "Osteoarthritis"}, names); diff != "" {
		t.Fatalf("top conditions mismatch (-want +got):\n%s", diff)
	}
	// 100 - 28 (edad) - 19 (probabilidades) - 10 (test positivo)
	if res.HealthScore != 43 {
		t.Fatalf("expected health score 43, got %v", res.HealthScore)
	}
	if len(res.FollowUpRecommendations) != 7 {
		t.Fatalf("expected 3 base + 4 condition follow-ups, got %v", res.FollowUpRecommendations)
	}
	if !strings.Contains(res.FollowUpRecommendations[2], "age (70)") {
		t.Fatalf("expected age in screening advice, got %q", res.FollowUpRecommendations[2])
	}

	generic := res.MedicalKnowledge[0]
	if generic.ID != "inflammatory-response-ai" || !strings.HasPrefix(generic.Description, "Inflammatory Response is a health condition") {
		t.Fatalf("unexpected generic knowledge %+v", generic)
	}
	if res.MedicalKnowledge[1].ID != "hypertension-ai" || res.MedicalKnowledge[2].ID != "osteoarthritis-ai" {
		t.Fatalf("expected catalog knowledge entries, got %+v", res.MedicalKnowledge[1:])
	}

	wantFlags := []domain.ReportWarning{
		{Condition: "Advanced Age", Priority: domain.UrgencyMedium, Message: "Regular health monitoring recommended for adults over 65"},
		{Condition: "Inflammatory Response", Priority: domain.UrgencyMedium, Message: "Moderate risk of Inflammatory Response detected, monitor symptoms"},
		{Condition: "Hypertension", Priority: domain.UrgencyMedium, Message: "Moderate risk of Hypertension detected, monitor symptoms"},
		{Condition: "Osteoarthritis", Priority: domain.UrgencyMedium, Message: "Moderate risk of Osteoarthritis detected, monitor symptoms"},
		{Condition: "Blood Type Risk Factor", Priority: domain.UrgencyLow, Message: "Type A blood groups may have higher susceptibility to certain conditions"},
	}
	if diff := cmp.Diff(wantFlags, res.WarningFlags); diff != "" {
		t.Fatalf("warning flags mismatch (-want +got):\n%s", diff)
	}
	if !res.Timestamp.Equal(reportClock) {
		t.Fatalf("unexpected timestamp %v", res.Timestamp)
	}
}

func TestReportServiceAgeBands(t *testing.T) {
	cases := []struct {
		name  string
		in    domain.ReportInput
		want  []string
		score float64
	}{
		{
			name:  "teen",
			in:    domain.ReportInput{Age: 15, Gender: domain.GenderFemale},
			want:  []string{"Seasonal Allergies"},
			score: 91,
		},
		{
			name: "young adult with AB blood",
			in:   domain.ReportInput{Age: 30, Gender: domain.GenderMale, BloodType: intPtr(4)},
			want: []string{"Vitamin D Deficiency", "Anxiety Disorders", "Cardiovascular Disease Risk"},
			// 100 - 12 - (4 + 2.5 + 2)
			score: 80,
		},
		{
			name: "middle aged woman",
			in:   domain.ReportInput{Age: 45, Gender: domain.GenderFemale, TestResult: intPtr(0)},
			want: []string{"Type 2 Diabetes", "Breast Cancer Risk"},
			// 100 - 18 - (4.5 + 2)
			score: 76,
		},
		{
			name:  "middle aged man",
			in:    domain.ReportInput{Age: 45, Gender: domain.GenderMale},
			want: []string{"Type 2 Diabetes", "Coronary Artery Disease"},
			// 100 - 18 - (4.5 + 3)
			score: 75,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestReportService(t, availableChecker(), fixedSource{})
			res, err := svc.Analyze(context.Background(), tc.in)
			if err != nil {
				t.Fatalf("analyze: %v", err)
			}
			var got []string
			for _, c := range res.PotentialConditions {
				got = append(got, c.Name)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("conditions mismatch (-want +got):\n%s", diff)
			}
			if res.HealthScore != tc.score {
				t.Fatalf("expected score %v, got %v", tc.score, res.HealthScore)
			}
		})
	}
}

func TestReportServiceProbabilityRanges(t *testing.T) {
	svc := newTestReportService(t, availableChecker(), random.New(99))
	for i := 0; i < 200; i++ {
		res, err := svc.Analyze(context.Background(), domain.ReportInput{Age: 75, Gender: domain.GenderMale, TestResult: intPtr(1)})
		if err != nil {
			t.Fatalf("analyze: %v", err)
		}
		if len(res.PotentialConditions) != maxReportConditions {
			t.Fatalf("expected 3 conditions, got %d", len(res.PotentialConditions))
		}
		for j, c := range res.PotentialConditions {
			if j > 0 && c.Probability > res.PotentialConditions[j-1].Probability {
				t.Fatalf("conditions not sorted: %+v", res.PotentialConditions)
			}
			if c.Name == "Hypertension" && (c.Probability < 65 || c.Probability >= 80) {
				t.Fatalf("hypertension probability out of range: %d", c.Probability)
			}
		}
		if res.HealthScore < 10 || res.HealthScore > 95 {
			t.Fatalf("health score out of bounds: %v", res.HealthScore)
		}
	}
}

func TestReportServiceBasicAnalysisWhenModelDown(t *testing.T) {
	checker := &llm.MockHealthChecker{Health: llm.Health{Available: false}}
	svc := newTestReportService(t, checker, fixedSource{})

	res, err := svc.Analyze(context.Background(), domain.ReportInput{Age: 31, Gender: domain.GenderMale})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.AIPowered || res.ModelUsed != ReportFallbackModel {
		t.Fatalf("expected basic analysis, got %q ai=%v", res.ModelUsed, res.AIPowered)
	}
	if res.HealthScore != 79.5 {
		t.Fatalf("expected 79.5, got %v", res.HealthScore)
	}
	want := []domain.PotentialCondition{
		{Name: "Common Cold", Probability: 45, RiskFactors: []string{"Age 31", "Male"}},
		{Name: "Seasonal Allergies", Probability: 35, RiskFactors: []string{"Age 31", "Sedentary Lifestyle"}},
	}
	if diff := cmp.Diff(want, res.PotentialConditions); diff != "" {
		t.Fatalf("conditions mismatch (-want +got):\n%s", diff)
	}
	if len(res.WarningFlags) != 0 || len(res.MedicalKnowledge) != 2 {
		t.Fatalf("unexpected basic analysis %+v", res)
	}

	old, err := svc.Analyze(context.Background(), domain.ReportInput{Age: 64, Gender: domain.GenderFemale})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if old.PotentialConditions[0].Name != "Hypertension" || old.PotentialConditions[1].Name != "Type 2 Diabetes" {
		t.Fatalf("unexpected conditions for 64: %+v", old.PotentialConditions)
	}
	if len(old.WarningFlags) != 1 || old.WarningFlags[0].Condition != "Age-related risks" {
		t.Fatalf("expected age warning, got %+v", old.WarningFlags)
	}
}

func TestReportServiceHealthCheckError(t *testing.T) {
	checker := &llm.MockHealthChecker{Err: errors.New("boom")}
	svc := newTestReportService(t, checker, fixedSource{})
	res, err := svc.Analyze(context.Background(), domain.ReportInput{Age: 40})
	if err != nil {
		t.Fatalf("expected fallback, got %v", err)
	}
	if res.AIPowered {
		t.Fatalf("expected basic analysis on health error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	checker.Err = context.Canceled
	if _, err := svc.Analyze(ctx, domain.ReportInput{Age: 40}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestReportServiceValidation(t *testing.T) {
	neg := -5.0
	cases := map[string]domain.ReportInput{
		"negative age":     {Age: -1},
		"huge age":         {Age: 500},
		"unknown gender":   {Age: 30, Gender: 2},
		"blood type 8":     {Age: 30, BloodType: intPtr(8)},
		"test result 3":    {Age: 30, TestResult: intPtr(3)},
		"negative billing": {Age: 30, BillingAmount: &neg},
	}
	checker := availableChecker()
	svc := newTestReportService(t, checker, fixedSource{})
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Analyze(context.Background(), in); !errors.Is(err, ErrInvalidReport) {
				t.Fatalf("expected ErrInvalidReport, got %v", err)
			}
		})
	}
	if checker.Calls != 0 {
		t.Fatalf("invalid input must not reach the model, calls=%d", checker.Calls)
	}
}

func TestReportServiceCatalogQueries(t *testing.T) {
	svc := newTestReportService(t, availableChecker(), fixedSource{})

	diseases := svc.Diseases()
	if len(diseases) != 2 || diseases[0].Name != "Hypertension" || len(diseases[1].Prevalence) != 3 {
		t.Fatalf("unexpected diseases %+v", diseases)
	}
	if got := svc.Knowledge(""); len(got) != 2 {
		t.Fatalf("expected all articles, got %d", len(got))
	}
	got := svc.Knowledge("Blood SUGAR")
	if len(got) != 1 || got[0].ID != "diabetes-001" {
		t.Fatalf("expected diabetes article, got %+v", got)
	}
	if got := svc.Knowledge("asthma"); len(got) != 0 {
		t.Fatalf("expected no match, got %+v", got)
	}
}

func TestLoadReportCatalogRejectsUnknownFields(t *testing.T) {
	_, err := LoadReportCatalog(strings.NewReader("diseases: []\nextra: 1\n"))
	if err == nil {
		t.Fatalf("expected decode error")
	}
}
