package domain

import "time"

// Grupos sanguíneos en el orden del formulario (índices 0-7).
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

const (
	GenderFemale = 0
	GenderMale   = 1
)

// ReportInput son los datos tabulares de un informe médico.
// BloodType y TestResult son opcionales.
type ReportInput struct {
	Age           int      `json:"age"`
	Gender        int      `json:"gender"`
	BloodType     *int     `json:"blood_type,omitempty"`
	TestResult    *int     `json:"test_result,omitempty"`
	BillingAmount *float64 `json:"billing_amount,omitempty"`
}

type PotentialCondition struct {
	Name        string   `json:"name"`
	Probability int      `json:"probability"`
	RiskFactors []string `json:"risk_factors"`
}

// KnowledgeEntry es la ficha de una condición.
type KnowledgeEntry struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	RiskFactors   []string `json:"risk_factors" yaml:"risk_factors"`
	Complications []string `json:"complications" yaml:"complications"`
	Treatments    []string `json:"treatments" yaml:"treatments"`
	Prevention    []string `json:"prevention" yaml:"prevention"`
}

type ReportWarning struct {
	Condition string  `json:"condition"`
	Priority  Urgency `json:"priority"`
	Message   string  `json:"message"`
}

// ReportAnalysis es el resultado del análisis de informe.
// AIPowered es false cuando respondió el análisis básico.
type ReportAnalysis struct {
	PotentialConditions     []PotentialCondition `json:"potential_conditions"`
	MedicalKnowledge        []KnowledgeEntry     `json:"medical_knowledge"`
	FollowUpRecommendations []string             `json:"follow_up_recommendations"`
	HealthScore             float64              `json:"health_score"`
	WarningFlags            []ReportWarning      `json:"warning_flags"`
	Timestamp               time.Time            `json:"timestamp"`
	AIPowered               bool                 `json:"ai_powered"`
	ModelUsed               string               `json:"model_used"`
}

type AgeGroupCount struct {
	AgeGroup string `json:"age_group" yaml:"age_group"`
	Count    int    `json:"count" yaml:"count"`
}

type BloodTypeCount struct {
	BloodType string `json:"blood_type" yaml:"blood_type"`
	Count     int    `json:"count" yaml:"count"`
}

// DiseaseInfo resume prevalencia por edad y correlación por grupo sanguíneo.
type DiseaseInfo struct {
	ID                   int              `json:"id" yaml:"id"`
	Name                 string           `json:"name" yaml:"name"`
	Prevalence           []AgeGroupCount  `json:"prevalence" yaml:"prevalence"`
	BloodTypeCorrelation []BloodTypeCount `json:"blood_type_correlation" yaml:"blood_type_correlation"`
}

type KnowledgeArticle struct {
	ID                string   `json:"id" yaml:"id"`
	Title             string   `json:"title" yaml:"title"`
	Content           string   `json:"content" yaml:"content"`
	RelatedConditions []string `json:"related_conditions" yaml:"related_conditions"`
	Source            string   `json:"source" yaml:"source"`
}
