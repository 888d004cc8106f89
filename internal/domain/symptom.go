package domain

// Urgency es la etiqueta fija de triage de cada condición.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// Valid indica si la urgencia pertenece al conjunto {high, medium, low}.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyHigh, UrgencyMedium, UrgencyLow:
		return true
	}
	return false
}

// Condition es una fila de la tabla de condiciones.
type Condition struct {
	Name            string   `json:"condition" yaml:"condition"`
	Keywords        []string `json:"keywords" yaml:"keywords"`
	Confidence      int      `json:"confidence" yaml:"confidence"`
	Description     string   `json:"description" yaml:"description"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
	Urgency         Urgency  `json:"urgency" yaml:"urgency"`
}

// ConditionMatch es una condición candidata con confianza ajustada (0-100).
type ConditionMatch struct {
	Condition       string   `json:"condition"`
	Confidence      int      `json:"confidence"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
	Urgency         Urgency  `json:"urgency"`
}

// SymptomReport agrupa el ranking y el modelo que lo produjo.
// Success es false cuando respondió el matcher de respaldo.
type SymptomReport struct {
	Success   bool             `json:"success"`
	ModelUsed string           `json:"model_used"`
	Results   []ConditionMatch `json:"results"`
}
