package domain

import "time"

// MoodAnalysis es el resultado del analizador de ánimo para un mensaje.
// Mood, Anxiety y Stress están siempre en [0,1].
type MoodAnalysis struct {
	Mood              float64  `json:"mood"`
	Anxiety           float64  `json:"anxiety"`
	Stress            float64  `json:"stress"`
	PrimaryEmotion    string   `json:"primary_emotion"`
	SecondaryEmotions []string `json:"secondary_emotions"`
}

// MoodEntry es un punto del historial de ánimo en escala 0-100.
type MoodEntry struct {
	Date    time.Time `json:"date"`
	Mood    float64   `json:"mood"`
	Anxiety float64   `json:"anxiety"`
	Stress  float64   `json:"stress"`
}

// NewMoodEntry convierte un análisis 0-1 en un punto de historial 0-100.
func NewMoodEntry(a MoodAnalysis, at time.Time) MoodEntry {
	return MoodEntry{
		Date:    at.UTC(),
		Mood:    clampPercent(a.Mood * 100),
		Anxiety: clampPercent(a.Anxiety * 100),
		Stress:  clampPercent(a.Stress * 100),
	}
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
