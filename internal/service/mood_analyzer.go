package service

import (
	"math"
	"strings"
	"unicode/utf16"

	"arogya-ai/internal/domain"
)

// Etiqueta usada cuando el texto no tiene ninguna señal emocional.
const EmotionNeutral = "Neutral"

var positiveKeywords = []string{
	"happy", "joy", "excited", "grateful", "thankful", "content", "peaceful",
	"optimistic", "great", "good", "wonderful", "fantastic", "excellent", "amazing",
	"blessed", "fortunate", "pleased", "glad", "enjoying", "positive",
}

var negativeKeywords = []string{
	"sad", "depressed", "unhappy", "miserable", "down", "low", "disappointed",
	"upset", "heartbroken", "devastated", "hopeless", "gloomy", "dejected", "bad",
	"terrible", "awful", "horrible", "failed", "negative", "worst",
}

var anxietyKeywords = []string{
	"anxious", "worried", "nervous", "uneasy", "afraid", "fearful", "panicked",
	"tense", "apprehensive", "dread", "panic", "terror", "phobia", "scared",
	"frightened", "terrified", "concerned", "stressed", "stress", "overthinking",
	"restless", "insecure", "on edge", "uncomfortable", "trouble sleeping",
}

var stressKeywords = []string{
	"stressed", "stress", "overwhelmed", "pressure", "burden", "workload", "deadline",
	"exhausted", "tired", "drained", "burnout", "overworked", "fatigued",
	"strain", "tense", "hassled", "frazzled", "busy", "hectic", "chaos", "rushed",
	"hurry", "time-pressure", "overloaded",
}

type emotionRule struct {
	label    string
	keywords []string
}

// emotionRules está en orden de prioridad; el orden decide empates.
var emotionRules = []emotionRule{
	{"Happy", []string{"happy", "joy", "excited", "pleased", "glad", "enjoying"}},
	{"Grateful", []string{"grateful", "thankful", "blessed", "fortunate", "appreciative"}},
	{"Content", []string{"content", "peaceful", "satisfied", "calm", "relaxed"}},
	{"Optimistic", []string{"optimistic", "hopeful", "positive", "looking forward"}},
	{"Sad", []string{"sad", "unhappy", "down", "low", "disappointed", "upset", "heartbroken"}},
	{"Depressed", []string{"depressed", "hopeless", "gloomy", "dejected", "miserable"}},
	{"Anxious", []string{"anxious", "worried", "nervous", "uneasy", "apprehensive"}},
	{"Fearful", []string{"afraid", "fearful", "scared", "frightened", "terrified"}},
	{"Stressed", []string{"stressed", "stress", "overwhelmed", "pressure", "burden", "overworked"}},
	{"Exhausted", []string{"exhausted", "tired", "drained", "burnout", "fatigued"}},
	{"Angry", []string{"angry", "frustrated", "annoyed", "irritated", "mad"}},
	{"Confused", []string{"confused", "uncertain", "unsure", "lost", "perplexed"}},
}

type emotionAxis int

const (
	axisMood emotionAxis = iota
	axisAnxiety
	axisStress
)

// MoodAnalyzer puntúa texto libre contra listas de palabras clave.
// Es inmutable después de construirse y seguro entre goroutines.
type MoodAnalyzer struct {
	positive wordMatcher
	negative wordMatcher
	anxiety  wordMatcher
	stress   wordMatcher
}

func NewMoodAnalyzer() *MoodAnalyzer {
	return &MoodAnalyzer{
		positive: newWordMatcher(positiveKeywords),
		negative: newWordMatcher(negativeKeywords),
		anxiety:  newWordMatcher(anxietyKeywords),
		stress:   newWordMatcher(stressKeywords),
	}
}

// Analyze calcula ánimo, ansiedad, estrés y emociones de un mensaje.
func (a *MoodAnalyzer) Analyze(text string) domain.MoodAnalysis {
	lower := strings.ToLower(text)

	positive := a.positive.Count(lower)
	negative := a.negative.Count(lower)

	mood := 0.5
	if total := positive + negative; total > 0 {
		mood = 0.5 + float64(positive-negative)/float64(2*total)
	}
	length := textUnits(lower)
	anxiety := intensityScore(a.anxiety.Count(lower), length)
	stress := intensityScore(a.stress.Count(lower), length)

	primary := primaryEmotion(lower, mood, anxiety, stress)
	return domain.MoodAnalysis{
		Mood:              clampUnit(mood),
		Anxiety:           anxiety,
		Stress:            stress,
		PrimaryEmotion:    primary,
		SecondaryEmotions: secondaryEmotions(lower, primary),
	}
}

// intensityScore normaliza por longitud (cada 100 caracteres) con techo 0.9.
func intensityScore(count, textLength int) float64 {
	if count == 0 || textLength == 0 {
		return 0
	}
	normalized := float64(count) / (float64(textLength) / 100)
	return math.Min(0.9, normalized/10)
}

// textUnits cuenta unidades UTF-16, igual que la longitud que ve el cliente web.
// Un texto en devanagari no debe pesar tres veces más que uno en ASCII.
func textUnits(s string) int {
	n := 0
	for _, r := range s {
		if size := utf16.RuneLen(r); size > 0 {
			n += size
		} else {
			n++
		}
	}
	return n
}

func primaryEmotion(lower string, mood, anxiety, stress float64) string {
	scores := []float64{math.Abs(mood-0.5) * 2, anxiety, stress}
	best := axisMood
	for i := axisAnxiety; i <= axisStress; i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	if scores[best] == 0 {
		return EmotionNeutral
	}

	switch best {
	case axisMood:
		if mood > 0.6 {
			return firstMatchingEmotion(lower, "Happy", "Happy", "Grateful", "Content", "Optimistic")
		}
		return firstMatchingEmotion(lower, "Sad", "Sad", "Depressed")
	case axisAnxiety:
		return firstMatchingEmotion(lower, "Anxious", "Anxious", "Fearful")
	default:
		return firstMatchingEmotion(lower, "Stressed", "Stressed", "Exhausted")
	}
}

// firstMatchingEmotion recorre emotionRules en orden y devuelve la primera
// etiqueta candidata presente en el texto, o fallback.
func firstMatchingEmotion(lower, fallback string, candidates ...string) string {
	for _, rule := range emotionRules {
		if !containsLabel(candidates, rule.label) {
			continue
		}
		if containsAny(lower, rule.keywords) {
			return rule.label
		}
	}
	return fallback
}

func secondaryEmotions(lower, primary string) []string {
	out := make([]string, 0, 2)
	for _, rule := range emotionRules {
		if rule.label != primary && containsAny(lower, rule.keywords) {
			out = append(out, rule.label)
		}
		if len(out) >= 2 {
			break
		}
	}
	return out
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
