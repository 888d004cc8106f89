package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"arogya-ai/internal/domain"
	"arogya-ai/internal/random"
)

// CompanionService arma la respuesta empática del chat de salud mental.
type CompanionService struct {
	analyzer *MoodAnalyzer
	rnd      random.Source
	logger   *zap.Logger
}

func NewCompanionService(analyzer *MoodAnalyzer, rnd random.Source, logger *zap.Logger) *CompanionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompanionService{
		analyzer: analyzer,
		rnd:      rnd,
		logger:   logger,
	}
}

// Reply analiza el mensaje y genera la respuesta en un solo paso.
func (s *CompanionService) Reply(text string) (domain.MoodAnalysis, domain.CompanionReply) {
	analysis := s.analyzer.Analyze(text)
	return analysis, s.Respond(text, analysis)
}

// Respond genera mensaje, ejercicios y videos para un análisis ya calculado.
func (s *CompanionService) Respond(text string, a domain.MoodAnalysis) domain.CompanionReply {
	state := classifyEmotionalState(a)

	base, _ := random.Pick(s.rnd, responseTemplates[state])
	followUp, _ := random.Pick(s.rnd, followUpQuestions)

	var b strings.Builder
	b.WriteString(base)
	if topics := extractTopics(text); len(topics) > 0 {
		fmt.Fprintf(&b, " I notice you mentioned %s. ", strings.Join(topics, " and "))
	}
	b.WriteString(recommendationText(a))
	b.WriteString(" ")
	b.WriteString(followUp)

	s.logger.Debug("companion reply",
		zap.String("state", string(state)),
		zap.String("primary_emotion", a.PrimaryEmotion),
	)

	return domain.CompanionReply{
		Message:   b.String(),
		Exercises: selectExercises(a),
		Videos:    selectVideos(a),
	}
}

func classifyEmotionalState(a domain.MoodAnalysis) emotionalState {
	switch {
	case a.Anxiety > 0.6:
		return stateAnxious
	case a.Stress > 0.6:
		return stateStressed
	case a.Mood < 0.3:
		if a.PrimaryEmotion == "Depressed" {
			return stateDepressed
		}
		return stateSad
	default:
		return stateGeneral
	}
}

func extractTopics(text string) []string {
	lower := strings.ToLower(text)
	var topics []string
	for _, area := range lifeAreas {
		if strings.Contains(lower, area.term) || containsAny(lower, area.synonyms) {
			topics = append(topics, area.term)
		}
	}
	return topics
}

func recommendationText(a domain.MoodAnalysis) string {
	switch {
	case a.Anxiety > 0.5:
		return " Anxiety can be challenging, but there are techniques that can help reduce these feelings in the moment. I've included some breathing exercises and resources below that many people find helpful for anxiety."
	case a.Stress > 0.5:
		return " When dealing with stress, it's important to find healthy ways to manage it before it affects your wellbeing. I've shared some stress-reduction techniques and resources that might help."
	case a.Mood < 0.4:
		return " When you're feeling down, small steps can make a difference. I've included some activities and resources below that are known to help improve mood gradually."
	default:
		return " Taking care of your mental health is always important. I've shared some general wellbeing resources below that you might find useful."
	}
}

// selectExercises devuelve siempre tres: meditación, físico y cognitivo.
func selectExercises(a domain.MoodAnalysis) []domain.Exercise {
	out := make([]domain.Exercise, 0, 3)

	switch {
	case a.Anxiety > 0.5:
		out = append(out, meditationExercises[0])
	case a.Mood < 0.4:
		out = append(out, meditationExercises[2])
	default:
		out = append(out, meditationExercises[1])
	}

	switch {
	case a.Stress > 0.6:
		out = append(out, physicalExercises[2])
	case a.Mood < 0.4:
		out = append(out, physicalExercises[1])
	default:
		out = append(out, physicalExercises[0])
	}

	switch {
	case a.Mood < 0.4:
		out = append(out, cognitiveExercises[1])
	case a.Anxiety > 0.5:
		out = append(out, cognitiveExercises[2])
	default:
		out = append(out, cognitiveExercises[0])
	}
	return out
}

func selectVideos(a domain.MoodAnalysis) []domain.Video {
	var primary string
	switch {
	case a.Anxiety > 0.6:
		primary = videoAnxiety
	case a.Stress > 0.6:
		primary = videoStress
	case a.Mood < 0.4:
		primary = videoDepression
	default:
		primary = videoGeneral
	}

	var secondary string
	switch a.PrimaryEmotion {
	case "Anxious", "Fearful":
		secondary = videoSleep
	case "Stressed", "Exhausted":
		secondary = videoGeneral
	default:
		secondary = videoDepression
	}

	first, _ := findVideo(primary)
	out := []domain.Video{first}
	if second, ok := findVideo(secondary); ok && second.Title != first.Title {
		out = append(out, second)
	}
	return out
}

// findVideo devuelve el primer video de la categoría.
func findVideo(category string) (domain.Video, bool) {
	for _, v := range videoLibrary {
		if v.Category == category {
			return v, true
		}
	}
	return domain.Video{}, false
}
