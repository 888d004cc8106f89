package service

import "arogya-ai/internal/domain"

// Categorías de afirmaciones.
const (
	AffirmationSelfCompassion = "self-compassion"
	AffirmationStrength       = "strength"
	AffirmationCalm           = "calm"
	AffirmationGrowth         = "growth"
	AffirmationJoy            = "joy"
	AffirmationSelfWorth      = "self-worth"
	AffirmationAll            = "all"
)

var affirmations = []domain.FavoriteAffirmation{
	{Text: "I treat myself with the same kindness I would offer a good friend.", Category: AffirmationSelfCompassion},
	{Text: "I am doing the best I can with the resources I have right now.", Category: AffirmationSelfCompassion},
	{Text: "It's okay to make mistakes. They help me learn and grow.", Category: AffirmationSelfCompassion},
	{Text: "I forgive myself for not having all the answers.", Category: AffirmationSelfCompassion},
	{Text: "My worth is not determined by my productivity.", Category: AffirmationSelfCompassion},

	{Text: "I have overcome challenges before, and I can do it again.", Category: AffirmationStrength},
	{Text: "I am stronger than I think and braver than I believe.", Category: AffirmationStrength},
	{Text: "Every experience I have is helping me develop resilience.", Category: AffirmationStrength},
	{Text: "I can handle whatever comes my way today.", Category: AffirmationStrength},
	{Text: "My strength is greater than any struggle.", Category: AffirmationStrength},

	{Text: "I breathe in calm and breathe out tension.", Category: AffirmationCalm},
	{Text: "I release what I cannot control.", Category: AffirmationCalm},
	{Text: "This feeling is temporary. I will find peace again.", Category: AffirmationCalm},
	{Text: "I am centered, peaceful, and grounded.", Category: AffirmationCalm},
	{Text: "My mind is slowing down, and my body is relaxing.", Category: AffirmationCalm},

	{Text: "I am constantly growing and evolving into my best self.", Category: AffirmationGrowth},
	{Text: "Every day is a fresh opportunity to learn something new.", Category: AffirmationGrowth},
	{Text: "I embrace change as a pathway to growth.", Category: AffirmationGrowth},
	{Text: "My potential to succeed is limitless.", Category: AffirmationGrowth},
	{Text: "I am becoming more confident and capable every day.", Category: AffirmationGrowth},

	{Text: "I give myself permission to enjoy this moment fully.", Category: AffirmationJoy},
	{Text: "I attract positivity into my life by being positive.", Category: AffirmationJoy},
	{Text: "There is beauty around me, and I choose to see it.", Category: AffirmationJoy},
	{Text: "I deserve to experience joy and happiness.", Category: AffirmationJoy},
	{Text: "My smile and positive attitude are contagious.", Category: AffirmationJoy},

	{Text: "I am enough exactly as I am.", Category: AffirmationSelfWorth},
	{Text: "My thoughts and feelings matter.", Category: AffirmationSelfWorth},
	{Text: "I honor my needs and take care of myself.", Category: AffirmationSelfWorth},
	{Text: "I am worthy of love and respect.", Category: AffirmationSelfWorth},
	{Text: "I trust myself and my inner wisdom.", Category: AffirmationSelfWorth},
}

// Categorías de consignas de diario.
const (
	PromptPositive = "positive"
	PromptNegative = "negative"
	PromptAnxious  = "anxious"
	PromptStressed = "stressed"
	PromptNeutral  = "neutral"
)

var journalPrompts = map[string][]string{
	PromptPositive: {
		"What are three things that made you happy today?",
		"Describe a recent moment that brought you joy or peace.",
		"What personal strengths helped you succeed today?",
		"List five things you're grateful for in this moment.",
		"How did you practice self-care or kindness today?",
		"What's something you're looking forward to, and why?",
		"Write about someone who made a positive impact on your life recently.",
		"What positive changes have you noticed in yourself lately?",
		"Describe a challenge you overcame that you're proud of.",
		"What boundaries did you successfully maintain today?",
	},
	PromptNegative: {
		"What difficult emotions are you experiencing, and where do you feel them in your body?",
		"If your emotions could speak, what would they say right now?",
		"Write a letter to yourself from the perspective of a compassionate friend.",
		"What are you struggling with that you need to release?",
		"What negative thought patterns have you noticed today?",
		"List three things you can do to comfort yourself when feeling low.",
		"What does your inner critic say, and how can you respond with kindness?",
		"When did you last feel truly at peace? What elements of that can you recreate?",
		"What fears are holding you back right now?",
		"What would help you feel safer or more supported right now?",
	},
	PromptAnxious: {
		"What specific worries are on your mind right now?",
		"What's the worst that could happen, and how could you handle it?",
		"List what's in your control and what isn't about your current situation.",
		"What grounding techniques help you when you feel anxious?",
		"Describe your anxiety as if it were a character. What does it want?",
		"What are three realistic outcomes to what you're worried about?",
		"What have you successfully overcome in the past that seemed overwhelming?",
		"What small step could you take toward addressing your concerns?",
		"What would you tell a friend who was experiencing this same anxiety?",
		"How might things look different in a week, month, or year from now?",
	},
	PromptStressed: {
		"What are the main sources of stress in your life right now?",
		"List three boundaries you could set to reduce your stress.",
		"What tasks could you delegate or eliminate from your schedule?",
		"What physical sensations are you noticing when you're stressed?",
		"What activities help you unwind and release tension?",
		"How have you successfully managed stress in the past?",
		"What would your ideal, stress-free day look like?",
		"What expectations (from yourself or others) might you need to adjust?",
		"Write about a stressful situation from a different perspective.",
		"What would you need to hear right now to feel calmer?",
	},
	PromptNeutral: {
		"What are you noticing about yourself today?",
		"How would you like to feel by the end of the day?",
		"What's something new you'd like to learn or experience?",
		"Describe your ideal day. What elements could you incorporate into today?",
		"What values are most important to you, and how did you honor them today?",
		"What relationships in your life would you like to nurture?",
		"What habits would you like to develop or release?",
		"What would make today meaningful for you?",
		"What are you curious about right now?",
		"How can you practice more presence in your daily activities?",
	},
}

// AffirmationCategoryFor elige la categoría recomendada; nil es "sin análisis".
func AffirmationCategoryFor(a *domain.MoodAnalysis) string {
	switch {
	case a == nil:
		return AffirmationSelfCompassion
	case a.Anxiety > 0.6, a.Stress > 0.6:
		return AffirmationCalm
	case a.Mood < 0.4:
		return AffirmationSelfCompassion
	case a.Mood > 0.7:
		return AffirmationJoy
	default:
		return AffirmationStrength
	}
}

// PromptCategoryFor elige la categoría de consigna de diario.
func PromptCategoryFor(a *domain.MoodAnalysis) string {
	switch {
	case a == nil:
		return PromptNeutral
	case a.Anxiety > 0.6:
		return PromptAnxious
	case a.Stress > 0.6:
		return PromptStressed
	case a.Mood > 0.6:
		return PromptPositive
	case a.Mood < 0.4:
		return PromptNegative
	default:
		return PromptNeutral
	}
}
