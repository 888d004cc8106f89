package service

import "arogya-ai/internal/domain"

// Contenido estático del compañero de salud mental.

var meditationExercises = []domain.Exercise{
	{
		Title:       "5-Minute Breathing Meditation",
		Description: "Focus on your breath, inhaling for 4 counts and exhaling for 6 counts. Notice the sensation of air entering and leaving your body.",
		Duration:    "5 minutes",
		Difficulty:  domain.DifficultyEasy,
		Benefits:    []string{"Reduces anxiety", "Improves focus", "Can be done anywhere"},
	},
	{
		Title:       "Body Scan Relaxation",
		Description: "Starting from your toes and moving upward, focus your attention on each part of your body, relaxing each muscle group as you go.",
		Duration:    "10-15 minutes",
		Difficulty:  domain.DifficultyModerate,
		Benefits:    []string{"Releases physical tension", "Improves mind-body connection", "Helps with insomnia"},
	},
	{
		Title:       "Loving-Kindness Meditation",
		Description: "Focus on sending positive wishes first to yourself, then to loved ones, acquaintances, and eventually all beings. Repeat phrases like 'May I be happy, may I be healthy, may I be safe.'",
		Duration:    "15 minutes",
		Difficulty:  domain.DifficultyModerate,
		Benefits:    []string{"Increases compassion", "Reduces negative emotions", "Improves social connection"},
	},
}

var physicalExercises = []domain.Exercise{
	{
		Title:       "Morning Stretching Routine",
		Description: "Gentle full-body stretches to release tension and wake up your body. Focus on neck, shoulders, back, and legs.",
		Duration:    "5-10 minutes",
		Difficulty:  domain.DifficultyEasy,
		Benefits:    []string{"Releases physical tension", "Improves circulation", "Increases energy"},
	},
	{
		Title:       "Mood-Boosting Walk",
		Description: "A brisk walk outside, preferably in a natural setting like a park. Focus on your surroundings and try to notice five things you can see, four you can touch, three you can hear, two you can smell, and one you can taste.",
		Duration:    "20-30 minutes",
		Difficulty:  domain.DifficultyEasy,
		Benefits:    []string{"Releases endorphins", "Reduces rumination", "Connects you with nature"},
	},
	{
		Title:       "Stress-Relief Yoga Sequence",
		Description: "A gentle yoga flow focusing on deep breathing and stress-relieving poses like child's pose, forward fold, and gentle twists.",
		Duration:    "15-20 minutes",
		Difficulty:  domain.DifficultyModerate,
		Benefits:    []string{"Reduces cortisol levels", "Improves flexibility", "Calms the nervous system"},
	},
}

var cognitiveExercises = []domain.Exercise{
	{
		Title:       "Thought Reframing Practice",
		Description: "Identify a negative thought, write it down, challenge its accuracy, and reframe it in a more balanced way.",
		Duration:    "10 minutes",
		Difficulty:  domain.DifficultyModerate,
		Benefits:    []string{"Reduces negative thinking", "Builds cognitive flexibility", "Improves mood"},
	},
	{
		Title:       "Gratitude Journal",
		Description: "Write down three things you're grateful for today, no matter how small, and reflect on why they matter to you.",
		Duration:    "5 minutes",
		Difficulty:  domain.DifficultyEasy,
		Benefits:    []string{"Shifts focus to positive aspects", "Improves overall outlook", "Can be done anywhere"},
	},
	{
		Title:       "Worry Time Exercise",
		Description: "Schedule a specific 15-minute period each day dedicated to worrying. Outside that time, delay worries by writing them down to address during your next worry time.",
		Duration:    "15 minutes",
		Difficulty:  domain.DifficultyChallenging,
		Benefits:    []string{"Contains worry to a specific time", "Reduces rumination", "Improves presence"},
	},
}

const (
	videoDepression = "depression"
	videoAnxiety    = "anxiety"
	videoStress     = "stress"
	videoGeneral    = "general"
	videoSleep      = "sleep"
)

var videoLibrary = []domain.Video{
	{
		Title:       "How to Manage Depression Effectively",
		Creator:     "Dr. Emma Wilson",
		Description: "Clinical psychologist Dr. Wilson explains evidence-based strategies for managing depression, including cognitive techniques and lifestyle changes.",
		Category:    videoDepression,
		Duration:    "15:42",
		Tags:        []string{"depression", "CBT", "self-care"},
	},
	{
		Title:       "Anxiety Relief: Guided Meditation for Immediate Calm",
		Creator:     "Mindful Living",
		Description: "A gentle guided meditation specifically designed to reduce anxiety symptoms and bring a sense of calm during difficult moments.",
		Category:    videoAnxiety,
		Duration:    "12:18",
		Tags:        []string{"anxiety", "meditation", "relaxation"},
	},
	{
		Title:       "Understanding the Science of Stress",
		Creator:     "HealthScience Channel",
		Description: "An informative explanation of how stress affects your body and brain, with practical tips for managing stress responses.",
		Category:    videoStress,
		Duration:    "18:25",
		Tags:        []string{"stress", "science", "health"},
	},
	{
		Title:       "5-Minute Morning Yoga for Mental Clarity",
		Creator:     "Yoga with Sarah",
		Description: "A quick morning yoga routine designed to start your day with mental clarity and positive energy.",
		Category:    videoGeneral,
		Duration:    "5:32",
		Tags:        []string{"yoga", "morning routine", "mental clarity"},
	},
	{
		Title:       "Breaking the Cycle of Negative Thoughts",
		Creator:     "Mind Matters",
		Description: "Learn techniques to identify and break free from patterns of negative thinking that contribute to depression and anxiety.",
		Category:    videoDepression,
		Duration:    "22:15",
		Tags:        []string{"negative thoughts", "cognitive techniques", "depression"},
	},
	{
		Title:       "Sleep Better Tonight: Expert Tips",
		Creator:     "Sleep Science Academy",
		Description: "Sleep specialist shares evidence-based strategies for improving sleep quality and addressing insomnia.",
		Category:    videoSleep,
		Duration:    "16:47",
		Tags:        []string{"sleep", "insomnia", "relaxation"},
	},
}

type emotionalState string

const (
	stateAnxious   emotionalState = "anxious"
	stateStressed  emotionalState = "stressed"
	stateSad       emotionalState = "sad"
	stateDepressed emotionalState = "depressed"
	stateGeneral   emotionalState = "general"
)

var responseTemplates = map[emotionalState][]string{
	stateAnxious: {
		"I notice you're feeling anxious right now. That's completely understandable, and I'm here to help you work through these feelings. Let's take a moment to focus on what might help you feel more grounded.",
		"Anxiety can be really challenging to deal with. I appreciate you sharing these feelings with me. Would it help to explore some calming techniques together?",
		"I hear that anxiety is present for you right now. Your feelings are valid, and it's important to acknowledge them. Let's think about some ways to help you find some relief.",
	},
	stateStressed: {
		"It sounds like you're under a lot of pressure right now. Stress can be overwhelming, but you don't have to face it alone. Let's think about ways to lighten this load.",
		"I can hear how stressed you're feeling. That's a lot to carry. What do you think would help you most right now - some relaxation techniques, problem-solving, or maybe just being heard?",
		"Stress can really take a toll on both your mind and body. I appreciate you sharing this with me. Let's explore some ways to help you find some relief and perspective.",
	},
	stateSad: {
		"I'm really sorry to hear you're feeling down. Sadness is a natural emotion, though it can be painful to experience. I'm here to listen and support you through this.",
		"It sounds like you're going through a difficult time. Thank you for trusting me with these feelings. Would it help to talk more about what's contributing to your sadness?",
		"I hear the sadness in what you're sharing, and I want you to know that it's okay to feel this way. These emotions are important messengers, and I'm here to help you understand what they might be telling you.",
	},
	stateDepressed: {
		"What you're describing sounds like it might be depression. This is something many people experience, and while it can feel isolating, you're not alone in this. There are approaches that can help.",
		"Depression can make everything feel more difficult and drain the joy from things you used to enjoy. I'm truly sorry you're experiencing this. Would you like to explore some strategies that might help?",
		"Living with depression can be incredibly challenging. Thank you for being brave enough to share this. While I'm not a replacement for professional help, I can offer some support and resources.",
	},
	stateGeneral: {
		"Thank you for sharing how you're feeling with me. Understanding our emotions is an important step toward mental wellbeing. How long have you been feeling this way?",
		"I appreciate you opening up about this. It takes courage to talk about our mental health. Is there anything specific that triggered these feelings, or have they been building over time?",
		"Thank you for trusting me with this. Would it be helpful to explore some mental wellness techniques together that might help with what you're experiencing?",
	},
}

var followUpQuestions = []string{
	"How long have you been feeling this way?",
	"Is there anything specific that might have triggered these feelings?",
	"On a scale of 1-10, how intense would you say these feelings are for you right now?",
	"Have you noticed any patterns in when these feelings come up?",
	"What's one small thing that has helped you feel better in the past when you felt this way?",
	"Have you spoken to anyone else about how you're feeling?",
	"What would feeling better look like for you right now?",
	"Are there any specific areas of your life where these feelings are most challenging?",
	"What kind of support do you think would be most helpful for you right now?",
}

type lifeArea struct {
	term     string
	synonyms []string
}

var lifeAreas = []lifeArea{
	{term: "work", synonyms: []string{"job", "career", "workplace", "boss", "colleague"}},
	{term: "relationship", synonyms: []string{"partner", "spouse", "boyfriend", "girlfriend", "wife", "husband", "marriage"}},
	{term: "family", synonyms: []string{"parent", "child", "mother", "father", "sibling", "brother", "sister"}},
	{term: "health", synonyms: []string{"illness", "sick", "pain", "doctor", "hospital", "condition"}},
	{term: "financial", synonyms: []string{"money", "debt", "bills", "finances", "afford", "expensive"}},
	{term: "sleep", synonyms: []string{"insomnia", "tired", "exhausted", "rest", "fatigue"}},
}
