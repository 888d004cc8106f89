package domain

type ExerciseDifficulty string

const (
	DifficultyEasy        ExerciseDifficulty = "easy"
	DifficultyModerate    ExerciseDifficulty = "moderate"
	DifficultyChallenging ExerciseDifficulty = "challenging"
)

type Exercise struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Duration    string             `json:"duration"`
	Difficulty  ExerciseDifficulty `json:"difficulty"`
	Benefits    []string           `json:"benefits"`
}

type Video struct {
	Title       string   `json:"title"`
	Creator     string   `json:"creator"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Duration    string   `json:"duration"`
	Tags        []string `json:"tags"`
}

// CompanionReply es la respuesta del compañero de salud mental.
type CompanionReply struct {
	Message   string     `json:"message"`
	Exercises []Exercise `json:"exercises"`
	Videos    []Video    `json:"videos"`
}
