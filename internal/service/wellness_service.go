package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"arogya-ai/internal/domain"
	"arogya-ai/internal/random"
	"arogya-ai/internal/repository"
)

var (
	ErrEmptyJournalEntry = errors.New("journal entry is empty")
	ErrEmptyAffirmation  = errors.New("affirmation text is empty")
	ErrInvalidTheme      = errors.New("invalid theme")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrJournalNotFound   = errors.New("journal entry not found")
	ErrFavoriteNotFound  = errors.New("favorite not found")
)

const (
	defaultTheme = domain.ThemeLight

	maxMoodHistoryEntries = 365
	maxJournalEntries     = 500
)

// WellnessService administra los datos de bienestar de cada usuario.
// Las escrituras son "último gana"; no hay transacciones.
type WellnessService struct {
	repo   repository.WellnessRepository
	rnd    random.Source
	now    func() time.Time
	logger *zap.Logger
}

func NewWellnessService(repo repository.WellnessRepository, rnd random.Source, logger *zap.Logger) *WellnessService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WellnessService{
		repo:   repo,
		rnd:    rnd,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

/*
========================
 Historial de ánimo
========================
*/

// RecordMood agrega un análisis al historial en escala 0-100.
func (s *WellnessService) RecordMood(ctx context.Context, userID string, a domain.MoodAnalysis) (domain.MoodEntry, error) {
	history, err := s.repo.LoadMoodHistory(ctx, userID)
	if err != nil {
		return domain.MoodEntry{}, fmt.Errorf("load mood history: %w", err)
	}
	entry := domain.NewMoodEntry(a, s.now())
	history = append(history, entry)
	if len(history) > maxMoodHistoryEntries {
		history = history[len(history)-maxMoodHistoryEntries:]
	}
	if err := s.repo.SaveMoodHistory(ctx, userID, history); err != nil {
		return domain.MoodEntry{}, fmt.Errorf("save mood history: %w", err)
	}
	return entry, nil
}

func (s *WellnessService) MoodHistory(ctx context.Context, userID string) ([]domain.MoodEntry, error) {
	history, err := s.repo.LoadMoodHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load mood history: %w", err)
	}
	if history == nil {
		history = []domain.MoodEntry{}
	}
	return history, nil
}

/*
========================
 Diario
========================
*/

// AddJournalEntry guarda una entrada nueva al principio de la lista.
func (s *WellnessService) AddJournalEntry(ctx context.Context, userID, prompt, response string) (domain.JournalEntry, error) {
	if strings.TrimSpace(response) == "" {
		return domain.JournalEntry{}, ErrEmptyJournalEntry
	}
	entries, err := s.repo.LoadJournal(ctx, userID)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("load journal: %w", err)
	}

	entry := domain.JournalEntry{
		ID:       uuid.NewString(),
		Date:     s.now(),
		Prompt:   strings.TrimSpace(prompt),
		Response: response,
	}
	entries = append([]domain.JournalEntry{entry}, entries...)
	if len(entries) > maxJournalEntries {
		entries = entries[:maxJournalEntries]
	}
	if err := s.repo.SaveJournal(ctx, userID, entries); err != nil {
		return domain.JournalEntry{}, fmt.Errorf("save journal: %w", err)
	}
	return entry, nil
}

// ListJournal devuelve las entradas, la más reciente primero.
func (s *WellnessService) ListJournal(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	entries, err := s.repo.LoadJournal(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load journal: %w", err)
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return entries, nil
}

func (s *WellnessService) DeleteJournalEntry(ctx context.Context, userID, id string) error {
	entries, err := s.repo.LoadJournal(ctx, userID)
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}
	kept := make([]domain.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return ErrJournalNotFound
	}
	if err := s.repo.SaveJournal(ctx, userID, kept); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}
	return nil
}

// JournalPrompt elige una consigna según el ánimo actual (nil = neutral).
func (s *WellnessService) JournalPrompt(a *domain.MoodAnalysis) (category, prompt string) {
	category = PromptCategoryFor(a)
	prompt, _ = random.Pick(s.rnd, journalPrompts[category])
	return category, prompt
}

/*
========================
 Afirmaciones
========================
*/

// SuggestAffirmation elige una afirmación. Sin categoría usa la recomendada
// para el ánimo; "all" elige entre todas.
func (s *WellnessService) SuggestAffirmation(a *domain.MoodAnalysis, category string) (domain.FavoriteAffirmation, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = AffirmationCategoryFor(a)
	}

	candidates := make([]domain.FavoriteAffirmation, 0, len(affirmations))
	for _, aff := range affirmations {
		if category == AffirmationAll || aff.Category == category {
			candidates = append(candidates, aff)
		}
	}
	pick, ok := random.Pick(s.rnd, candidates)
	if !ok {
		return domain.FavoriteAffirmation{}, ErrUnknownCategory
	}
	return pick, nil
}

// AddFavorite agrega una afirmación; si el texto ya existe no la duplica.
func (s *WellnessService) AddFavorite(ctx context.Context, userID string, fav domain.FavoriteAffirmation) ([]domain.FavoriteAffirmation, error) {
	fav.Text = strings.TrimSpace(fav.Text)
	if fav.Text == "" {
		return nil, ErrEmptyAffirmation
	}
	favs, err := s.repo.LoadFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	for _, f := range favs {
		if f.Text == fav.Text {
			return favs, nil
		}
	}
	favs = append(favs, fav)
	if err := s.repo.SaveFavorites(ctx, userID, favs); err != nil {
		return nil, fmt.Errorf("save favorites: %w", err)
	}
	return favs, nil
}

func (s *WellnessService) RemoveFavorite(ctx context.Context, userID, text string) ([]domain.FavoriteAffirmation, error) {
	favs, err := s.repo.LoadFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	kept := make([]domain.FavoriteAffirmation, 0, len(favs))
	for _, f := range favs {
		if f.Text != text {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(favs) {
		return nil, ErrFavoriteNotFound
	}
	if err := s.repo.SaveFavorites(ctx, userID, kept); err != nil {
		return nil, fmt.Errorf("save favorites: %w", err)
	}
	return kept, nil
}

func (s *WellnessService) Favorites(ctx context.Context, userID string) ([]domain.FavoriteAffirmation, error) {
	favs, err := s.repo.LoadFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	if favs == nil {
		favs = []domain.FavoriteAffirmation{}
	}
	return favs, nil
}

/*
========================
 Tema
========================
*/

// Theme devuelve el tema guardado o light si no hay ninguno.
func (s *WellnessService) Theme(ctx context.Context, userID string) (domain.Theme, error) {
	theme, err := s.repo.LoadTheme(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return defaultTheme, nil
	}
	if err != nil {
		return "", fmt.Errorf("load theme: %w", err)
	}
	if !theme.Valid() {
		s.logger.Warn("stored theme is invalid, using default", zap.String("theme", string(theme)))
		return defaultTheme, nil
	}
	return theme, nil
}

func (s *WellnessService) SetTheme(ctx context.Context, userID string, theme domain.Theme) error {
	if !theme.Valid() {
		return ErrInvalidTheme
	}
	if err := s.repo.SaveTheme(ctx, userID, theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
