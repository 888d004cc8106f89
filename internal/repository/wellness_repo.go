package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"arogya-ai/internal/domain"
)

// Claves históricas del local storage de la app web.
const (
	KeyFavoriteAffirmations = "favoriteAffirmations"
	KeyJournalEntries       = "journalEntries"
	KeyMoodHistory          = "moodHistory"
	KeyUser                 = "arogyaai_user"
	KeyTheme                = "theme"
	KeyAppointments         = "appointments"
)

// WellnessRepository guarda los datos de bienestar de cada usuario como JSON.
type WellnessRepository interface {
	LoadJournal(ctx context.Context, userID string) ([]domain.JournalEntry, error)
	SaveJournal(ctx context.Context, userID string, entries []domain.JournalEntry) error
	LoadMoodHistory(ctx context.Context, userID string) ([]domain.MoodEntry, error)
	SaveMoodHistory(ctx context.Context, userID string, entries []domain.MoodEntry) error
	LoadFavorites(ctx context.Context, userID string) ([]domain.FavoriteAffirmation, error)
	SaveFavorites(ctx context.Context, userID string, favs []domain.FavoriteAffirmation) error
	LoadUser(ctx context.Context, userID string) (domain.User, error)
	SaveUser(ctx context.Context, user domain.User) error
	RemoveUser(ctx context.Context, userID string) error
	LoadTheme(ctx context.Context, userID string) (domain.Theme, error)
	SaveTheme(ctx context.Context, userID string, theme domain.Theme) error
	LoadAppointments(ctx context.Context, userID string) ([]domain.Appointment, error)
	SaveAppointments(ctx context.Context, userID string, appts []domain.Appointment) error
}

type KVWellnessRepository struct {
	store KVStore
}

func NewKVWellnessRepository(store KVStore) *KVWellnessRepository {
	return &KVWellnessRepository{store: store}
}

// userKey aísla el espacio de claves de cada usuario.
func userKey(userID, key string) string {
	return "user:" + userID + ":" + key
}

func (r *KVWellnessRepository) LoadJournal(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	if err := r.getJSON(ctx, userKey(userID, KeyJournalEntries), &entries); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return entries, nil
}

func (r *KVWellnessRepository) SaveJournal(ctx context.Context, userID string, entries []domain.JournalEntry) error {
	return r.setJSON(ctx, userKey(userID, KeyJournalEntries), entries)
}

func (r *KVWellnessRepository) LoadMoodHistory(ctx context.Context, userID string) ([]domain.MoodEntry, error) {
	var entries []domain.MoodEntry
	if err := r.getJSON(ctx, userKey(userID, KeyMoodHistory), &entries); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return entries, nil
}

func (r *KVWellnessRepository) SaveMoodHistory(ctx context.Context, userID string, entries []domain.MoodEntry) error {
	return r.setJSON(ctx, userKey(userID, KeyMoodHistory), entries)
}

func (r *KVWellnessRepository) LoadFavorites(ctx context.Context, userID string) ([]domain.FavoriteAffirmation, error) {
	var favs []domain.FavoriteAffirmation
	if err := r.getJSON(ctx, userKey(userID, KeyFavoriteAffirmations), &favs); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return favs, nil
}

func (r *KVWellnessRepository) SaveFavorites(ctx context.Context, userID string, favs []domain.FavoriteAffirmation) error {
	return r.setJSON(ctx, userKey(userID, KeyFavoriteAffirmations), favs)
}

// LoadUser devuelve ErrNotFound si el usuario no tiene perfil guardado.
func (r *KVWellnessRepository) LoadUser(ctx context.Context, userID string) (domain.User, error) {
	var user domain.User
	if err := r.getJSON(ctx, userKey(userID, KeyUser), &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *KVWellnessRepository) SaveUser(ctx context.Context, user domain.User) error {
	return r.setJSON(ctx, userKey(user.ID, KeyUser), user)
}

func (r *KVWellnessRepository) RemoveUser(ctx context.Context, userID string) error {
	return r.store.Remove(ctx, userKey(userID, KeyUser))
}

// LoadTheme guarda el tema como texto plano, igual que la app original.
func (r *KVWellnessRepository) LoadTheme(ctx context.Context, userID string) (domain.Theme, error) {
	raw, err := r.store.Get(ctx, userKey(userID, KeyTheme))
	if err != nil {
		return "", err
	}
	return domain.Theme(raw), nil
}

func (r *KVWellnessRepository) SaveTheme(ctx context.Context, userID string, theme domain.Theme) error {
	return r.store.Set(ctx, userKey(userID, KeyTheme), []byte(theme))
}

func (r *KVWellnessRepository) LoadAppointments(ctx context.Context, userID string) ([]domain.Appointment, error) {
	var appts []domain.Appointment
	if err := r.getJSON(ctx, userKey(userID, KeyAppointments), &appts); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return appts, nil
}

func (r *KVWellnessRepository) SaveAppointments(ctx context.Context, userID string, appts []domain.Appointment) error {
	return r.setJSON(ctx, userKey(userID, KeyAppointments), appts)
}

func (r *KVWellnessRepository) getJSON(ctx context.Context, key string, dst any) error {
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (r *KVWellnessRepository) setJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.store.Set(ctx, key, raw)
}
