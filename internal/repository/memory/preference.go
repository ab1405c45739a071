package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/schedcu/optimizer/internal/domain"
	"github.com/schedcu/optimizer/internal/repository"
)

// PreferenceRepository is an in-memory implementation for testing.
type PreferenceRepository struct {
	mu    sync.RWMutex
	prefs map[domain.PreferenceKey]domain.Preference
}

// NewPreferenceRepository creates a new in-memory preference
// repository.
func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{
		prefs: make(map[domain.PreferenceKey]domain.Preference),
	}
}

func (r *PreferenceRepository) Create(ctx context.Context, pref *domain.Preference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := domain.PreferenceKey{DoctorID: pref.DoctorID, ShiftID: pref.ShiftID, DayOfWeek: pref.DayOfWeek}
	r.prefs[key] = *pref
	return nil
}

func (r *PreferenceRepository) GetAll(ctx context.Context) ([]domain.Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Preference, 0, len(r.prefs))
	for _, p := range r.prefs {
		result = append(result, p)
	}

	return result, nil
}

func (r *PreferenceRepository) GetByDoctor(ctx context.Context, doctorID int) ([]domain.Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.Preference
	for _, p := range r.prefs {
		if p.DoctorID == doctorID {
			result = append(result, p)
		}
	}

	return result, nil
}

func (r *PreferenceRepository) Delete(ctx context.Context, doctorID, shiftID, dayOfWeek int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := domain.PreferenceKey{DoctorID: doctorID, ShiftID: shiftID, DayOfWeek: dayOfWeek}
	if _, ok := r.prefs[key]; !ok {
		return &repository.NotFoundError{ResourceType: "Preference", ResourceID: fmt.Sprintf("%d/%d/%d", doctorID, shiftID, dayOfWeek)}
	}

	delete(r.prefs, key)
	return nil
}

func (r *PreferenceRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.prefs)), nil
}
