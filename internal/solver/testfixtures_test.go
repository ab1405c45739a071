package solver

import (
	"math/rand"
	"time"

	"github.com/schedcu/optimizer/internal/domain"
)

// newSeededRand returns a deterministic PRNG for test reproducibility.
func newSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// intPtr is a small helper for optional int fields used across fixtures.
func intPtr(v int) *int { return &v }

func mainDoctor(id, clinicID int, name string) domain.Doctor {
	return domain.Doctor{ID: id, Name: name, HomeClinicID: intPtr(clinicID), Role: domain.RoleMain}
}

func subDoctor(id, clinicID int, name string) domain.Doctor {
	return domain.Doctor{ID: id, Name: name, HomeClinicID: intPtr(clinicID), Role: domain.RoleSub}
}

func dayShift(id int, name string, startHour int) domain.Shift {
	start := time.Date(2000, 1, 1, startHour, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)
	return domain.NewShift(id, name, start, end)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
