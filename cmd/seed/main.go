// Command seed populates a database with sample doctors, clinics,
// shifts, leave approvals, and preferences for local development,
// mirroring the source system's seeder.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/schedcu/optimizer/internal/config"
	"github.com/schedcu/optimizer/internal/domain"
	"github.com/schedcu/optimizer/internal/repository/postgres"
)

var firstNames = []string{
	"An", "Anh", "Bao", "Binh", "Cam", "Chau", "Chi", "Cuong", "Dung", "Duong",
	"Dai", "Duc", "Giang", "Ha", "Hai", "Hang", "Hanh", "Hieu", "Hoa", "Hoa",
	"Hoang", "Hung", "Huy", "Huyen", "Khanh", "Kien", "Lan", "Linh", "Long", "Mai",
}

var lastNames = []string{
	"Nguyen", "Tran", "Le", "Pham", "Hoang", "Huynh", "Phan", "Vu", "Vo", "Dang",
}

var clinicNames = []string{
	"Cardiology Clinic", "Pediatrics Clinic", "General Surgery Clinic", "Dermatology Clinic",
	"ENT Clinic", "Obstetrics Clinic", "Endocrinology Clinic", "Orthopedics Clinic",
	"Neurology Clinic", "Ophthalmology Clinic", "Emergency 24/7 Clinic",
}

func main() {
	doctorCount := flag.Int("doctors", 30, "number of doctors to seed")
	leaveCount := flag.Int("leaves", 100, "number of leave approvals to seed")
	prefCount := flag.Int("preferences", 100, "number of preferences to seed")
	seed := flag.Int64("seed", 1, "PRNG seed for reproducible sample data")
	flag.Parse()

	cfg := config.Load()
	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	rng := rand.New(rand.NewSource(*seed))

	clinics := seedClinics(ctx, db, rng)
	doctors := seedDoctors(ctx, db, rng, *doctorCount, clinics)
	shifts := seedShifts(ctx, db)

	seedLeaves(ctx, db, rng, *leaveCount, doctors)
	seedPreferences(ctx, db, rng, *prefCount, doctors, shifts)

	fmt.Printf("seeded %d clinics, %d doctors, %d shifts, %d leaves, %d preferences\n",
		len(clinics), len(doctors), len(shifts), *leaveCount, *prefCount)
}

func seedClinics(ctx context.Context, db *postgres.Database, rng *rand.Rand) []domain.Clinic {
	var clinics []domain.Clinic
	requiredOptions := []int{1, 1, 2, 2, 3}

	for _, name := range clinicNames {
		built := domain.NewClinic(0, name, requiredOptions[rng.Intn(len(requiredOptions))], rng.Intn(2))
		clinic := &built
		if err := db.ClinicRepository().Create(ctx, clinic); err != nil {
			log.Fatalf("failed to create clinic %q: %v", name, err)
		}
		clinics = append(clinics, *clinic)
	}
	return clinics
}

func seedDoctors(ctx context.Context, db *postgres.Database, rng *rand.Rand, count int, clinics []domain.Clinic) []domain.Doctor {
	var doctors []domain.Doctor
	seenNames := map[string]bool{}

	for len(doctors) < count {
		name := fmt.Sprintf("%s %s", lastNames[rng.Intn(len(lastNames))], firstNames[rng.Intn(len(firstNames))])
		if seenNames[name] {
			continue
		}
		seenNames[name] = true

		clinic := clinics[rng.Intn(len(clinics))]
		role := domain.RoleMain
		if rng.Intn(4) == 0 {
			role = domain.RoleSub
		}

		doctor := &domain.Doctor{Name: name, HomeClinicID: &clinic.ID, Role: role}
		if err := db.DoctorRepository().Create(ctx, doctor); err != nil {
			log.Fatalf("failed to create doctor %q: %v", name, err)
		}
		doctors = append(doctors, *doctor)
	}
	return doctors
}

func seedShifts(ctx context.Context, db *postgres.Database) []domain.Shift {
	defs := []struct {
		name             string
		startH, durHours int
	}{
		{"Morning Shift", 7, 8},
		{"Afternoon Shift", 15, 8},
		{"Night Shift Đêm", 23, 8},
	}

	var shifts []domain.Shift
	for _, d := range defs {
		start := time.Date(2000, 1, 1, d.startH, 0, 0, 0, time.UTC)
		end := start.Add(time.Duration(d.durHours) * time.Hour)
		built := domain.NewShift(0, d.name, start, end)
		shift := &built
		if err := db.ShiftRepository().Create(ctx, shift); err != nil {
			log.Fatalf("failed to create shift %q: %v", d.name, err)
		}
		shifts = append(shifts, *shift)
	}
	return shifts
}

func seedLeaves(ctx context.Context, db *postgres.Database, rng *rand.Rand, count int, doctors []domain.Doctor) {
	seen := map[domain.LeaveKey]bool{}
	created := 0

	for created < count {
		doctor := doctors[rng.Intn(len(doctors))]
		day := time.Date(2026, 1, 1+rng.Intn(31), 0, 0, 0, 0, time.UTC)
		key := domain.NewLeaveKey(doctor.ID, day)
		if seen[key] {
			continue
		}
		seen[key] = true

		leave := &domain.LeaveApproval{DoctorID: doctor.ID, Date: day}
		if err := db.LeaveApprovalRepository().Create(ctx, leave); err != nil {
			log.Fatalf("failed to create leave approval: %v", err)
		}
		created++
	}
}

func seedPreferences(ctx context.Context, db *postgres.Database, rng *rand.Rand, count int, doctors []domain.Doctor, shifts []domain.Shift) {
	scoreOptions := []int{-20, -10, 10, 20}
	seen := map[domain.PreferenceKey]bool{}
	created := 0

	for created < count {
		doctor := doctors[rng.Intn(len(doctors))]
		shift := shifts[rng.Intn(len(shifts))]
		dayOfWeek := rng.Intn(7)
		key := domain.PreferenceKey{DoctorID: doctor.ID, ShiftID: shift.ID, DayOfWeek: dayOfWeek}
		if seen[key] {
			continue
		}
		seen[key] = true

		pref := &domain.Preference{
			DoctorID:  doctor.ID,
			ShiftID:   shift.ID,
			DayOfWeek: dayOfWeek,
			Score:     scoreOptions[rng.Intn(len(scoreOptions))],
		}
		if err := db.PreferenceRepository().Create(ctx, pref); err != nil {
			log.Fatalf("failed to create preference: %v", err)
		}
		created++
	}
}
