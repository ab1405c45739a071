package validation

import (
	"context"
	"fmt"

	"github.com/schedcu/optimizer/internal/domain"
	"github.com/schedcu/optimizer/internal/repository"
)

// maxWindowDays bounds how long a single scheduling job's date range may
// span — a generous ceiling that still catches a fat-fingered year.
const maxWindowDays = 366

// PreflightJob checks that enough data exists to run the annealer at all
// before a job is persisted and enqueued. It never blocks on structural
// feasibility: a clinic understaffed relative to its doctor pool is not
// checked here, and the annealer reports it as a hard-penalty floor. It
// blocks only on conditions that make the run meaningless outright, and
// warns about doctors with no home clinic.
func PreflightJob(ctx context.Context, db repository.Database) *Result {
	result := NewResult()

	doctors, err := db.DoctorRepository().GetAll(ctx)
	if err != nil {
		result.AddErrorWithContext(CodeNoDoctors, "failed to load doctors", map[string]interface{}{"error": err.Error()})
		return result
	}
	if len(doctors) == 0 {
		result.AddError(CodeNoDoctors, "no doctors exist; nothing to assign")
	}

	clinics, err := db.ClinicRepository().GetAll(ctx)
	if err != nil {
		result.AddErrorWithContext(CodeNoClinics, "failed to load clinics", map[string]interface{}{"error": err.Error()})
		return result
	}
	if len(clinics) == 0 {
		result.AddError(CodeNoClinics, "no clinics exist; nothing to staff")
	}

	shifts, err := db.ShiftRepository().GetAll(ctx)
	if err != nil {
		result.AddErrorWithContext(CodeNoShifts, "failed to load shifts", map[string]interface{}{"error": err.Error()})
		return result
	}
	if len(shifts) == 0 {
		result.AddError(CodeNoShifts, "no shifts exist; nothing to schedule")
	}

	homeless := 0
	for _, d := range doctors {
		if !d.HasHomeClinic() {
			homeless++
		}
	}
	if homeless > 0 {
		result.AddWarningWithContext(CodeDoctorNoHomeClinic,
			fmt.Sprintf("%d doctor(s) have no home clinic and are never eligible for assignment", homeless),
			map[string]interface{}{"count": homeless})
	}

	return result
}

// PreflightDateRange validates a job's requested window in isolation,
// before any repository access — the cheap check every request gets.
func PreflightDateRange(startBeforeEnd bool, days int) *Result {
	result := NewResult()
	if !startBeforeEnd {
		result.AddError(CodeInvalidDateRange, domain.ErrBadDateRange.Error())
	}
	if days > maxWindowDays {
		result.AddWarning(CodeWindowTooLarge, fmt.Sprintf("date range spans %d days, over the %d-day soft ceiling", days, maxWindowDays))
	}
	return result
}
