package domain

// Role distinguishes the two staffing tiers a clinic budgets headcount for.
type Role string

const (
	RoleMain Role = "MAIN"
	RoleSub  Role = "SUB"
)

// Doctor is a physician available for assignment to shifts.
// A Doctor with no HomeClinicID is never eligible for assignment: the
// Context Store drops it from every doctors-by-clinic index.
type Doctor struct {
	ID           int
	Name         string
	HomeClinicID *int
	Role         Role
}

// HasHomeClinic reports whether the doctor belongs to a clinic's roster.
func (d Doctor) HasHomeClinic() bool {
	return d.HomeClinicID != nil
}
