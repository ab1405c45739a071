package solver

import (
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Default annealing parameters, suggested (not mandated) by the source
// system. Operators may override any of these via configuration (see
// internal/config).
const (
	DefaultTmax    = 25_000.0
	DefaultTmin    = 2.5
	DefaultSteps   = 50_000
	DefaultUpdates = 100
)

// Config bundles the Annealer's tunable knobs. WHard/WSoft override the
// Cost Function's default penalty weights (internal/solver's WHard/WSoft
// constants) when nonzero; a zero Config leaves the Cost Function's
// own defaults in effect.
type Config struct {
	Tmax    float64
	Tmin    float64
	Steps   int
	Updates int

	WHard float64
	WSoft float64
}

// DefaultConfig returns the suggested parameter set from the source
// system.
func DefaultConfig() Config {
	return Config{
		Tmax:    DefaultTmax,
		Tmin:    DefaultTmin,
		Steps:   DefaultSteps,
		Updates: DefaultUpdates,
		WHard:   WHard,
		WSoft:   WSoft,
	}
}

// Result is what one annealing run produces: the best state observed
// and its energy, plus the violation breakdown at that best state.
type Result struct {
	BestState     *State
	BestEnergy    float64
	BestBreakdown Breakdown
	Seed          int64
}

// Anneal runs classical Metropolis–Hastings simulated annealing
// starting from initial, using mutate as the sole neighborhood move and
// evaluator to score each proposal. Anneal seeds its own rng from seed
// and draws every random number of the loop from it; the coordinator
// records that seed in the job's status message. The seed does not fix
// everything: Mutate picks its clinic and its shift from lists built by
// ranging over maps, and BuildInitialState fills slots in map order, so
// with more than one clinic or shift two runs with the same seed can
// differ.
//
// The loop is single-threaded start to finish: no goroutines, no
// cancellation, exactly cfg.Steps iterations.
func Anneal(ctx *Context, initial *State, cfg Config, seed int64, logger *zap.SugaredLogger) Result {
	rng := rand.New(rand.NewSource(seed))
	evaluator := &Evaluator{WHard: cfg.WHard, WSoft: cfg.WSoft}

	current := initial
	currentEnergy := evaluator.Energy(ctx, current)

	best := current.Clone()
	bestEnergy := currentEnergy
	bestBreakdown := evaluator.Last

	startTime := time.Now()

	var accepted, improved, sinceReportAccepted, sinceReportImproved int

	reportEvery := cfg.Steps
	if cfg.Updates > 0 {
		reportEvery = cfg.Steps / cfg.Updates
	}
	if reportEvery <= 0 {
		reportEvery = 1
	}

	for step := 0; step < cfg.Steps; step++ {
		temperature := cfg.Tmax * math.Pow(cfg.Tmin/cfg.Tmax, float64(step)/float64(cfg.Steps))

		move := Mutate(ctx, current, rng)
		newEnergy := evaluator.Energy(ctx, current)
		delta := newEnergy - currentEnergy

		if acceptMove(delta, temperature, rng) {
			currentEnergy = newEnergy
			accepted++
			sinceReportAccepted++

			if currentEnergy < bestEnergy {
				bestEnergy = currentEnergy
				best = current.Clone()
				bestBreakdown = evaluator.Last
				improved++
				sinceReportImproved++
			}
		} else {
			move.Undo(current)
		}

		stepNum := step + 1
		if logger != nil && (stepNum%reportEvery == 0 || stepNum == cfg.Steps) {
			logger.Infow("annealing progress",
				"step", stepNum,
				"total_steps", cfg.Steps,
				"temperature", temperature,
				"current_energy", currentEnergy,
				"best_energy", bestEnergy,
				"accept_rate", rateSince(sinceReportAccepted, reportEvery),
				"improve_rate", rateSince(sinceReportImproved, reportEvery),
				"elapsed", time.Since(startTime).String(),
				"missing_staff", evaluator.Last.MissingStaff,
				"over_48h", evaluator.Last.Over48h,
				"bad_rest", evaluator.Last.BadRest,
				"preference_bad", evaluator.Last.PreferenceBad,
			)
			sinceReportAccepted = 0
			sinceReportImproved = 0
		}
	}

	return Result{
		BestState:     best,
		BestEnergy:    bestEnergy,
		BestBreakdown: bestBreakdown,
		Seed:          seed,
	}
}

// acceptMove implements the Metropolis criterion: always accept an
// improving or neutral move; accept a worsening move with probability
// exp(-delta/T). A probability computation that underflows to 0 or
// would overflow is simply treated as a reject — the annealer never
// panics on a degenerate exponent.
func acceptMove(delta, temperature float64, rng *rand.Rand) bool {
	if delta <= 0 {
		return true
	}
	if temperature <= 0 {
		return false
	}

	probability := math.Exp(-delta / temperature)
	if math.IsNaN(probability) || math.IsInf(probability, 0) {
		return false
	}

	return rng.Float64() < probability
}

func rateSince(count, window int) float64 {
	if window <= 0 {
		return 0
	}
	return float64(count) / float64(window)
}
