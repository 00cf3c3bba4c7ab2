package minos

import (
	"context"
	"math"

	"github.com/seisgo/minos/internal/control"
	"github.com/seisgo/minos/internal/logging"
	"github.com/seisgo/minos/internal/result"
	"github.com/seisgo/minos/internal/runner"
	"github.com/seisgo/minos/model"
)

// qualityScale sets the Rayleigh-quotient warning threshold at
// qualityScale * eps.
const qualityScale = 10

// familyRun binds a family toggle to its solver selector and the type code
// its listing must carry. Radial runs come back with the spheroidal code
// and angular order 0.
type familyRun struct {
	label  string
	jcom   int
	expect result.TypeCode
}

// ComputeEigenmodes computes the normal modes of m for every family enabled
// in opts. The four families run strictly sequentially, each in a private
// scratch directory; the first fatal error aborts the whole call with no
// partial result. Quality warnings are advisory and never drop a mode.
func ComputeEigenmodes(ctx context.Context, m *model.Model, opts Options) (*ModeSet, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = logging.Default()
	}

	runs := []struct {
		enabled bool
		familyRun
	}{
		{opts.Radial, familyRun{"radial", control.JcomRadial, result.TypeSpheroidal}},
		{opts.Toroidal, familyRun{"toroidal", control.JcomToroidal, result.TypeToroidal}},
		{opts.Spheroidal, familyRun{"spheroidal", control.JcomSpheroidal, result.TypeSpheroidal}},
		{opts.InnerCoreToroidal, familyRun{"inner-core toroidal", control.JcomInnerCoreToroidal, result.TypeInnerCoreToroidal}},
	}

	set := newModeSet()
	for _, r := range runs {
		if !r.enabled {
			continue
		}
		if err := computeFamily(ctx, m, opts, r.familyRun, set, log); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// ComputeEigenfrequencies is the frequency-only projection of
// [ComputeEigenmodes]: same runs, same ordering, values stripped down to
// the eigenfrequency in mHz.
func ComputeEigenfrequencies(ctx context.Context, m *model.Model, opts Options) (*FrequencySet, error) {
	set, err := ComputeEigenmodes(ctx, m, opts)
	if err != nil {
		return nil, err
	}
	return set.Frequencies(), nil
}

// computeFamily runs the solver for one family and merges the parsed table
// into set.
func computeFamily(ctx context.Context, m *model.Model, opts Options, run familyRun, set *ModeSet, log Logger) error {
	log.Debug("computing %s modes (jcom %d)", run.label, run.jcom)

	ctl := control.File{
		Eps:   opts.Eps,
		WGrav: opts.WGrav,
		Jcom:  run.jcom,
		LMin:  opts.LMin,
		LMax:  opts.LMax,
		WMin:  opts.WMin,
		WMax:  opts.WMax,
		NMin:  opts.NMin,
		NMax:  opts.NMax,
	}

	out, err := runner.Run(ctx, opts.SolverPath, m, opts.RefFrequency, ctl)
	if err != nil {
		return err
	}
	if err := result.ValidateConsole(out.Stdout); err != nil {
		return err
	}

	tbl, err := result.ParseTable(out.Name, out.Listing, run.expect)
	if err != nil {
		return err
	}

	threshold := qualityScale * opts.Eps
	for _, rec := range tbl.Records() {
		key := ModeKey{N: rec.N, Family: familyFromType(rec.Type), L: rec.L}
		set.set(Mode{
			Key:              key,
			PhaseVelocity:    rec.PhaseVelocity,
			GroupVelocity:    rec.GroupVelocity,
			Frequency:        rec.Frequency,
			Period:           rec.Period,
			Q:                rec.Q,
			RayleighQuotient: rec.RayleighQuotient,
		})
		if math.Abs(rec.RayleighQuotient) > threshold {
			log.Warn("mode %s: rayleigh quotient %.3e exceeds %d*eps, eigenfrequency may be inaccurate",
				key.Name(), rec.RayleighQuotient, qualityScale)
		}
	}

	log.Debug("%s run produced %d modes", run.label, tbl.Len())
	return nil
}
