package overload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/on-the-ground/overload_ive_go/capability"
	"github.com/on-the-ground/overload_ive_go/shared/helper"
)

var (
	// ErrNoImplementation means no entry of any tier matched the subject.
	ErrNoImplementation = errors.New("no implementation found")
	// ErrAmbiguousOverload means two entries of one tier matched the subject.
	ErrAmbiguousOverload = errors.New("ambiguous overload")
)

// Resolve returns the implementation of the single best entry for subject.
// Tiers are tried in ascending order; the first tier with exactly one match wins.
func Resolve[S, F any](tag capability.Tag, subject S, entries ...Entry[S, F]) (F, error) {
	impl, _, err := pick(tag, subject, entries, nil)
	return impl, err
}

// MustResolve is the panic-on-failure variant of Resolve.
// Entry points whose parameter type already guarantees a match use it.
func MustResolve[S, F any](tag capability.Tag, subject S, entries ...Entry[S, F]) F {
	return helper.Must(Resolve(tag, subject, entries...))
}

// ResolveIn is Resolve over builtin plus the entries registered in r for tag
// with the same subject and implementation types.
func ResolveIn[S, F any](r *Registry, tag capability.Tag, subject S, builtin ...Entry[S, F]) (F, error) {
	impl, _, err := pick(tag, subject, builtin, registered[S, F](r, tag))
	return impl, err
}

// MustResolveIn is the panic-on-failure variant of ResolveIn.
func MustResolveIn[S, F any](r *Registry, tag capability.Tag, subject S, builtin ...Entry[S, F]) F {
	return helper.Must(ResolveIn(r, tag, subject, builtin...))
}

// Selected reports which entry Resolve picks for subject, for diagnostics and tests.
func Selected[S, F any](tag capability.Tag, subject S, entries ...Entry[S, F]) (Entry[S, F], error) {
	_, e, err := pick(tag, subject, entries, nil)
	return e, err
}

// SelectedIn reports which entry ResolveIn picks for subject.
func SelectedIn[S, F any](r *Registry, tag capability.Tag, subject S, builtin ...Entry[S, F]) (Entry[S, F], error) {
	_, e, err := pick(tag, subject, builtin, registered[S, F](r, tag))
	return e, err
}

// pick does not allocate unless it fails.
func pick[S, F any](tag capability.Tag, subject S, builtin, extra []Entry[S, F]) (F, Entry[S, F], error) {
	var (
		zero     F
		zeroSlot Entry[S, F]
	)
	for _, tier := range Tiers {
		var (
			winner  Entry[S, F]
			matched int
		)
		for _, entries := range [2][]Entry[S, F]{builtin, extra} {
			for _, e := range entries {
				if e.Tier != tier || e.matcher == nil || !e.matcher.Match(subject) {
					continue
				}
				if matched == 0 {
					winner = e
				}
				matched++
			}
		}
		switch matched {
		case 0:
			continue
		case 1:
			return winner.Impl, winner, nil
		default:
			return zero, zeroSlot, fmt.Errorf(
				"%w: capability %s, tier %s, type %T matches [%s]",
				ErrAmbiguousOverload, tag.Name(), tier, subject,
				strings.Join(describeMatches(tier, subject, builtin, extra), ", "),
			)
		}
	}

	return zero, zeroSlot, fmt.Errorf("%w: capability %s for type %T", ErrNoImplementation, tag.Name(), subject)
}

func describeMatches[S, F any](tier Tier, subject S, lists ...[]Entry[S, F]) []string {
	var out []string
	for _, entries := range lists {
		for _, e := range entries {
			if _, ok := e.Match(subject); ok && e.Tier == tier {
				out = append(out, e.Describe)
			}
		}
	}
	return out
}
