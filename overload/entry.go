package overload

import (
	"fmt"

	"github.com/on-the-ground/overload_ive_go/shared/helper"
)

// Absenter is the capability query for values that may be absent at runtime,
// such as a nil pointer to a container. Absent must be safe on such values.
type Absenter interface {
	Absent() bool
}

// WildcardPattern is the pattern name every Fallback entry is declared under.
const WildcardPattern = "*"

// PatternKind says how an entry's pattern matches a subject.
type PatternKind uint8

const (
	// KindInterface matches subjects implementing an interface: "has method X".
	KindInterface PatternKind = iota
	// KindExact matches one concrete type.
	KindExact
	// KindWildcard matches every present subject.
	KindWildcard
)

var patternKinds = [...]PatternKind{KindInterface, KindExact, KindWildcard}

func (k PatternKind) String() string {
	switch k {
	case KindInterface:
		return "interface"
	case KindExact:
		return "exact"
	case KindWildcard:
		return "wildcard"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParsePatternKind is the inverse of PatternKind.String.
func ParsePatternKind(s string) (PatternKind, error) {
	for _, k := range patternKinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown pattern kind: %q", s)
}

func (k PatternKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *PatternKind) UnmarshalText(b []byte) error {
	parsed, err := ParsePatternKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Matcher decides whether an entry applies to a subject.
// The matchers built here are zero-size, so storing one in an Entry and
// calling it does not allocate.
type Matcher[S any] interface {
	Match(subject S) bool
}

// Entry is one overload: a type pattern bound to a tier and an implementation.
// S is the subject type seen by the resolver, F the implementation it yields.
// F is usually an interface satisfied by a zero-size strategy type, so a chain
// of entries can live in a fixed-size array on the caller's stack.
type Entry[S, F any] struct {
	Tier    Tier
	Kind    PatternKind
	Pattern string
	// Describe is the human-readable pattern shown in tables and errors.
	Describe string
	Impl     F
	matcher  Matcher[S]
}

// Match reports whether the entry applies to subject and, if so, its implementation.
func (e Entry[S, F]) Match(subject S) (F, bool) {
	if e.matcher == nil || !e.matcher.Match(subject) {
		var zero F
		return zero, false
	}
	return e.Impl, true
}

// IsWildcard reports whether the entry matches every present subject.
func (e Entry[S, F]) IsWildcard() bool {
	return e.Kind == KindWildcard
}

func (e Entry[S, F]) decl(owner, name string) Decl {
	return Decl{
		Capability: name,
		Tier:       e.Tier,
		Kind:       e.Kind,
		Pattern:    e.Pattern,
		Describe:   e.Describe,
		Owner:      owner,
	}
}

type implements[S, I any] struct{}

func (implements[S, I]) Match(subject S) bool {
	_, ok := helper.TypedValueOf[I](subject)
	return ok
}

type present[S any] struct{}

func (present[S]) Match(subject S) bool {
	return any(subject) != nil
}

type absent[S any] struct{}

func (absent[S]) Match(subject S) bool {
	if any(subject) == nil {
		return true
	}
	a, ok := helper.TypedValueOf[Absenter](subject)
	return ok && a.Absent()
}

// WhenHas builds an entry that matches subjects implementing the interface I.
func WhenHas[S, I, F any](tier Tier, pattern string, impl F) Entry[S, F] {
	return Entry[S, F]{
		Tier:     tier,
		Kind:     KindInterface,
		Pattern:  pattern,
		Describe: pattern,
		Impl:     impl,
		matcher:  implements[S, I]{},
	}
}

// WhenIs builds an entry that matches subjects whose dynamic type is exactly T.
func WhenIs[S, T, F any](tier Tier, pattern string, impl F) Entry[S, F] {
	return Entry[S, F]{
		Tier:     tier,
		Kind:     KindExact,
		Pattern:  pattern,
		Describe: pattern,
		Impl:     impl,
		matcher:  implements[S, T]{},
	}
}

// Fallback builds a wildcard entry. It matches every subject except a nil
// interface.
func Fallback[S, F any](tier Tier, describe string, impl F) Entry[S, F] {
	return Entry[S, F]{
		Tier:     tier,
		Kind:     KindWildcard,
		Pattern:  WildcardPattern,
		Describe: describe,
		Impl:     impl,
		matcher:  present[S]{},
	}
}

// Nullable builds the TierAbsent entry. It matches a nil interface and any
// subject that implements Absenter and reports Absent. impl must not
// dereference the subject.
func Nullable[S, F any](impl F) Entry[S, F] {
	return Entry[S, F]{
		Tier:     TierAbsent,
		Kind:     KindInterface,
		Pattern:  "Absenter",
		Describe: "Absenter (absent value)",
		Impl:     impl,
		matcher:  absent[S]{},
	}
}
