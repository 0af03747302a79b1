// Package overload resolves which implementation of an operation applies to a value.
//
// Go has no ad-hoc overloading and no specialization, so an operation family is
// described as a chain of entries, each bound to a Tier:
//
//	TierAbsent      the value reports itself absent; the entry is a safe no-op
//	TierPrimary     the value's own method for the operation, or an exact type
//	TierStructural  a generic derivation from a smaller capability
//	TierLastResort  a default that applies to anything
//
// Resolve walks the tiers in ascending order and returns the single entry of the
// first tier that matches. Two matches inside one tier is ErrAmbiguousOverload;
// no match at all is ErrNoImplementation.
//
// Matching never uses reflection. WhenHas matches by type assertion against
// an interface (a "has method X" pattern) and WhenIs against one concrete
// type (an exact pattern). Fallback matches everything present. Nullable
// matches a nil interface and consults the Absenter capability, and never
// dereferences an absent value.
//
// An implementation is a value, usually a zero-size struct satisfying a
// small interface, rather than a closure. A chain is then a fixed-size array
// of constants and resolving it does not allocate. What remains per call is
// one type assertion per entry tried, the runtime stand-in for compile-time
// specialization.
//
// The public entry points built on this package take the smallest interface
// that guarantees some tier matches. A value with no applicable entry is then
// rejected by the compiler, and Resolve's errors only report broken chains.
//
// Chains are declared into a Registry from package init functions.
// DeclareChain records the shape of a built-in chain; Register also makes
// its entries candidates of ResolveIn, so other packages can add overloads
// for their own types. The registry rejects a malformed decl, a second owner
// for the same (capability, tier, pattern), a wildcard sharing its tier, and
// two interface patterns in one tier, so conflicting overloads fail at
// startup.
//
// Example:
//
//	type lengthImpl interface{ Length(s Sized) int }
//
//	chain := [...]overload.Entry[Sized, lengthImpl]{
//	    overload.Nullable[Sized, lengthImpl](zeroLength{}),
//	    overload.WhenHas[Sized, Lengther, lengthImpl](overload.TierPrimary, "Lengther", ownLength{}),
//	    overload.Fallback[Sized, lengthImpl](overload.TierStructural, "Sized", countLength{}),
//	}
//	impl := overload.MustResolveIn(overload.Default, capability.Length{}, c, chain[:]...)
//	n := impl.Length(c)
package overload
