package overload

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/on-the-ground/overload_ive_go/capability"
	"github.com/on-the-ground/overload_ive_go/shared/trie"
)

// ErrConflictingOverload means a declaration overlaps one already in the table.
var ErrConflictingOverload = errors.New("conflicting overload")

// ErrInvalidOverload means a declaration is malformed, e.g. it names an unknown tier.
var ErrInvalidOverload = errors.New("invalid overload")

// ErrIncompleteChain means a capability can never resolve a present value.
var ErrIncompleteChain = errors.New("incomplete overload chain")

// Decl is the type-erased description of one entry, as kept by a Registry.
type Decl struct {
	Capability string      `yaml:"capability"`
	Tier       Tier        `yaml:"tier"`
	Kind       PatternKind `yaml:"kind"`
	Pattern    string      `yaml:"pattern"`
	Describe   string      `yaml:"describe"`
	Owner      string      `yaml:"owner"`
}

func (d Decl) key() []trie.Key {
	return []trie.Key{d.Capability, d.Tier, d.Pattern}
}

func (d Decl) validate() error {
	switch {
	case d.Capability == "":
		return fmt.Errorf("%w: empty capability", ErrInvalidOverload)
	case d.Tier > TierLastResort:
		return fmt.Errorf("%w: capability %s declares %s", ErrInvalidOverload, d.Capability, d.Tier)
	case d.Kind > KindWildcard:
		return fmt.Errorf("%w: capability %s declares %s", ErrInvalidOverload, d.Capability, d.Kind)
	case (d.Kind == KindWildcard) != (d.Pattern == WildcardPattern):
		return fmt.Errorf("%w: capability %s, %s pattern %q", ErrInvalidOverload, d.Capability, d.Kind, d.Pattern)
	}
	return nil
}

// overlaps reports whether two different decls of one capability and tier can
// match the same subject. A wildcard overlaps everything, and any two
// interface patterns may be implemented by one type. Exact types only overlap
// themselves, and an exact type against an interface is left to Resolve,
// which reports the ambiguity for the types that actually hit it.
func (d Decl) overlaps(other Decl) bool {
	if d.Capability != other.Capability || d.Tier != other.Tier {
		return false
	}
	if d.Pattern == other.Pattern {
		return true
	}
	if d.Kind == KindWildcard || other.Kind == KindWildcard {
		return true
	}
	return d.Kind == KindInterface && other.Kind == KindInterface
}

// slot keys the typed entries of one (subject, implementation) type pair.
type slot[S, F any] struct{}

// Registry is the open-world table of declared overloads.
// It is safe for concurrent use.
type Registry struct {
	id     string
	logger *zap.Logger
	decls  *trie.Trie[Decl]

	// mu serializes writers. Readers of typed go through the sync.Map only.
	mu    sync.Mutex
	typed sync.Map // *slot[S, F] -> map[string][]Entry[S, F], replaced on write
}

type Option func(*Registry)

// WithLogger sets the logger used for declarations and conflicts.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		id:     uuid.New().String(),
		logger: zap.NewNop(),
		decls:  trie.New[Decl](),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default is the registry the built-in chains declare themselves into.
// The indexed entry points resolve over the entries registered here.
var Default = NewRegistry()

func (r *Registry) ID() string { return r.id }

// Declare adds decls to the table.
// A decl identical to one already in the table, or earlier in the same call,
// is a no-op. A malformed decl is rejected with ErrInvalidOverload, and one
// that overlaps a different decl of the same capability and tier with
// ErrConflictingOverload. The accepted decls of the call are kept either way.
func (r *Registry) Declare(decls ...Decl) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs error
	for _, d := range decls {
		_, err := r.declare(d)
		errs = multierr.Append(errs, err)
	}
	return errs
}

// declare must be called with r.mu held. It reports whether d was added.
func (r *Registry) declare(d Decl) (bool, error) {
	if err := d.validate(); err != nil {
		r.logger.Warn("rejected invalid overload",
			zap.String("registry", r.id),
			zap.String("owner", d.Owner),
			zap.Error(err),
		)
		return false, err
	}
	if existing, ok := r.decls.Load(d.key()); ok && existing == d {
		return false, nil
	}
	if existing, ok := r.overlapping(d); ok {
		return false, r.conflict(existing, d)
	}

	r.decls.Store(d.key(), d)
	r.logger.Debug("declared overload",
		zap.String("registry", r.id),
		zap.String("capability", d.Capability),
		zap.Stringer("tier", d.Tier),
		zap.Stringer("kind", d.Kind),
		zap.String("pattern", d.Describe),
		zap.String("owner", d.Owner),
	)
	return true, nil
}

func (r *Registry) overlapping(d Decl) (Decl, bool) {
	var (
		found Decl
		ok    bool
	)
	r.decls.Range(func(_ []trie.Key, existing Decl) bool {
		if d.overlaps(existing) {
			found, ok = existing, true
		}
		return !ok
	})
	return found, ok
}

func (r *Registry) conflict(existing, incoming Decl) error {
	r.logger.Warn("rejected conflicting overload",
		zap.String("registry", r.id),
		zap.String("capability", incoming.Capability),
		zap.Stringer("tier", incoming.Tier),
		zap.String("pattern", incoming.Describe),
		zap.String("owner", incoming.Owner),
		zap.String("existingOwner", existing.Owner),
	)
	return fmt.Errorf("%w: capability %s, tier %s, %s pattern %q by %s overlaps %s pattern %q by %s",
		ErrConflictingOverload, incoming.Capability, incoming.Tier,
		incoming.Kind, incoming.Describe, incoming.Owner,
		existing.Kind, existing.Describe, existing.Owner)
}

// DeclareChain declares the shape of a chain whose entries the caller resolves
// itself, as the built-in chains do. Nothing is added to ResolveIn.
func DeclareChain[S, F any](r *Registry, owner string, tag capability.Tag, entries ...Entry[S, F]) error {
	decls := make([]Decl, len(entries))
	for i, e := range entries {
		decls[i] = e.decl(owner, tag.Name())
	}
	return r.Declare(decls...)
}

// MustDeclareChain is the panic-on-failure variant of DeclareChain, meant for init functions.
func MustDeclareChain[S, F any](r *Registry, owner string, tag capability.Tag, entries ...Entry[S, F]) {
	if err := DeclareChain(r, owner, tag, entries...); err != nil {
		panic(err)
	}
}

// Register declares entries under tag on behalf of owner and, for every
// accepted one, makes it a candidate of ResolveIn(r, tag, ...) for the same
// subject and implementation types. Rejected entries are reported together
// and never resolve.
func Register[S, F any](r *Registry, owner string, tag capability.Tag, entries ...Entry[S, F]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs error
	for _, e := range entries {
		added, err := r.declare(e.decl(owner, tag.Name()))
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if added {
			storeTyped(r, tag, e)
		}
	}
	return errs
}

// MustRegister is the panic-on-failure variant of Register, meant for init functions.
func MustRegister[S, F any](r *Registry, owner string, tag capability.Tag, entries ...Entry[S, F]) {
	if err := Register(r, owner, tag, entries...); err != nil {
		panic(err)
	}
}

// storeTyped must be called with r.mu held.
func storeTyped[S, F any](r *Registry, tag capability.Tag, e Entry[S, F]) {
	key := (*slot[S, F])(nil)
	var byTag map[string][]Entry[S, F]
	if raw, ok := r.typed.Load(key); ok {
		byTag = maps.Clone(raw.(map[string][]Entry[S, F]))
	} else {
		byTag = map[string][]Entry[S, F]{}
	}
	name := tag.Name()
	byTag[name] = append(slices.Clip(byTag[name]), e)
	r.typed.Store(key, byTag)
}

// registered returns the typed entries of tag. It does not allocate.
func registered[S, F any](r *Registry, tag capability.Tag) []Entry[S, F] {
	if r == nil {
		return nil
	}
	raw, ok := r.typed.Load((*slot[S, F])(nil))
	if !ok {
		return nil
	}
	return raw.(map[string][]Entry[S, F])[tag.Name()]
}

// Entries returns every declaration, ordered by capability, tier and pattern.
func (r *Registry) Entries() []Decl {
	out := make([]Decl, 0, r.decls.Len())
	r.decls.Range(func(_ []trie.Key, d Decl) bool {
		out = append(out, d)
		return true
	})
	slices.SortFunc(out, func(a, b Decl) int {
		return cmp.Or(
			cmp.Compare(a.Capability, b.Capability),
			cmp.Compare(a.Tier, b.Tier),
			cmp.Compare(a.Pattern, b.Pattern),
		)
	})
	return out
}

// Chain returns the declarations of one capability in resolution order.
func (r *Registry) Chain(tag capability.Tag) []Decl {
	var out []Decl
	for _, d := range r.Entries() {
		if d.Capability == tag.Name() {
			out = append(out, d)
		}
	}
	return out
}

// Fingerprint digests the whole table. Equal tables give equal fingerprints
// in every process, so a build can pin it.
func (r *Registry) Fingerprint() uint64 {
	h := xxhash.New()
	for _, d := range r.Entries() {
		_, _ = h.WriteString(d.Capability)
		_, _ = h.Write([]byte{0, byte(d.Tier), byte(d.Kind), 0})
		_, _ = h.WriteString(d.Pattern)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(d.Describe)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(d.Owner)
		_, _ = h.Write([]byte{'\n'})
	}
	return h.Sum64()
}

// Validate checks every declared capability can resolve a present value,
// that is, it has an entry above TierAbsent.
func (r *Registry) Validate() error {
	var errs error
	present := map[string]bool{}
	var order []string
	for _, d := range r.Entries() {
		if _, ok := present[d.Capability]; !ok {
			present[d.Capability] = false
			order = append(order, d.Capability)
		}
		if d.Tier != TierAbsent {
			present[d.Capability] = true
		}
	}
	for _, c := range order {
		if !present[c] {
			errs = multierr.Append(errs, fmt.Errorf("%w: capability %s has only absent entries",
				ErrIncompleteChain, c))
		}
	}
	return errs
}
