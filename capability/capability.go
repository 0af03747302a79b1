// Package capability defines the marker tags that identify operation families.
//
// A tag carries no data. It only gives an overload chain an identity, so that
// registrations, diagnostics and errors can name the operation they belong to.
package capability

// Tag identifies one operation family.
type Tag interface {
	Name() string
}

var (
	_ Tag = Item{}
	_ Tag = TryItem{}
	_ Tag = MapIndexed{}
	_ Tag = IterateIndexed{}
	_ Tag = FoldIndexed{}
	_ Tag = TraverseIndexed{}
)

type (
	Map      struct{}
	Bind     struct{}
	Return   struct{}
	Apply    struct{}
	Fold     struct{}
	Iterate  struct{}
	Traverse struct{}
	Length   struct{}
	IsEmpty  struct{}
	Zero     struct{}
	Plus     struct{}
	Compose  struct{}
	ToSeq    struct{}
	OfSeq    struct{}

	// Item reads the element at a key and fails when the key is not present.
	Item struct{}
	// TryItem reads the element at a key and reports absence instead of failing.
	TryItem struct{}
	// MapIndexed replaces every element with f(key, element).
	MapIndexed struct{}
	// IterateIndexed visits every (key, element) in the container's natural order.
	IterateIndexed struct{}
	// FoldIndexed accumulates (state, key, element) left to right.
	FoldIndexed struct{}
	// TraverseIndexed maps with an effectful function and sequences the effects.
	TraverseIndexed struct{}
)

func (Map) Name() string      { return "Map" }
func (Bind) Name() string     { return "Bind" }
func (Return) Name() string   { return "Return" }
func (Apply) Name() string    { return "Apply" }
func (Fold) Name() string     { return "Fold" }
func (Iterate) Name() string  { return "Iterate" }
func (Traverse) Name() string { return "Traverse" }
func (Length) Name() string   { return "Length" }
func (IsEmpty) Name() string  { return "IsEmpty" }
func (Zero) Name() string     { return "Zero" }
func (Plus) Name() string     { return "Plus" }
func (Compose) Name() string  { return "Compose" }
func (ToSeq) Name() string    { return "ToSeq" }
func (OfSeq) Name() string    { return "OfSeq" }

func (Item) Name() string            { return "Item" }
func (TryItem) Name() string         { return "TryItem" }
func (MapIndexed) Name() string      { return "MapIndexed" }
func (IterateIndexed) Name() string  { return "IterateIndexed" }
func (FoldIndexed) Name() string     { return "FoldIndexed" }
func (TraverseIndexed) Name() string { return "TraverseIndexed" }

// All returns the predefined tags in a fixed order.
func All() []Tag {
	return []Tag{
		Map{}, Bind{}, Return{}, Apply{}, Fold{}, Iterate{}, Traverse{},
		Length{}, IsEmpty{}, Zero{}, Plus{}, Compose{}, ToSeq{}, OfSeq{},
		Item{}, TryItem{}, MapIndexed{}, IterateIndexed{}, FoldIndexed{}, TraverseIndexed{},
	}
}

// Lookup finds a predefined tag by name.
func Lookup(name string) (Tag, bool) {
	for _, tag := range All() {
		if tag.Name() == name {
			return tag, true
		}
	}
	return nil, false
}

// Named is a tag for families defined outside this package.
type Named string

func (n Named) Name() string { return string(n) }
