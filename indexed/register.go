package indexed

import (
	"github.com/on-the-ground/overload_ive_go/capability"
	"github.com/on-the-ground/overload_ive_go/overload"
)

// Owner is the name the chains of this package are declared under.
const Owner = "overload_ive_go/indexed"

// The chains do not depend on the instantiation, so one is declared for all.
// They are resolved in place, so only their shape goes into the table.
func init() {
	item := itemChain[any, any]()
	overload.MustDeclareChain(overload.Default, Owner, capability.Item{}, item[:]...)
	tryItem := tryItemChain[any, any]()
	overload.MustDeclareChain(overload.Default, Owner, capability.TryItem{}, tryItem[:]...)
	iterate := iterateChain[any, any]()
	overload.MustDeclareChain(overload.Default, Owner, capability.IterateIndexed{}, iterate[:]...)
	fold := foldChain[any, any, any]()
	overload.MustDeclareChain(overload.Default, Owner, capability.FoldIndexed{}, fold[:]...)
	length := lengthChain[any, any]()
	overload.MustDeclareChain(overload.Default, Owner, capability.Length{}, length[:]...)
	mapi := mapChain[any, any, any]()
	overload.MustDeclareChain(overload.Default, Owner, capability.MapIndexed{}, mapi[:]...)
	traverse := traverseChain[any, any, any]()
	overload.MustDeclareChain(overload.Default, Owner, capability.TraverseIndexed{}, traverse[:]...)
}
