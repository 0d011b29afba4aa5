// Package collection provides the ordered containers of the runtime layer:
// an observable array, an insertion-ordered map and a unique-value set, all
// built on one small-size-optimized backing store.
//
// # Hybrid Storage
//
// Every collection starts with four element slots embedded in its own
// struct. Collections that stay at four elements or fewer, the common case
// for bindings-layer data, never touch the heap. The fifth element
// triggers a one-way promotion:
//
//	a := collection.NewArray[int](nil)
//	for i := 0; i < 4; i++ {
//		a.Append(i) // inline, no allocation
//	}
//	a.Append(4) // promotes to heap storage, permanently
//
// Promotion never reverses. Removing elements afterwards keeps the heap
// storage, which avoids promote/demote churn at the boundary.
//
// # Policies
//
// Array allows duplicates and indexes by position. Pass a Hooks
// implementation to observe mutations; every hook fires after the change
// is visible:
//
//	a := collection.NewArray[string](myHooks)
//	a.Append("x") // myHooks.SetIndexedValue(0, "x")
//
// Maplike keys are unique and iteration follows insertion order;
// overwriting a key keeps its position. Setlike members are unique and
// Add of an existing member is a no-op. Both take a read-only form
// (NewReadonlyMaplike, NewReadonlySetlike) whose mutators fail with a
// readonly error while reads keep working.
//
// While inline, keyed lookup is a linear scan over at most four entries.
// After promotion it delegates to an ordered-map with hashed lookup.
//
// All collections are single-goroutine objects; nothing here locks.
package collection
