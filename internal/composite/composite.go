// Package composite resolves composite tags — values computed from other
// already-extracted tags rather than read directly off the file, such as
// GPSPosition from GPSLatitude+GPSLongitude or ImageSize from
// ExifImageWidth+ExifImageHeight (spec.md §4.C12). Resolution runs in
// passes because a composite can depend on another composite; a pass that
// adds nothing new is the fixed point.
package composite

import (
	"github.com/mmoretti/exifcore/internal/tagstore"
	"github.com/mmoretti/exifcore/internal/value"
)

// Definition describes one composite tag: its dependency lists and the
// function that computes it once those dependencies are available.
type Definition struct {
	Group    string
	Name     string
	Required []string // "Group:Name" keys that must all be present
	Desired  []string // keys used if present, tolerated if missing
	Compute  func(inputs map[string]value.Value) (value.Value, bool)
}

// Resolve runs every definition against store repeatedly until a full pass
// adds no new tags (the fixed point) or maxPasses is hit, which bounds the
// cost of a dependency cycle between two composite definitions instead of
// looping forever.
func Resolve(store *tagstore.Store, defs []Definition) {
	const maxPasses = 16
	for pass := 0; pass < maxPasses; pass++ {
		added := 0
		for _, def := range defs {
			if store.Has(def.Group, def.Name) {
				continue
			}
			inputs, ok := gatherInputs(store, def)
			if !ok {
				continue
			}
			v, ok := def.Compute(inputs)
			if !ok {
				continue
			}
			store.Insert(def.Group, def.Name, v, false)
			added++
		}
		if added == 0 {
			return
		}
	}
}

func gatherInputs(store *tagstore.Store, def Definition) (map[string]value.Value, bool) {
	inputs := make(map[string]value.Value, len(def.Required)+len(def.Desired))
	for _, key := range def.Required {
		group, name := splitKey(key)
		v, ok := store.Get(group, name)
		if !ok {
			return nil, false
		}
		inputs[key] = v
	}
	for _, key := range def.Desired {
		group, name := splitKey(key)
		if v, ok := store.Get(group, name); ok {
			inputs[key] = v
		}
	}
	return inputs, true
}

func splitKey(key string) (group, name string) {
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			return key[:i], key[i+1:]
		}
	}
	return "", key
}
