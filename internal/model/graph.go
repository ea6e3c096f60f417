package model

import "fmt"

// Graph is the ordered list of assets produced by a build. The entry asset
// comes first and every asset sits at the index equal to its ID.
type Graph []Asset

// Edge is a single dependency reference after resolution.
type Edge struct {
	From      AssetID
	Reference string
	To        AssetID
}

// Entry returns the entry asset.
func (g Graph) Entry() (Asset, bool) {
	if len(g) == 0 {
		return Asset{}, false
	}

	return g[0], true
}

// Lookup returns the asset carrying id.
func (g Graph) Lookup(id AssetID) (Asset, bool) {
	if uint64(id) >= uint64(len(g)) {
		return Asset{}, false
	}

	return g[id], true
}

// Edges flattens every mapping into edges, ordered by source asset and then
// by declaration order. Duplicate references yield a single edge.
func (g Graph) Edges() []Edge {
	var edges []Edge

	for _, asset := range g {
		seen := make(map[string]struct{}, len(asset.Dependencies))

		for _, ref := range asset.Dependencies {
			if _, ok := seen[ref]; ok {
				continue
			}

			seen[ref] = struct{}{}

			to, ok := asset.Mapping[ref]
			if !ok {
				continue
			}

			edges = append(edges, Edge{From: asset.ID, Reference: ref, To: to})
		}
	}

	return edges
}

// Validate checks the structural invariants of a fully built graph:
// IDs are dense and match positions, and every declared reference maps to an
// asset that exists.
func (g Graph) Validate() error {
	if len(g) == 0 {
		return fmt.Errorf("graph is empty")
	}

	for i, asset := range g {
		if uint64(asset.ID) != uint64(i) {
			return fmt.Errorf("asset at position %d has id %d", i, asset.ID)
		}

		if asset.Mapping == nil {
			return fmt.Errorf("asset %d (%s) has no mapping", asset.ID, asset.Filename)
		}

		for _, ref := range asset.Dependencies {
			to, ok := asset.Mapping[ref]
			if !ok {
				return fmt.Errorf("asset %d (%s): reference %q is not mapped", asset.ID, asset.Filename, ref)
			}

			if _, ok := g.Lookup(to); !ok {
				return fmt.Errorf("asset %d (%s): reference %q maps to unknown id %d", asset.ID, asset.Filename, ref, to)
			}
		}
	}

	return nil
}
