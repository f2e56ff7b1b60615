package primitives

import "sort"

// PolicyId is the 28-byte hash of a minting policy script. Grounded on
// apollo's Policy.PolicyId, which wraps the same value as a hex string.
type PolicyId = Hash28

// AssetName is 0-32 raw bytes; kept as a string so it can be a map key
// (apollo's AssetName.AssetName does the same internally).
type AssetName string

// Asset maps AssetName to a signed quantity for a single policy, mirroring
// apollo's Asset.Asset[int64].
type Asset map[AssetName]int64

// MultiAsset maps PolicyId to Asset, mirroring apollo's
// MultiAsset.MultiAsset[int64].
type MultiAsset map[PolicyId]Asset

// Canonical returns a new MultiAsset with zero quantities and empty inner
// maps removed (§3 "Canonical form omits zero quantities and empty inner
// maps").
func (m MultiAsset) Canonical() MultiAsset {
	out := make(MultiAsset)
	for policy, asset := range m {
		inner := make(Asset)
		for name, qty := range asset {
			if qty != 0 {
				inner[name] = qty
			}
		}
		if len(inner) > 0 {
			out[policy] = inner
		}
	}
	return out
}

// Equal reports whether m and other have equal canonical forms.
func (m MultiAsset) Equal(other MultiAsset) bool {
	a, b := m.Canonical(), other.Canonical()
	if len(a) != len(b) {
		return false
	}
	for policy, asset := range a {
		bAsset, ok := b[policy]
		if !ok || len(asset) != len(bAsset) {
			return false
		}
		for name, qty := range asset {
			if bAsset[name] != qty {
				return false
			}
		}
	}
	return true
}

// Add returns the pointwise sum of m and other.
func (m MultiAsset) Add(other MultiAsset) MultiAsset {
	out := make(MultiAsset)
	for policy, asset := range m {
		inner := make(Asset, len(asset))
		for name, qty := range asset {
			inner[name] = qty
		}
		out[policy] = inner
	}
	for policy, asset := range other {
		inner, ok := out[policy]
		if !ok {
			inner = make(Asset)
			out[policy] = inner
		}
		for name, qty := range asset {
			inner[name] += qty
		}
	}
	return out.Canonical()
}

// Negate returns m with every quantity sign-flipped.
func (m MultiAsset) Negate() MultiAsset {
	out := make(MultiAsset, len(m))
	for policy, asset := range m {
		inner := make(Asset, len(asset))
		for name, qty := range asset {
			inner[name] = -qty
		}
		out[policy] = inner
	}
	return out
}

// HasNegativeEntries reports whether any entry has a quantity below zero
// ("negative assets" per §3).
func (m MultiAsset) HasNegativeEntries() bool {
	for _, asset := range m.Canonical() {
		for _, qty := range asset {
			if qty < 0 {
				return true
			}
		}
	}
	return false
}

// PolicyIds returns the policy keys in lexicographic order, the canonical
// iteration order required by §5's "no observable non-determinism".
func (m MultiAsset) PolicyIds() []PolicyId {
	ids := make([]PolicyId, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
	return ids
}

// AssetNames returns the asset names within a single policy's Asset map in
// lexicographic byte order.
func (a Asset) AssetNames() []AssetName {
	names := make([]AssetName, 0, len(a))
	for n := range a {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
