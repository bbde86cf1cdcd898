package content

// identifiable matches the content entry types resolvable by id
type identifiable interface {
	GetID() string
}

// Overlay resolves user-authored entries over a base collection. An
// override with a known id replaces the base entry wholesale (last write
// wins, no field merge); unknown ids append. The base slice is never
// mutated.
func Overlay[T identifiable](base, overrides []T) []T {
	if len(overrides) == 0 {
		out := make([]T, len(base))
		copy(out, base)
		return out
	}

	replacements := make(map[string]T, len(overrides))
	for _, entry := range overrides {
		replacements[entry.GetID()] = entry
	}

	out := make([]T, 0, len(base)+len(overrides))
	used := make(map[string]struct{}, len(overrides))
	for _, entry := range base {
		if replacement, ok := replacements[entry.GetID()]; ok {
			out = append(out, replacement)
			used[entry.GetID()] = struct{}{}
			continue
		}
		out = append(out, entry)
	}
	for _, entry := range overrides {
		if _, ok := used[entry.GetID()]; ok {
			continue
		}
		out = append(out, replacements[entry.GetID()])
		used[entry.GetID()] = struct{}{}
	}
	return out
}
