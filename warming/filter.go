package warming

// Validate keeps the candidates that pass the kind's format predicate.
func Validate[T any](kind Kind[T], candidates []T) []T {
	out := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if kind.Valid(c) {
			out = append(out, c)
		}
	}
	return out
}

// Dedupe drops candidates whose key is in existing and repeats inside the
// batch, keeping the first occurrence. Order is preserved.
func Dedupe[T any](kind Kind[T], candidates []T, existing map[string]struct{}) []T {
	seen := make(map[string]struct{}, len(existing)+len(candidates))
	for k := range existing {
		seen[k] = struct{}{}
	}
	out := make([]T, 0, len(candidates))
	for _, c := range candidates {
		k := kind.Key(c)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	return out
}
