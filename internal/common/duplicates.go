package common

// FindDuplicates returns the elements of s that occur more than once.
// Each duplicate is reported a single time, in the order of its second
// occurrence.
func FindDuplicates[S ~[]E, E comparable](s S) []E {
	return FindDuplicatesBy(s, func(e E) E { return e })
}

// FindDuplicatesBy is FindDuplicates with an explicit key projection, for
// element types whose value equality is not expressible as ==.
func FindDuplicatesBy[S ~[]E, E any, K comparable](s S, key func(E) K) []E {
	var dups []E

	seen := make(map[K]struct{}, len(s))
	reported := make(map[K]struct{})

	for _, item := range s {
		k := key(item)

		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			continue
		}

		if _, ok := reported[k]; ok {
			continue
		}

		reported[k] = struct{}{}
		dups = append(dups, item)
	}

	return dups
}
