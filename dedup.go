package pagerec

// DedupExperience drops entries repeating an earlier (role, company, start)
// key, keeping document order.
func DedupExperience(entries []ExperienceEntry) []ExperienceEntry {
	type key struct{ role, company, from string }
	return dedupBy(entries, func(e ExperienceEntry) key {
		return key{e.Role, e.CompanyName, e.DateFrom}
	})
}

// DedupEducation drops entries repeating an earlier (institution, degree,
// start) key, keeping document order.
func DedupEducation(entries []EducationEntry) []EducationEntry {
	type key struct{ institution, degree, from string }
	return dedupBy(entries, func(e EducationEntry) key {
		return key{e.InstitutionName, e.Degree, e.DateFrom}
	})
}

func dedupBy[T any, K comparable](items []T, keyFn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := keyFn(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}
