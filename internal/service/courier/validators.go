package courier

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// dedupeDistrictNames убирает дубликаты без учёта регистра, сохраняя
// порядок первого вхождения. Пустые строки отбрасываются.
func dedupeDistrictNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))

	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
