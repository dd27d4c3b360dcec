package district

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// normalizeName приводит имя района к форме хранения: нижний регистр
// без краевых пробелов. Уникальность districts.name действует на
// нормализованной форме.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
