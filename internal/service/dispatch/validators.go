package dispatch

import "strings"

func isValidOrderName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidDistrictName(name string) bool {
	return strings.TrimSpace(name) != ""
}
