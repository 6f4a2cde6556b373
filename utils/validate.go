package utils

import (
	"regexp"
)

// npm package name rules: lowercase, URL-safe, no leading dot or underscore
var packageNameRegex = regexp.MustCompile(`^[a-z0-9~][a-z0-9-._~]*$`)

// ValidatePackageName validates a manifest package name
func ValidatePackageName(name string) bool {
	if name == "" || len(name) > 214 {
		return false
	}
	return packageNameRegex.MatchString(name)
}
