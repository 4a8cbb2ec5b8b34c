package security

import (
	"regexp"
	"unicode/utf8"
)

var (
	nameRE *regexp.Regexp
	uuidRE *regexp.Regexp
)

func init() {
	// letters of any script, digits, spaces and a little punctuation
	r, err := regexp.Compile(`^[\p{L}\p{N} _\-.()#/]+$`)
	if err != nil {
		panic(err.Error())
	}
	nameRE = r

	r, err = regexp.Compile("^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$")
	if err != nil {
		panic(err.Error())
	}
	uuidRE = r
}

// 验证模板名称, at most 64 characters
func ValidateName(name string) bool {
	if n := utf8.RuneCountInString(name); n == 0 || n > 64 {
		return false
	}
	return nameRE.MatchString(name)
}

// ValidateUUID accepts the canonical 36 character form only.
func ValidateUUID(id string) bool {
	return uuidRE.MatchString(id)
}
