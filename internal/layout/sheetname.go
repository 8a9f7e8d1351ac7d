package layout

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxSheetNameLen is Excel's sheet name limit in characters.
const MaxSheetNameLen = 31

const invalidSheetChars = `[]:*?/\`

// SanitizeSheetName removes characters Excel rejects in sheet names, trims
// surrounding spaces and apostrophes and truncates to MaxSheetNameLen.
func SanitizeSheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidSheetChars, r) {
			return -1
		}
		return r
	}, name)
	name = strings.Trim(name, " '")
	name = truncateRunes(name, MaxSheetNameLen)
	name = strings.TrimRight(name, " '")
	if name == "" {
		return "Sheet"
	}
	return name
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// nameSet hands out unique sheet names. Excel compares names
// case-insensitively.
type nameSet map[string]bool

func (ns nameSet) reserve(name string) {
	ns[strings.ToLower(name)] = true
}

func (ns nameSet) unique(raw string) string {
	name := SanitizeSheetName(raw)
	if !ns[strings.ToLower(name)] {
		ns.reserve(name)
		return name
	}
	for n := 2; ; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		base := strings.TrimRight(truncateRunes(name, MaxSheetNameLen-len(suffix)), " ")
		candidate := base + suffix
		if !ns[strings.ToLower(candidate)] {
			ns.reserve(candidate)
			return candidate
		}
	}
}
