// Package sanitize strips characters that carry meaning for the document
// store from user-supplied values before they are persisted.
package sanitize

import (
	"reflect"
	"strings"
)

// DefaultBlacklist covers document-store operator characters.
var DefaultBlacklist = []rune{'$', '{', '}'}

type Sanitizer struct {
	blacklist map[rune]struct{}
}

func New(blacklist []rune) *Sanitizer {
	m := make(map[rune]struct{}, len(blacklist))
	for _, r := range blacklist {
		m[r] = struct{}{}
	}
	return &Sanitizer{blacklist: m}
}

// Clean returns target with every blacklisted character removed. An empty
// blacklist is a no-op.
func (s *Sanitizer) Clean(target string) string {
	if len(s.blacklist) == 0 {
		return target
	}
	var b strings.Builder
	b.Grow(len(target))
	for _, r := range target {
		if _, bad := s.blacklist[r]; !bad {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CleanStruct cleans every exported string field of the struct pointed to by
// target, in place. Non-struct or non-pointer values are left untouched.
func (s *Sanitizer) CleanStruct(target any) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(s.Clean(f.String()))
		}
	}
}

// HasBlacklisted reports whether target contains any blacklisted character.
func (s *Sanitizer) HasBlacklisted(target string) bool {
	for _, r := range target {
		if _, bad := s.blacklist[r]; bad {
			return true
		}
	}
	return false
}
