// File: /utils/validators.go
package utils

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ParseLeadingInt reads the base-10 integer at the start of s, ignoring
// leading whitespace and anything after the digits. "2021" and "12abc" parse,
// "abc" and "" do not. Values outside the int range saturate.
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Only ErrRange is possible here; saturate so an oversized id is
		// simply not found.
		if s[0] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return n, true
}

// IsLeadingInt is the "leadingint" validation rule.
func IsLeadingInt(fl validator.FieldLevel) bool {
	_, ok := ParseLeadingInt(fl.Field().String())
	return ok
}

var setupBindingOnce sync.Once

// SetupBinding configures gin's JSON binding: unknown body fields are
// rejected and the "leadingint" rule is available in binding tags.
func SetupBinding() {
	setupBindingOnce.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			// Registration only fails for an empty tag or a nil func.
			_ = v.RegisterValidation("leadingint", IsLeadingInt)
		}
	})
}
