package content

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// TwitterMaxChars is the hard cap applied to SocialPosts.Twitter.
const TwitterMaxChars = 280

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("hashtag", isHashtag)
	return v
}

// isHashtag accepts "#" followed by at least one non-space character.
func isHashtag(fl validator.FieldLevel) bool {
	tag, ok := strings.CutPrefix(fl.Field().String(), "#")
	return ok && tag != "" && !strings.ContainsFunc(tag, unicode.IsSpace)
}

// Validate checks an artifact against its output contract.
func Validate(artifact any) error {
	return validate.Struct(artifact)
}

// TruncateTwitter enforces TwitterMaxChars, keeping 277 characters plus "...".
// It reports whether the post was shortened.
func (p *SocialPosts) TruncateTwitter() bool {
	if utf8.RuneCountInString(p.Twitter) <= TwitterMaxChars {
		return false
	}
	runes := []rune(p.Twitter)
	p.Twitter = string(runes[:TwitterMaxChars-3]) + "..."
	return true
}
