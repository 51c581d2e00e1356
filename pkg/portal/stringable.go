package portal

import (
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Stringable struct {
	value string
}

func MakeStringable(value string) *Stringable {
	return &Stringable{
		value: strings.TrimSpace(value),
	}
}

func (s Stringable) ToLower() string {
	caser := cases.Lower(language.English)

	return strings.TrimSpace(caser.String(s.value))
}

func (s Stringable) IsEmpty() bool {
	return s.value == ""
}

func (s Stringable) String() string {
	return s.value
}

// Slugify derives a URL-safe slug from free text, e.g. "Hello World" into
// "hello-world".
func Slugify(value string) string {
	return slug.Make(value)
}
