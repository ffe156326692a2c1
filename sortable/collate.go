package sortable

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collated orders strings according to the collation rules of a language, e.g.
// "de" puts "ä" next to "a" instead of after "z". The returned predicate owns a
// collator with internal buffers, so like the containers it is meant for, it
// must not be shared between goroutines.
func Collated(tag language.Tag, opts ...collate.Option) Less[string] {
	collator := collate.New(tag, opts...)

	return func(a, b string) bool {
		return collator.CompareString(a, b) < 0
	}
}

// CollatedLocale is Collated for a BCP 47 tag such as "sv" or "en-US".
func CollatedLocale(locale string, opts ...collate.Option) (Less[string], error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}

	return Collated(tag, opts...), nil
}
