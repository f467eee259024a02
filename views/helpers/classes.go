package helpers

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Classes merges Tailwind class lists, letting later classes win
// conflicting utilities. Used by templates that layer variant classes
// over a base set.
func Classes(classes ...string) string {
	return twmerge.Merge(classes...)
}
