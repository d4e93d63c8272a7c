// Package directory implements the name-matching rule that scopes shared
// clinical data to an actor. The source data model has no stable foreign
// keys; records are tied to people by display name alone, so two actors
// sharing a name are indistinguishable. Keeping the rule here lets a later
// revision swap in stable identifiers without touching ledger logic.
package directory

import (
	"strings"
)

// Matches reports whether a record's name field belongs to the actor.
// Comparison is trimmed and case-insensitive; an empty actor name matches
// only records whose name field is also empty.
func Matches(recordName, actorName string) bool {
	return strings.EqualFold(strings.TrimSpace(recordName), strings.TrimSpace(actorName))
}
