package operation

import (
	"encoding/json"
)

// Kind identifies an operation on the wire
type Kind string

// operation kinds
const (
	KindSet                 Kind = "Set"
	KindSetTurn             Kind = "SetTurn"
	KindSetVisibility       Kind = "SetVisibility"
	KindShuffle             Kind = "Shuffle"
	KindAttemptChangeTokens Kind = "AttemptChangeTokens"
	KindEndGame             Kind = "EndGame"
)

// Operation is a single state change requested from the container
type Operation interface {
	Kind() Kind
}

// Set assigns a value to a state key
type Set struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// Kind implements Operation
func (Set) Kind() Kind {
	return KindSet
}

// MarshalJSON adds the type discriminator
func (s Set) MarshalJSON() ([]byte, error) {
	type alias Set
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{KindSet, alias(s)})
}

// SetTurn hands the turn to a player
type SetTurn struct {
	PlayerID int64 `json:"playerId"`
}

// Kind implements Operation
func (SetTurn) Kind() Kind {
	return KindSetTurn
}

// MarshalJSON adds the type discriminator
func (s SetTurn) MarshalJSON() ([]byte, error) {
	type alias SetTurn
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{KindSetTurn, alias(s)})
}

// SetVisibility changes who can see the value of a key.
// A nil VisibleTo makes the value visible to everyone, an empty one hides it from everyone.
type SetVisibility struct {
	Key       string  `json:"key"`
	VisibleTo []int64 `json:"visibleToPlayerIds"`
}

// VisibleToAll returns a SetVisibility revealing key to everyone
func VisibleToAll(key string) SetVisibility {
	return SetVisibility{Key: key}
}

// VisibleToNone returns a SetVisibility hiding key from everyone
func VisibleToNone(key string) SetVisibility {
	return SetVisibility{Key: key, VisibleTo: []int64{}}
}

// Kind implements Operation
func (SetVisibility) Kind() Kind {
	return KindSetVisibility
}

// MarshalJSON adds the type discriminator
func (s SetVisibility) MarshalJSON() ([]byte, error) {
	type alias SetVisibility
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{KindSetVisibility, alias(s)})
}

// Shuffle asks the container to shuffle the values of the keys
type Shuffle struct {
	Keys []string `json:"keys"`
}

// Kind implements Operation
func (Shuffle) Kind() Kind {
	return KindShuffle
}

// MarshalJSON adds the type discriminator
func (s Shuffle) MarshalJSON() ([]byte, error) {
	type alias Shuffle
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{KindShuffle, alias(s)})
}

// AttemptChangeTokens moves chips between players' accounts and the table escrow
type AttemptChangeTokens struct {
	PlayerIDToTokens    map[int64]int `json:"playerIdToTokens"`
	PlayerIDToPotTokens map[int64]int `json:"playerIdToTokensInPot"`
}

// Kind implements Operation
func (AttemptChangeTokens) Kind() Kind {
	return KindAttemptChangeTokens
}

// MarshalJSON adds the type discriminator
func (a AttemptChangeTokens) MarshalJSON() ([]byte, error) {
	type alias AttemptChangeTokens
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{KindAttemptChangeTokens, alias(a)})
}

// EndGame marks the end of the hand with a score per player
type EndGame struct {
	PlayerIDToScore map[int64]int `json:"playerIdToScore"`
}

// Kind implements Operation
func (EndGame) Kind() Kind {
	return KindEndGame
}

// MarshalJSON adds the type discriminator
func (e EndGame) MarshalJSON() ([]byte, error) {
	type alias EndGame
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{KindEndGame, alias(e)})
}

// List is an ordered list of operations making up a move
type List []Operation

// FindSet returns the first Set of key
func (l List) FindSet(key string) (Set, bool) {
	for _, op := range l {
		if s, ok := op.(Set); ok && s.Key == key {
			return s, true
		}
	}

	return Set{}, false
}

// Has returns true if the list holds an operation of the kind
func (l List) Has(kind Kind) bool {
	for _, op := range l {
		if op.Kind() == kind {
			return true
		}
	}

	return false
}
