package redis

import (
	"fmt"

	"github.com/mcoot/wordhunt/internal/model"
)

// Key prefix for all wordhunt data
const keyPrefix = "wordhunt"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// dictionaryKey returns the Redis key for a named dictionary's word set
func dictionaryKey(name string) string {
	return fmt.Sprintf("%s:dictionary:%s", keyPrefix, name)
}

// dictionaryIndexKey returns the Redis key for the SET of dictionary names
func dictionaryIndexKey() string {
	return fmt.Sprintf("%s:idx:dictionaries", keyPrefix)
}
