package redis

import (
	"fmt"

	"github.com/mcoot/wordgame/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "wordgame"

// dictionaryKey returns the Redis key for the dictionary word set
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}

// summaryKey returns the Redis key for a finished game's summary
func summaryKey(id model.GameID) string {
	return fmt.Sprintf("%s:result:%s", keyPrefix, id)
}

// summaryIndexKey returns the Redis key for the ZSET of summaries scored by
// completion time
func summaryIndexKey() string {
	return fmt.Sprintf("%s:idx:results", keyPrefix)
}
