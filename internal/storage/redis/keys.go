package redis

import (
	"fmt"

	"github.com/mcoot/connectfour-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "connectfour"

// gameKey returns the Redis key for a GameRecord
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the ZSET of game IDs scored by end time
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}
