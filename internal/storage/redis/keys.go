package redis

import (
	"fmt"

	"github.com/mcoot/othello/internal/model"
)

// Key prefix used when Config.KeyPrefix is empty
const defaultKeyPrefix = "othello"

// keys builds Redis keys under a prefix
type keys struct {
	prefix string
}

func newKeys(prefix string) keys {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return keys{prefix: prefix}
}

// game returns the Redis key for a Game document
func (k keys) game(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", k.prefix, id)
}

// gamesIndex returns the Redis key for the SET of all game keys
func (k keys) gamesIndex() string {
	return fmt.Sprintf("%s:idx:games", k.prefix)
}
