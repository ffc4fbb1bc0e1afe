package cache

import (
	"context"
	"fmt"
	"time"
)

// Users are the only read-side cached entity: posts and comments carry
// per-viewer computed columns (like_count, liked), so a shared cache entry
// would serve one viewer's state to another.
const (
	UserKeyPrefix = "user:%d"
	UserTTL       = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}
