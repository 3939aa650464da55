package initializers

import (
	"context"

	redisclient "crewtime-backend/redis"
)

func InitRedis(ctx context.Context) {
	err := redisclient.Connect(ctx)
	if err != nil {
		panic(err.Error())
	}
}
