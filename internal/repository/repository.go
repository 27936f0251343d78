package repository

import (
	"time"

	"github.com/wb-go/wbf/retry"
)

// Чтения повторяются по стратегии; записи идут одной транзакцией без повторов.
func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}
