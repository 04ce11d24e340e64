package setup

import (
	"context"
	"sync"

	"github.com/bornholm/hackboard/internal/config"
	"github.com/pkg/errors"
)

type fromConfigFunc[T any] func(ctx context.Context, conf *config.Config) (T, error)

type fromConfigResult[T any] struct {
	once    sync.Once
	service T
	err     error
}

// createFromConfigOnce memoizes factory per configuration so that every
// component built from the same configuration shares one instance.
func createFromConfigOnce[T any](factory fromConfigFunc[T]) fromConfigFunc[T] {
	var (
		mutex   sync.Mutex
		results = map[*config.Config]*fromConfigResult[T]{}
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		mutex.Lock()
		result, exists := results[conf]
		if !exists {
			result = &fromConfigResult[T]{}
			results[conf] = result
		}
		mutex.Unlock()

		result.once.Do(func() {
			result.service, result.err = factory(ctx, conf)
		})

		if result.err != nil {
			return *new(T), errors.WithStack(result.err)
		}

		return result.service, nil
	}
}
