package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsing is returned when environment variables cannot be parsed into the target.
var ErrParsing = errors.New("config: failed to parse environment")

var (
	dotenvOnce sync.Once

	mu    sync.Mutex
	cache = make(map[reflect.Type]any)
)

// Load fills cfg from the environment. The first successful load of a type is
// cached and copied into cfg on later calls.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil target", ErrParsing)
	}

	dotenvOnce.Do(func() {
		// A missing .env file is normal outside local development.
		_ = godotenv.Load()
	})

	typ := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[typ]; ok {
		*cfg = cached.(T)
		return nil
	}

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return errors.Join(ErrParsing, err)
	}
	cache[typ] = loaded
	*cfg = loaded
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
