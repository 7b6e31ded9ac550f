package resolver

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix marks argument keys read from the environment.
const EnvPrefix = "env:"

// Env resolves "env:NAME" keys. Values from dotenv files take precedence
// over the process environment; the process environment is never modified.
type Env struct {
	overlay map[string]string
	lookup  func(string) (string, bool)
}

// NewEnv creates an environment resolver. Each file is parsed with
// godotenv; when files define the same variable the later file wins.
func NewEnv(files ...string) (*Env, error) {
	overlay := make(map[string]string)
	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			return nil, fmt.Errorf("resolver: reading env file %s: %w", file, err)
		}
		for k, v := range values {
			overlay[k] = v
		}
	}
	return &Env{overlay: overlay, lookup: os.LookupEnv}, nil
}

func (e *Env) CanResolve(key string) bool {
	return strings.HasPrefix(key, EnvPrefix)
}

func (e *Env) Resolve(key string) (any, error) {
	value, ok := e.get(key)
	if !ok {
		return nil, fmt.Errorf("resolver: environment variable %s is not set", strings.TrimPrefix(key, EnvPrefix))
	}
	return value, nil
}

func (e *Env) Validate(key string) bool {
	_, ok := e.get(key)
	return ok
}

func (e *Env) get(key string) (string, bool) {
	name := strings.TrimPrefix(key, EnvPrefix)
	if name == "" {
		return "", false
	}
	if v, ok := e.overlay[name]; ok {
		return v, true
	}
	return e.lookup(name)
}
