package env

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Load seeds the process environment from the given .env files. Missing files are ignored and
// variables already set in the environment win.
func Load(log *zap.SugaredLogger, files ...string) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			log.Warn("error loading env file ", f, ": ", err)
			continue
		}
		log.Infow("startup", "envFile", f)
	}
}

// OrDefault return the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	log.Debug("env var ", env, " not set, using default")
	return def
}

// Must return the result of searching an env var, if the env var value is empty, the process exits
func Must(log *zap.SugaredLogger, env string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Fatal("required env var ", env, " is not set")
	}
	return v
}

// DurationDefault return the result of searching an env var, if the env var value is empty, return a default value as duration
func DurationDefault(log *zap.SugaredLogger, env, def string) time.Duration {
	orDefault := OrDefault(log, env, def)
	duration, err := time.ParseDuration(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as duration, using ", def, ": ", err)
		duration, _ = time.ParseDuration(def)
	}
	return duration
}

// BoolDefault return the result of searching an env var, if the env var value is empty, return a default value as bool
func BoolDefault(log *zap.SugaredLogger, env, def string) bool {
	orDefault := OrDefault(log, env, def)
	b, err := strconv.ParseBool(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as bool, using ", def, ": ", err)
		b, _ = strconv.ParseBool(def)
	}
	return b
}
