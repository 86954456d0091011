package env

import (
	"strconv"

	"go.uber.org/zap"
)

// IntDefault return the result of searching an env var, if the env var value is empty, return a default value as int
func IntDefault(log *zap.SugaredLogger, env, def string) int {
	orDefault := OrDefault(log, env, def)
	i, err := strconv.Atoi(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as int, using ", def, ": ", err)
		i, _ = strconv.Atoi(def)
	}
	return i
}

// FloatDefault return the result of searching an env var, if the env var value is empty, return a default value as float64
func FloatDefault(log *zap.SugaredLogger, env, def string) float64 {
	orDefault := OrDefault(log, env, def)
	f, err := strconv.ParseFloat(orDefault, 64)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as float, using ", def, ": ", err)
		f, _ = strconv.ParseFloat(def, 64)
	}
	return f
}
