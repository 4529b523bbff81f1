package logger

import (
	"strings"

	cromerr "github.com/sjfleming/cromwell/errors"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func Levelify(levelString string) (LogLevel, error) {
	switch strings.ToUpper(levelString) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "NONE":
		return LevelNone, nil
	default:
		return LevelDebug, cromerr.Errorf("Unknown LogLevel string '%s', expected one of [DEBUG, INFO, WARN, ERROR, NONE]", levelString)
	}
}
