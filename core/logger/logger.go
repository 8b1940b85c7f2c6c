package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labstack/gommon/log"
)

var std = newLogger(os.Stdout)

func newLogger(w io.Writer) *log.Logger {
	l := log.New("portal")
	l.SetOutput(w)
	l.SetHeader(`{"time":"${time_rfc3339}","level":"${level}","prefix":"${prefix}"}`)
	l.SetLevel(log.INFO)
	return l
}

// Echo returns the shared logger so echo writes through the same sink.
func Echo() *log.Logger {
	return std
}

func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		std.SetLevel(log.DEBUG)
	case "warn":
		std.SetLevel(log.WARN)
	case "error":
		std.SetLevel(log.ERROR)
	case "off":
		std.SetLevel(log.OFF)
	default:
		std.SetLevel(log.INFO)
	}
}

func Debug(msg string, args ...any) { std.Debugj(fields(msg, args)) }
func Info(msg string, args ...any)  { std.Infoj(fields(msg, args)) }
func Warn(msg string, args ...any)  { std.Warnj(fields(msg, args)) }
func Error(msg string, args ...any) { std.Errorj(fields(msg, args)) }

// fields turns key/value pairs into a JSON record. A bare error is stored under "error".
func fields(msg string, args []any) log.JSON {
	j := log.JSON{"message": msg}
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case error:
			j["error"] = v.Error()
		case string:
			if i+1 < len(args) {
				j[v] = value(args[i+1])
				i++
			} else {
				j[fmt.Sprintf("arg%d", i)] = v
			}
		default:
			j[fmt.Sprintf("arg%d", i)] = value(v)
		}
	}
	return j
}

func value(v any) any {
	if err, ok := v.(error); ok && err != nil {
		return err.Error()
	}
	return v
}
