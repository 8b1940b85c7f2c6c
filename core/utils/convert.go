package utils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

func ToUUID(s string) uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil
	}
	return id
}

func ToNumberWithDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// ToInt64 parses a positive id. ok is false for anything else.
func ToInt64(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func ToString(v int64) string {
	return strconv.FormatInt(v, 10)
}
