package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short url-safe id for object keys.
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 10)
	if err != nil {
		return ""
	}
	return id
}

// GenerateRequestID is used by the request id middleware.
func GenerateRequestID() string {
	id, err := gonanoid.New()
	if err != nil {
		return GenerateID()
	}
	return id
}
