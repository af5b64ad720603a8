package utils

import (
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

// randomToken returns a random base36 string of the given length
func randomToken(length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(base36Chars[rand.Intn(len(base36Chars))])
	}
	return b.String()
}

// UniqueFileName builds a collision-resistant object name from an uploaded
// file name, keeping the original extension:
// <currentEpochMillis>-<random base36 token>.<ext>
func UniqueFileName(originalName string) string {
	ext := strings.TrimPrefix(filepath.Ext(originalName), ".")
	name := strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + randomToken(13)
	if ext == "" {
		return name
	}
	return name + "." + strings.ToLower(ext)
}
