package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output.
// Use this in tests to avoid log noise.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Words is a small dictionary shared by service tests
func Words() []string {
	return []string{
		"a", "i",
		"at", "ta", "as", "is", "it", "in", "on", "no", "to", "an", "be", "we",
		"cat", "act", "tac", "cats", "scat", "cast", "acts",
		"ate", "eat", "tea", "eta", "tan", "ant", "nat",
		"sat", "set", "sit", "tin", "ten", "net", "not", "ton",
		"rat", "art", "tar", "car", "arc", "bat", "tab",
		"dog", "god", "cot", "cog",
		"seat", "east", "eats", "teas", "sate", "neat", "ante",
		"rate", "tear", "tare", "star", "rats", "arts", "tars",
		"stare", "tears", "rates", "aster", "antes", "etnas",
	}
}
