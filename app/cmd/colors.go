package cmd

import (
	"github.com/kennycyb/pars/internal/config"
	"github.com/kennycyb/pars/internal/store"
)

var ansiCodes = map[string]string{
	"black":   "30",
	"red":     "31",
	"green":   "32",
	"yellow":  "33",
	"blue":    "34",
	"magenta": "35",
	"cyan":    "36",
	"white":   "37",
	"bold":    "1",
}

// ansiColor resolves a configured colour name to its ANSI SGR code. An
// unrecognised or empty name yields "" (no colour), the safe default.
func ansiColor(name string) string {
	return ansiCodes[name]
}

func colorConfigFrom(cfg *config.Config) store.ColorConfig {
	return store.ColorConfig{
		Dir:    ansiColor(cfg.Print.DirColor),
		File:   ansiColor(cfg.Print.FileColor),
		Symbol: ansiColor(cfg.Print.SymbolColor),
		Tree:   ansiColor(cfg.Print.TreeColor),
	}
}
