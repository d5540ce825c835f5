package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vaughan0/go-ini"
)

// config holds optional per-day settings loaded from an INI file:
//
//	[day5]
//	input = ~/aoc/2022/day5.txt
type config struct {
	file ini.File
	dir  string // relative paths are resolved against this
}

// configPath returns the config file location and whether it was chosen
// explicitly with $ADVENT_CONFIG.
func configPath() (string, bool, error) {
	if path := os.Getenv("ADVENT_CONFIG"); path != "" {
		return path, true, nil
	}
	user, err := user.Current()
	if err != nil {
		return "", false, fmt.Errorf("cannot get current user: %s", err)
	}
	if user.HomeDir == "" {
		return "", false, nil
	}
	return filepath.Join(user.HomeDir, ".config", "advent", "config.ini"), false, nil
}

// loadConfig loads the config file. A missing default config file yields
// an empty config.
func loadConfig() (*config, error) {
	path, explicit, err := configPath()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return &config{}, nil
	}
	return loadConfigFile(path, explicit)
}

func loadConfigFile(path string, mustExist bool) (*config, error) {
	file, err := ini.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !mustExist {
			return &config{}, nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	return &config{file: file, dir: filepath.Dir(path)}, nil
}

// inputPath returns the configured input file for a day, if any.
func (c *config) inputPath(day int) string {
	path, ok := c.file.Get("day"+strconv.Itoa(day), "input")
	if !ok || path == "" {
		return ""
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if u, err := user.Current(); err == nil && u.HomeDir != "" {
			path = filepath.Join(u.HomeDir, rest)
		}
	}
	if !filepath.IsAbs(path) && c.dir != "" {
		path = filepath.Join(c.dir, path)
	}
	return path
}
