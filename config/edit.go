package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/animeflow/animeflow/constant"
	"github.com/animeflow/animeflow/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// ErrUnknownKey is returned for keys missing from Default.
var ErrUnknownKey = errors.New("unknown key")

// Path is the location of the config file.
func Path() string {
	return filepath.Join(where.Config(), constant.AnimeFlow+".toml")
}

// Lookup returns the field registered under k.
func Lookup(k string) (Field, error) {
	field, ok := Default[k]
	if !ok {
		return Field{}, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownKey, k, Closest(k))
	}
	return field, nil
}

// Closest returns the registered key with the smallest edit distance to k.
func Closest(k string) string {
	return lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
}

// Parse converts command line values to the type of the field's default.
func (f *Field) Parse(values []string) (any, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%s: value required", f.Key)
	}

	switch f.Value.(type) {
	case string:
		return values[0], nil
	case int:
		n, err := strconv.Atoi(values[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer %q", f.Key, values[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(values[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid boolean %q", f.Key, values[0])
		}
		return b, nil
	case []string:
		return values, nil
	default:
		return nil, fmt.Errorf("%s: unsupported type %s", f.Key, f.typeName())
	}
}

// Write persists the in-memory settings, creating the file on first use.
func Write() error {
	err := viper.WriteConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return viper.SafeWriteConfig()
	}
	return err
}
