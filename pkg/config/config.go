// Package config defines the autotile configuration: a flat value type that
// serializes to a TOML document with one key per field.
//
// Config is freely copyable and comparable. Absent keys take the documented
// defaults, and out-of-range values are clamped rather than rejected, so any
// document that parses produces a usable configuration. Round-tripping a
// config through Encode and Parse reproduces an equal value.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tilekit/tilekit/pkg/layout"
)

// InsertionPolicy controls where a newly tiled window enters the window
// order.
type InsertionPolicy string

// Insertion policies.
const (
	InsertEnd          InsertionPolicy = "end"           // append to the end of the order
	InsertAfterFocused InsertionPolicy = "after-focused" // insert directly after the focused window
	InsertAsMaster     InsertionPolicy = "as-master"     // promote to position 0
)

// Valid reports whether p is a known policy.
func (p InsertionPolicy) Valid() bool {
	switch p {
	case InsertEnd, InsertAfterFocused, InsertAsMaster:
		return true
	}
	return false
}

// Defaults for absent keys.
const (
	DefaultAlgorithmID = layout.MasterStackID
	DefaultSplitRatio  = 0.6
	DefaultMasterCount = 1
	DefaultInnerGap    = 8
	DefaultOuterGap    = 8

	// MaxGap bounds both gap settings; larger values are clamped.
	MaxGap = 50
)

// Config holds the global, algorithm-agnostic tiling settings.
type Config struct {
	// AlgorithmID selects the active layout algorithm.
	AlgorithmID string `toml:"algorithm" json:"algorithm"`

	// SplitRatio is the default master/stack split for new screens.
	SplitRatio float64 `toml:"split_ratio" json:"split_ratio"`

	// MasterCount is the default number of master slots for new screens.
	MasterCount int `toml:"master_count" json:"master_count"`

	// InnerGap is the pixel spacing between adjacent zones, 0..50.
	InnerGap int `toml:"inner_gap" json:"inner_gap"`

	// OuterGap is the pixel spacing between zones and the screen edge, 0..50.
	OuterGap int `toml:"outer_gap" json:"outer_gap"`

	// InsertionPolicy decides where newly tiled windows enter the order.
	InsertionPolicy InsertionPolicy `toml:"insertion_policy" json:"insertion_policy"`

	// FocusNewWindows requests host focus for newly tiled windows.
	FocusNewWindows bool `toml:"focus_new_windows" json:"focus_new_windows"`

	// FocusFollowsSwap keeps focus on the moved window after swaps.
	FocusFollowsSwap bool `toml:"focus_follows_swap" json:"focus_follows_swap"`

	// ShowZoneNumbers asks the host to overlay slot numbers while dragging.
	ShowZoneNumbers bool `toml:"show_zone_numbers" json:"show_zone_numbers"`

	// HighlightMaster asks the host to mark the master zone visually.
	HighlightMaster bool `toml:"highlight_master" json:"highlight_master"`

	// MonocleHideOthers asks the host to hide non-focused windows while the
	// monocle algorithm is active.
	MonocleHideOthers bool `toml:"monocle_hide_others" json:"monocle_hide_others"`

	// MonocleShowCount asks the host to display "n of m" while the monocle
	// algorithm is active.
	MonocleShowCount bool `toml:"monocle_show_count" json:"monocle_show_count"`

	// SmartGaps suppresses gaps when a screen has a single tiled window.
	SmartGaps bool `toml:"smart_gaps" json:"smart_gaps"`

	// RespectMinimumSize honors window minimum sizes during distribution.
	RespectMinimumSize bool `toml:"respect_minimum_size" json:"respect_minimum_size"`
}

// Default returns the configuration used when no document is present.
func Default() Config {
	return Config{
		AlgorithmID:        DefaultAlgorithmID,
		SplitRatio:         DefaultSplitRatio,
		MasterCount:        DefaultMasterCount,
		InnerGap:           DefaultInnerGap,
		OuterGap:           DefaultOuterGap,
		InsertionPolicy:    InsertEnd,
		FocusNewWindows:    true,
		FocusFollowsSwap:   true,
		SmartGaps:          false,
		RespectMinimumSize: true,
	}
}

// Clamped returns a copy with every numeric field forced into its valid
// range and unknown enum values replaced with their defaults. Out-of-range
// input is never rejected outright.
func (c Config) Clamped() Config {
	if c.AlgorithmID == "" {
		c.AlgorithmID = DefaultAlgorithmID
	}
	c.SplitRatio = clampFloat(c.SplitRatio, layout.MinSplitRatio, layout.MaxSplitRatio)
	if c.MasterCount < 1 {
		c.MasterCount = 1
	}
	c.InnerGap = clampInt(c.InnerGap, 0, MaxGap)
	c.OuterGap = clampInt(c.OuterGap, 0, MaxGap)
	if !c.InsertionPolicy.Valid() {
		c.InsertionPolicy = InsertEnd
	}
	return c
}

// =============================================================================
// Serialization
// =============================================================================

// Parse decodes a flat TOML document. Absent keys take their defaults; the
// result is clamped into valid ranges.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return c.Clamped(), nil
}

// Encode serializes the configuration as a flat TOML document.
func Encode(c Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Load reads and parses the config file at path. A missing file yields the
// defaults without error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Save writes the configuration to path as a TOML document.
func Save(c Config, path string) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
