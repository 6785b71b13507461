// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzss

import "fmt"

// Limits for the parameters. The header stores HistoryBits in a 5-bit and
// MatchLenBits in a 4-bit field.
const (
	MinHistoryBits  = 3
	MaxHistoryBits  = 31
	MinMatchLenBits = 2
	MaxMatchLenBits = 15
)

// Default values used by EncoderConfig.SetDefaults.
const (
	DefaultHistoryBits  = 12
	DefaultMatchLenBits = 4
	DefaultSearchDepth  = 0
)

// Parameters describe the layout of an LZSS stream. HistoryBits and
// MatchLenBits are stored in the stream header; SearchDepth only affects the
// encoder.
type Parameters struct {
	// HistoryBits is the width of the position field of a reference. The
	// history holds up to 2^HistoryBits bytes.
	HistoryBits int
	// MatchLenBits is the width of the length field of a reference.
	MatchLenBits int
	// SearchDepth controls the match search. 0 selects the longest
	// match, 1 the first match reaching the threshold and N the longest
	// of the first N matches reaching the threshold.
	SearchDepth int
}

// Verify checks the parameters. The returned error wraps ErrConfig.
func (p Parameters) Verify() error {
	if !(MinHistoryBits <= p.HistoryBits && p.HistoryBits <= MaxHistoryBits) {
		return fmt.Errorf("%w: history bits %d out of range [%d,%d]",
			ErrConfig, p.HistoryBits, MinHistoryBits, MaxHistoryBits)
	}
	if !(MinMatchLenBits <= p.MatchLenBits &&
		p.MatchLenBits <= MaxMatchLenBits) {
		return fmt.Errorf("%w: match length bits %d out of range [%d,%d]",
			ErrConfig, p.MatchLenBits, MinMatchLenBits,
			MaxMatchLenBits)
	}
	if p.HistoryBits <= p.MatchLenBits {
		return fmt.Errorf(
			"%w: history bits %d must exceed match length bits %d",
			ErrConfig, p.HistoryBits, p.MatchLenBits)
	}
	if p.SearchDepth < 0 {
		return fmt.Errorf("%w: search depth %d is negative",
			ErrConfig, p.SearchDepth)
	}
	return nil
}

// Threshold returns the minimum match length for which a reference record is
// shorter than the literal records it replaces. A reference needs
// 1+HistoryBits+MatchLenBits bits, a literal 9 bits.
func (p Parameters) Threshold() int {
	return (1+p.HistoryBits+p.MatchLenBits)/(1+8) + 1
}

// HistoryCap returns the capacity of the history.
func (p Parameters) HistoryCap() int {
	return 1 << p.HistoryBits
}

// WindowCap returns the capacity of the window, which is also the maximum
// match length. The length field stores length-Threshold, so the largest
// length is 2^MatchLenBits-1+Threshold.
func (p Parameters) WindowCap() int {
	return 1<<p.MatchLenBits + p.Threshold() - 1
}

// MinInputLen returns the minimum number of bytes the encoder accepts.
func (p Parameters) MinInputLen() int {
	return 2 * p.WindowCap()
}

// String returns a compact representation of the parameters.
func (p Parameters) String() string {
	return fmt.Sprintf("lzss(history=%d, match=%d, depth=%d)",
		p.HistoryBits, p.MatchLenBits, p.SearchDepth)
}

// EncoderConfig provides the configuration for an Encoder.
type EncoderConfig struct {
	Parameters
}

// SetDefaults replaces zero values with default values. The zero search
// depth is the default, so SearchDepth is never changed.
func (cfg *EncoderConfig) SetDefaults() {
	if cfg.HistoryBits == 0 {
		cfg.HistoryBits = DefaultHistoryBits
	}
	if cfg.MatchLenBits == 0 {
		cfg.MatchLenBits = DefaultMatchLenBits
	}
}

// Verify checks whether the configuration is consistent and correct. Usually
// call SetDefaults before this method.
func (cfg *EncoderConfig) Verify() error {
	if cfg == nil {
		return fmt.Errorf("%w: EncoderConfig pointer must not be nil",
			ErrConfig)
	}
	return cfg.Parameters.Verify()
}
