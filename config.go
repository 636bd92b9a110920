// Copyright (c) 2024-2026 Coldtrace Systems
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import "fmt"

// Mechanism identifies which of the three SP 800-90A DRBG mechanisms a
// Core uses.
type Mechanism int

const (
	MechanismHash Mechanism = iota
	MechanismHMAC
	MechanismCTR
)

func (m Mechanism) String() string {
	switch m {
	case MechanismHash:
		return "Hash"
	case MechanismHMAC:
		return "HMAC"
	case MechanismCTR:
		return "CTR"
	default:
		return "unknown"
	}
}

// Core fixes the immutable parameters of one supported (mechanism,
// primitive) pair, the direct generalization of gcry_drbg_cores[] into a
// Go value callers can select and inspect.
type Core struct {
	Name             string
	Mechanism        Mechanism
	HashAlg          HashAlg
	BlockAlg         BlockAlg
	StateLen         int
	BlockLen         int
	KeyLen           int
	SecurityStrength int
}

// Core table, one row per supported (mechanism, primitive) combination,
// mirroring gcry_drbg_cores[] in original_source/random/drbg.c.
// First-match lookup by (Mechanism, HashAlg|BlockAlg).
var (
	CoreHashSHA1   = Core{Name: "Hash-SHA-1", Mechanism: MechanismHash, HashAlg: HashSHA1, StateLen: 55, BlockLen: 20, SecurityStrength: 16}
	CoreHashSHA256 = Core{Name: "Hash-SHA-256", Mechanism: MechanismHash, HashAlg: HashSHA256, StateLen: 55, BlockLen: 32, SecurityStrength: 32}
	CoreHashSHA384 = Core{Name: "Hash-SHA-384", Mechanism: MechanismHash, HashAlg: HashSHA384, StateLen: 111, BlockLen: 48, SecurityStrength: 32}
	CoreHashSHA512 = Core{Name: "Hash-SHA-512", Mechanism: MechanismHash, HashAlg: HashSHA512, StateLen: 111, BlockLen: 64, SecurityStrength: 32}

	CoreHMACSHA1   = Core{Name: "HMAC-SHA-1", Mechanism: MechanismHMAC, HashAlg: HashSHA1, StateLen: 20, BlockLen: 20, SecurityStrength: 16}
	CoreHMACSHA256 = Core{Name: "HMAC-SHA-256", Mechanism: MechanismHMAC, HashAlg: HashSHA256, StateLen: 32, BlockLen: 32, SecurityStrength: 32}
	CoreHMACSHA384 = Core{Name: "HMAC-SHA-384", Mechanism: MechanismHMAC, HashAlg: HashSHA384, StateLen: 48, BlockLen: 48, SecurityStrength: 32}
	CoreHMACSHA512 = Core{Name: "HMAC-SHA-512", Mechanism: MechanismHMAC, HashAlg: HashSHA512, StateLen: 64, BlockLen: 64, SecurityStrength: 32}

	CoreCTRAES128 = Core{Name: "CTR-AES-128", Mechanism: MechanismCTR, BlockAlg: BlockAES128, StateLen: 32, BlockLen: 16, KeyLen: 16, SecurityStrength: 16}
	CoreCTRAES192 = Core{Name: "CTR-AES-192", Mechanism: MechanismCTR, BlockAlg: BlockAES192, StateLen: 40, BlockLen: 16, KeyLen: 24, SecurityStrength: 24}
	CoreCTRAES256 = Core{Name: "CTR-AES-256", Mechanism: MechanismCTR, BlockAlg: BlockAES256, StateLen: 48, BlockLen: 16, KeyLen: 32, SecurityStrength: 32}
)

var allCores = []Core{
	CoreHashSHA1, CoreHashSHA256, CoreHashSHA384, CoreHashSHA512,
	CoreHMACSHA1, CoreHMACSHA256, CoreHMACSHA384, CoreHMACSHA512,
	CoreCTRAES128, CoreCTRAES192, CoreCTRAES256,
}

// maxAddtl and maxRequestBytes are defined explicitly rather than derived
// from native pointer width: this package targets 64-bit-capable
// platforms uniformly, so there is no 32-bit variant to size for.
const (
	maxAddtl        = 1 << 35
	maxRequestBytes = 1 << 16
	maxReseedCount  = uint64(1) << 48
)

// Config configures a Handle at construction time, a functional-options
// pair carrying the full SP 800-90A parameter set (via Core) rather than a
// single AES key size.
type Config struct {
	Core                 Core
	PredictionResistance bool
	Personalization      []byte
	EntropySource        EntropySource
}

// Option mutates a Config during construction.
type Option func(*Config)

// DefaultConfig returns the configuration the package-level Init uses:
// HMAC-SHA-256, no prediction resistance.
func DefaultConfig() Config {
	return Config{
		Core:                 CoreHMACSHA256,
		PredictionResistance: false,
	}
}

// WithCore selects a specific (mechanism, primitive) core.
func WithCore(c Core) Option {
	return func(cfg *Config) { cfg.Core = c }
}

// WithPredictionResistance enables or disables prediction resistance.
func WithPredictionResistance(pr bool) Option {
	return func(cfg *Config) { cfg.PredictionResistance = pr }
}

// WithPersonalization sets the personalization string mixed into the
// initial seed.
func WithPersonalization(p []byte) Option {
	return func(cfg *Config) { cfg.Personalization = p }
}

// WithEntropySource overrides the default crypto/rand-backed entropy
// source.
func WithEntropySource(src EntropySource) Option {
	return func(cfg *Config) { cfg.EntropySource = src }
}

// applyOptions builds a Config from DefaultConfig plus opts, validating
// the resulting core is one this package recognizes.
func applyOptions(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateCore(cfg.Core); err != nil {
		return Config{}, err
	}
	if len(cfg.Personalization) > maxAddtl {
		return Config{}, fmt.Errorf("%w: personalization length %d exceeds maximum %d", ErrInvalidArgument, len(cfg.Personalization), maxAddtl)
	}
	return cfg, nil
}

// validateCore confirms c is one of the statically supported cores (first
// match by mechanism and primitive).
func validateCore(c Core) error {
	for _, known := range allCores {
		if known.Mechanism == c.Mechanism &&
			((c.Mechanism != MechanismCTR && known.HashAlg == c.HashAlg) ||
				(c.Mechanism == MechanismCTR && known.BlockAlg == c.BlockAlg)) {
			return nil
		}
	}
	return fmt.Errorf("%w: unsupported core %+v", ErrInvalidArgument, c)
}
