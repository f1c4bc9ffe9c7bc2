package config

import (
	"crypto/sha256"
	"encoding/hex"
)

// Checksum returns the sha256 of the serialized record. Build tooling can
// compare it across runs to detect configuration drift without diffing.
func Checksum(cfg *Config) (string, error) {
	data, err := Marshal(cfg)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
