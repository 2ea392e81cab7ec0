// Package gallery grows snowflakes from seed hashes: a SHA-256 digest is
// split into a 32-step humidity trajectory and a 32-step temperature
// trajectory, and a fresh crystal is run through them. The digest is also
// embedded into the rendered image so a flake can be reproduced from its
// own picture.
package gallery

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"flakemaker/internal/core"
	"flakemaker/internal/sims/crystal"
)

// HashLen is the hex length of a flake hash.
const HashLen = 64

// HashSeed returns the SHA-256 hex digest of the seed. With salt set, 16
// random bytes are appended first so repeated calls yield distinct flakes.
func HashSeed(seed string, salt bool) (string, error) {
	data := []byte(seed)
	if salt {
		buf := make([]byte, 16)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("salting seed: %w", err)
		}
		data = append(data, buf...)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// EvolutionFromHash derives the 32-step environment trajectory from a
// 64-digit hex hash: digit i of the first half sets humidity for step i
// (0→0%, f→100%), digit i of the second half sets temperature (0→−20 °C,
// f→−5 °C).
func EvolutionFromHash(sha string) ([]core.Environment, error) {
	if len(sha) != HashLen {
		return nil, fmt.Errorf("hash must be %d hex digits, got %d", HashLen, len(sha))
	}
	if _, err := hex.DecodeString(sha); err != nil {
		return nil, fmt.Errorf("invalid hash %q: %w", sha, err)
	}
	steps := HashLen / 2
	evo := make([]core.Environment, steps)
	for i := 0; i < steps; i++ {
		h := float64(nibble(sha[i]))
		t := float64(nibble(sha[steps+i]))
		evo[i] = core.Environment{
			Humidity:    core.Lerp(h, 0, 15, 0, 100),
			Temperature: core.Lerp(t, 0, 15, crystal.TempMin, crystal.TempMax),
		}
	}
	return evo, nil
}

// Grow runs a fresh crystal through the hash-derived trajectory and returns
// it ready for rendering.
func Grow(cfg crystal.Config, sha string) (*crystal.Crystal, error) {
	evo, err := EvolutionFromHash(sha)
	if err != nil {
		return nil, err
	}
	c := crystal.NewWithConfig(cfg)
	for _, env := range evo {
		c.Step(env)
	}
	return c, nil
}

func nibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}
