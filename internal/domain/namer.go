package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"
)

const (
	maxNameAttempts = 8
	saltSize        = 8
)

// Namer generates member identifiers. Each name is the hex SHA-256 digest of
// the original name, a monotonic counter and a timestamp, with the first
// character forced to a letter. Names are unique per Namer: a generated name
// is never handed out twice, and reserved names are never produced.
type Namer struct {
	mu      sync.Mutex
	counter uint64
	taken   map[string]struct{}
	random  io.Reader
	now     func() time.Time
}

// NamerOption customizes a Namer.
type NamerOption func(*Namer)

// WithRandom sets the entropy source used for salts.
func WithRandom(r io.Reader) NamerOption {
	return func(n *Namer) {
		n.random = r
	}
}

// WithClock sets the time source mixed into digests.
func WithClock(now func() time.Time) NamerOption {
	return func(n *Namer) {
		n.now = now
	}
}

// NewNamer returns a Namer backed by crypto/rand and the wall clock.
func NewNamer(options ...NamerOption) *Namer {
	n := &Namer{
		taken:  make(map[string]struct{}),
		random: rand.Reader,
		now:    time.Now,
	}

	for _, option := range options {
		option(n)
	}

	return n
}

// Reserve marks a name as unavailable.
func (n *Namer) Reserve(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.taken[name] = struct{}{}
}

// Next derives a fresh identifier from original.
func (n *Namer) Next(original string) (string, error) {
	return n.next(original, false)
}

// NextSalted derives a fresh identifier from original and a random salt.
func (n *Namer) NextSalted(original string) (string, error) {
	return n.next(original, true)
}

func (n *Namer) next(original string, salted bool) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for range maxNameAttempts {
		n.counter++

		h := sha256.New()
		h.Write([]byte(original))
		h.Write([]byte(strconv.FormatUint(n.counter, 10)))
		h.Write([]byte(strconv.FormatInt(n.now().UnixNano(), 10)))

		if salted {
			salt := make([]byte, saltSize)
			if _, err := io.ReadFull(n.random, salt); err != nil {
				return "", fmt.Errorf("failed to read salt for %q: %w", original, err)
			}

			h.Write(salt)
		}

		sum := h.Sum(nil)
		name := forceLeadingLetter(hex.EncodeToString(sum), sum)

		if _, exists := n.taken[name]; exists {
			continue
		}

		n.taken[name] = struct{}{}

		return name, nil
	}

	return "", fmt.Errorf("failed to generate a unique name for %q after %d attempts", original, maxNameAttempts)
}

// forceLeadingLetter replaces the first character with a letter chosen from
// the digest so the identifier never starts with a digit.
func forceLeadingLetter(name string, sum []byte) string {
	letter := byte('a' + binary.BigEndian.Uint32(sum[len(sum)-4:])%26)

	return string(letter) + name[1:]
}
