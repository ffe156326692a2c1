package bench

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/amp-labs/amp-flat/sortable"
	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
)

// keySet is the candidate keys of a workload with their ordering and a way to
// feed a key into a fingerprint.
type keySet[K any] struct {
	keys  []K
	less  sortable.Less[K]
	write func(h *xxh3.Hasher, k K)
}

func seedBytes(seed uint64, stream byte) [32]byte {
	var out [32]byte

	binary.LittleEndian.PutUint64(out[:], seed)
	out[31] = stream

	return out
}

func intKeys(w Workload) keySet[int] {
	rng := rand.New(rand.NewChaCha8(seedBytes(w.Seed, 'k'))) //nolint:gosec // reproducible test data

	return keySet[int]{
		keys: rng.Perm(w.KeySpace),
		less: sortable.Natural[int](),
		write: func(h *xxh3.Hasher, k int) {
			_, _ = h.Write(binary.LittleEndian.AppendUint64(nil, uint64(k))) //nolint:gosec // bit pattern only
		},
	}
}

func writeString(h *xxh3.Hasher, s string) {
	_, _ = h.Write(binary.LittleEndian.AppendUint32(nil, uint32(len(s)))) //nolint:gosec // lengths fit
	_, _ = h.Write([]byte(s))
}

// uuidKeys draws version 4 UUIDs from a seeded ChaCha8 stream, so the same
// seed always yields the same keys.
func uuidKeys(w Workload) (keySet[string], error) {
	source := rand.NewChaCha8(seedBytes(w.Seed, 'u'))
	keys := make([]string, 0, w.KeySpace)

	for range w.KeySpace {
		id, err := uuid.NewRandomFromReader(source)
		if err != nil {
			return keySet[string]{}, err
		}

		keys = append(keys, id.String())
	}

	return keySet[string]{keys: keys, less: sortable.Natural[string](), write: writeString}, nil
}

// naturalKeys are file-like names whose numeric parts must compare by value.
func naturalKeys(w Workload) keySet[string] {
	rng := rand.New(rand.NewChaCha8(seedBytes(w.Seed, 'n'))) //nolint:gosec // reproducible test data
	prefixes := []string{"img", "file", "log", "part"}
	keys := make([]string, w.KeySpace)

	for i, n := range rng.Perm(w.KeySpace) {
		keys[i] = fmt.Sprintf("%s%d.dat", prefixes[n%len(prefixes)], n)
	}

	return keySet[string]{keys: keys, less: sortable.NaturalStrings(), write: writeString}
}

var syllables = []string{ //nolint:gochecknoglobals
	"a", "ä", "å", "be", "ce", "ço", "de", "é", "fa", "ö", "ol", "ra", "ss", "ß", "th", "ü", "za", "Zo",
}

// collatedKeys are made-up words with accented letters, ordered by the
// collation rules of the workload's locale.
func collatedKeys(w Workload) (keySet[string], error) {
	less, err := sortable.CollatedLocale(w.Locale)
	if err != nil {
		return keySet[string]{}, fmt.Errorf("%w: locale %q: %w", ErrInvalidWorkload, w.Locale, err)
	}

	rng := rand.New(rand.NewChaCha8(seedBytes(w.Seed, 'c'))) //nolint:gosec // reproducible test data
	keys := make([]string, w.KeySpace)

	for i := range keys {
		word := ""
		for range 2 + rng.IntN(3) {
			word += syllables[rng.IntN(len(syllables))]
		}

		// The index keeps every word distinct in byte terms.
		keys[i] = fmt.Sprintf("%s%d", word, i)
	}

	return keySet[string]{keys: keys, less: less, write: writeString}, nil
}
