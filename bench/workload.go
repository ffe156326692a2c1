// Package bench drives the flat containers with reproducible workloads. It
// runs every container surface on every backing strategy, reports timings and
// checks that strategies which should agree produce identical contents.
package bench

import (
	"fmt"

	"github.com/amp-labs/amp-flat/errors"
)

type (
	ContainerKind string
	StorageKind   string
	KeyKind       string
	HintMode      string
)

const (
	ContainerMap      ContainerKind = "map"
	ContainerMultiMap ContainerKind = "multimap"
	ContainerSet      ContainerKind = "set"
	ContainerMultiSet ContainerKind = "multiset"

	StorageVector StorageKind = "vector"
	StorageSmall  StorageKind = "small"

	KeysInt      KeyKind = "int"
	KeysUUID     KeyKind = "uuid"
	KeysNatural  KeyKind = "natural"
	KeysCollated KeyKind = "collated"

	// HintNone inserts without a hint.
	HintNone HintMode = "none"
	// HintExact passes the position the key will end up at.
	HintExact HintMode = "exact"
	// HintEnd always hints the end, which is only right for ascending input.
	HintEnd HintMode = "end"
	// HintRandom passes a random, usually wrong, position.
	HintRandom HintMode = "random"
)

var (
	Containers = []ContainerKind{ContainerMap, ContainerMultiMap, ContainerSet, ContainerMultiSet} //nolint:gochecknoglobals,lll
	Storages   = []StorageKind{StorageVector, StorageSmall}                                        //nolint:gochecknoglobals
	KeyKinds   = []KeyKind{KeysInt, KeysUUID, KeysNatural, KeysCollated}                          //nolint:gochecknoglobals
	HintModes  = []HintMode{HintNone, HintExact, HintEnd, HintRandom}                             //nolint:gochecknoglobals
)

// Workload describes one reproducible run against one container.
type Workload struct {
	Name       string        `yaml:"name"       json:"name"`
	Container  ContainerKind `yaml:"container"  json:"container"`
	Storage    StorageKind   `yaml:"storage"    json:"storage"`
	Keys       KeyKind       `yaml:"keys"       json:"keys"`
	Ops        int           `yaml:"ops"        json:"ops"`
	KeySpace   int           `yaml:"keySpace"   json:"keySpace"`
	EraseRatio float64       `yaml:"eraseRatio" json:"eraseRatio"`
	Hint       HintMode      `yaml:"hint"       json:"hint"`
	Seed       uint64        `yaml:"seed"       json:"seed"`
	Locale     string        `yaml:"locale"     json:"locale,omitempty"`
}

const (
	defaultOps      = 10_000
	defaultKeySpace = 512
	defaultLocale   = "en"
)

// WithDefaults fills in every field left empty.
func (w Workload) WithDefaults() Workload {
	if w.Container == "" {
		w.Container = ContainerMap
	}

	if w.Storage == "" {
		w.Storage = StorageVector
	}

	if w.Keys == "" {
		w.Keys = KeysInt
	}

	if w.Ops == 0 {
		w.Ops = defaultOps
	}

	if w.KeySpace == 0 {
		w.KeySpace = defaultKeySpace
	}

	if w.Hint == "" {
		w.Hint = HintNone
	}

	if w.Keys == KeysCollated && w.Locale == "" {
		w.Locale = defaultLocale
	}

	if w.Name == "" {
		w.Name = fmt.Sprintf("%s-%s-%s-%s", w.Container, w.Storage, w.Keys, w.Hint)
	}

	return w
}

// Validate reports every invalid field of the workload.
func (w Workload) Validate() error {
	var errs errors.Collection

	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs.Add(fmt.Errorf("%w: workload %q: "+format, append([]any{ErrInvalidWorkload, w.Name}, args...)...))
		}
	}

	check(oneOf(w.Container, Containers), "unknown container %q", w.Container)
	check(oneOf(w.Storage, Storages), "unknown storage %q", w.Storage)
	check(oneOf(w.Keys, KeyKinds), "unknown key kind %q", w.Keys)
	check(oneOf(w.Hint, HintModes), "unknown hint mode %q", w.Hint)
	check(w.Ops > 0, "ops must be positive, got %d", w.Ops)
	check(w.KeySpace > 0, "keySpace must be positive, got %d", w.KeySpace)
	check(w.EraseRatio >= 0 && w.EraseRatio <= 1, "eraseRatio must be within [0, 1], got %v", w.EraseRatio)

	return errs.GetError()
}

// identity is what a run's outcome depends on. Two workloads with the same
// identity must end with the same contents whatever their storage.
func (w Workload) identity() string {
	return fmt.Sprintf("%s/%s/%d/%d/%v/%s/%d/%s",
		w.Container, w.Keys, w.Ops, w.KeySpace, w.EraseRatio, w.Hint, w.Seed, w.Locale)
}

// unique reports whether the container rejects equivalent keys.
func (w Workload) unique() bool {
	return w.Container == ContainerMap || w.Container == ContainerSet
}

func oneOf[T comparable](v T, options []T) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}

	return false
}

// Matrix expands a template into one workload per storage strategy, so that
// each can be cross-checked against the others.
func Matrix(template Workload) []Workload {
	out := make([]Workload, 0, len(Storages))

	for _, s := range Storages {
		w := template
		w.Storage = s
		w.Name = ""
		out = append(out, w.WithDefaults())
	}

	return out
}

// DefaultWorkloads covers every container and key kind on every storage.
func DefaultWorkloads() []Workload {
	var out []Workload

	for _, c := range Containers {
		for _, k := range KeyKinds {
			out = append(out, Matrix(Workload{
				Container:  c,
				Keys:       k,
				Ops:        5_000,
				KeySpace:   256,
				EraseRatio: 0.25,
				Hint:       HintExact,
				Seed:       1,
			})...)
		}
	}

	return out
}
