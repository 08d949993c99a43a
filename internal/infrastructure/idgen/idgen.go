// Package idgen issues process-unique identifiers of the form PREFIX-N.
//
// A single counter is shared by every prefix, so DOC-1000 and PAT-1001 can
// never collide with a later DOC-1001.
package idgen

import (
	"log"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"meditrack/internal/domain/validator"
)

// DefaultSeed is used when no counter seed is configured.
const DefaultSeed int64 = 1000

const (
	PrefixDoctor      = "DOC"
	PrefixPatient     = "PAT"
	PrefixAppointment = "APT"
	PrefixBill        = "BILL"
)

type Generator struct {
	next atomic.Int64
}

// New returns an isolated generator whose first issued number is seed. A
// negative seed is replaced by DefaultSeed.
func New(seed int64) *Generator {
	if seed < 0 {
		log.Printf("[idgen] negative seed=%d, using %d", seed, DefaultSeed)
		seed = DefaultSeed
	}
	g := &Generator{}
	g.next.Store(seed)
	return g
}

var (
	sharedOnce sync.Once
	shared     *Generator
)

// Shared returns the process-wide generator. The seed of the first call wins;
// later calls return the same instance and ignore their argument.
func Shared(seed int64) *Generator {
	sharedOnce.Do(func() {
		shared = New(seed)
	})
	return shared
}

// NextID returns uppercase(prefix)-N and advances the counter.
func (g *Generator) NextID(prefix string) (string, error) {
	p, err := validator.RequireNonBlank(prefix, "prefix")
	if err != nil {
		return "", err
	}
	n := g.next.Add(1) - 1
	return strings.ToUpper(p) + "-" + strconv.FormatInt(n, 10), nil
}

// Peek reports the number the next call will embed.
func (g *Generator) Peek() int64 {
	return g.next.Load()
}
