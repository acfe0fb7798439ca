// Package ids generates client-side record identities.
package ids

import (
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	BookingPrefix = "HHB"
	GuestPrefix   = "g"
	TicketPrefix  = "TKT"

	suffixLen = 5
)

// Generator builds identities from a prefix, the current unix millisecond
// and a short random base36 suffix.
type Generator struct {
	now func() time.Time
}

// New returns a Generator using the wall clock
func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock returns a Generator reading time from now
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Next returns a fresh identity with the given prefix
func (g *Generator) Next(prefix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(strconv.FormatInt(g.now().UnixMilli(), 10))
	b.WriteString(randomSuffix())
	return b.String()
}

// Booking returns a fresh booking identity
func (g *Generator) Booking() string {
	return g.Next(BookingPrefix)
}

// Guest returns a fresh guest identity
func (g *Generator) Guest() string {
	return g.Next(GuestPrefix)
}

// Ticket returns a fresh support ticket identity
func (g *Generator) Ticket() string {
	return g.Next(TicketPrefix)
}

func randomSuffix() string {
	id := uuid.New()
	n := new(big.Int).SetBytes(id[:])
	s := n.Text(36)
	for len(s) < suffixLen {
		s = "0" + s
	}
	return s[len(s)-suffixLen:]
}
