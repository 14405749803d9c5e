// Package breadcrumb builds and interprets the ancestor-walk trail shared by
// the catalogue-category tree and the system tree (§4.5). It is pure,
// dependency-free logic; the actual ancestor walk is a single
// $graphLookup-backed repository call (internal/infrastructure/mongo), and
// this package only assembles and validates its result.
package breadcrumb

import (
	"github.com/facilityinv/catalogue-api/internal/errs"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// TrailMaxLength bounds the breadcrumb depth. Named per spec §9 rather than
// scattered as a literal.
const TrailMaxLength = 5

// Node is the minimal shape Build needs from a tree entity.
type Node struct {
	ID       bson.ObjectID
	Name     string
	ParentID *bson.ObjectID
}

// Entry is one hop of a rendered trail.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Trail is the rendered breadcrumb response: root-to-entity ordered entries
// plus whether the walk reached an actual root (FullTrail) or was cut short
// by the TrailMaxLength bound.
type Trail struct {
	Trail     []Entry `json:"trail"`
	FullTrail bool    `json:"full_trail"`
}

// Build assembles a Trail from ancestors, the entity-to-root ordered chain
// returned by the repository's ancestor walk (ancestors[0] is the entity
// itself). Build keeps at most TrailMaxLength entries (the entity and its
// nearest TrailMaxLength-1 ancestors), reverses them to root-to-entity order
// and raises database-integrity if the walk ended with fewer than
// TrailMaxLength entries without reaching an actual root.
func Build(ancestors []Node) (*Trail, error) {
	if len(ancestors) == 0 {
		return nil, errs.New(errs.KindMissing, "entity not found")
	}
	if len(ancestors) > TrailMaxLength {
		ancestors = ancestors[:TrailMaxLength]
	}

	reversed := make([]Node, len(ancestors))
	for i, n := range ancestors {
		reversed[len(ancestors)-1-i] = n
	}

	topmost := reversed[0]
	fullTrail := topmost.ParentID == nil

	if !fullTrail && len(reversed) < TrailMaxLength {
		return nil, errs.New(errs.KindDatabaseIntegrity, "broken parent chain: ancestor walk terminated before reaching a root")
	}

	entries := make([]Entry, len(reversed))
	for i, n := range reversed {
		entries[i] = Entry{ID: n.ID.Hex(), Name: n.Name}
	}

	return &Trail{Trail: entries, FullTrail: fullTrail}, nil
}
