// Package scene finds the scene graph node nearest to a world-space point.
package scene

import (
	"regexp"

	"github.com/kailas-cloud/hitfilter/internal/domain/pattern"
)

// NoHitDistance is the squared distance reported when no node qualifies.
const NoHitDistance float32 = 1_000_000

// Node is a read-only view of a host scene graph node.
type Node interface {
	Name() string
	HasCollisionObject() bool
	WorldTranslate() Point3
	// Children may contain nil entries for empty slots.
	Children() []Node
}

// Hit is the nearest qualifying node and its squared distance to the query point.
type Hit struct {
	Node   Node
	DistSq float32
}

// NamePatterns restrict which nodes qualify. Both must match a whole name;
// a nil pattern never matches.
type NamePatterns struct {
	Exclude     *regexp.Regexp
	PlayerNodes *regexp.Regexp
}

// FindClosestHitNode returns the qualifying node under root (inclusive) whose
// origin is closest to pos.
//
// A node qualifies when it has a collision object, or isPlayer is set since
// first-person nodes carry none. It must not match Exclude, and in player mode
// it must match PlayerNodes. A node wins ties against its own descendants; among
// siblings the first one visited wins.
//
// When nothing qualifies it returns Hit{DistSq: NoHitDistance} and false.
func FindClosestHitNode(root Node, pos Point3, isPlayer bool, names NamePatterns) (Hit, bool) {
	if root == nil {
		return Hit{DistSq: NoHitDistance}, false
	}

	var (
		best  Hit
		found bool
	)
	for _, child := range root.Children() {
		if child == nil {
			continue
		}
		if h, ok := FindClosestHitNode(child, pos, isPlayer, names); ok && (!found || h.DistSq < best.DistSq) {
			best, found = h, true
		}
	}

	if names.qualifies(root, isPlayer) {
		self := Hit{Node: root, DistSq: root.WorldTranslate().DistanceSquared(pos)}
		if found && best.DistSq < self.DistSq {
			return best, true
		}
		return self, true
	}

	if found {
		return best, true
	}
	return Hit{DistSq: NoHitDistance}, false
}

func (n NamePatterns) qualifies(node Node, isPlayer bool) bool {
	if !node.HasCollisionObject() && !isPlayer {
		return false
	}
	name := node.Name()
	if pattern.FullMatch(n.Exclude, name) {
		return false
	}
	return !isPlayer || pattern.FullMatch(n.PlayerNodes, name)
}
