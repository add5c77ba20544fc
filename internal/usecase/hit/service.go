package hit

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/hitfilter/internal/domain/scene"
	"github.com/kailas-cloud/hitfilter/internal/logger"
	"github.com/kailas-cloud/hitfilter/internal/metrics"
)

// Service resolves hit targets against scene graphs using fixed name patterns.
type Service struct {
	names scene.NamePatterns
}

// New creates a hit service. The patterns are read once and never change.
func New(p Patterns) *Service {
	return &Service{names: scene.NamePatterns{
		Exclude:     p.Exclude(),
		PlayerNodes: p.PlayerNodes(),
	}}
}

// FindClosest returns the qualifying node nearest to point under root.
// The distance is squared.
func (s *Service) FindClosest(ctx context.Context, root scene.Node, point scene.Point3, isPlayer bool) (scene.Hit, bool) {
	mode := "npc"
	if isPlayer {
		mode = "player"
	}

	h, ok := scene.FindClosestHitNode(root, point, isPlayer, s.names)
	if !ok {
		metrics.HitSearchesTotal.WithLabelValues(mode, "none").Inc()
		logger.FromContext(ctx).Debug("No hit node",
			zap.String("mode", mode),
			zap.Float32s("point", []float32{point.X, point.Y, point.Z}),
		)
		return h, false
	}

	metrics.HitSearchesTotal.WithLabelValues(mode, "hit").Inc()
	metrics.HitDistanceSquared.WithLabelValues(mode).Observe(float64(h.DistSq))
	logger.FromContext(ctx).Debug("Hit node resolved",
		zap.String("mode", mode),
		zap.String("node", h.Node.Name()),
		zap.Float32("dist_sq", h.DistSq),
	)
	return h, true
}
