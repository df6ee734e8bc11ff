package curation

import "curator/pkg/domain"

// Recognized surfaces.
const (
	SurfaceNewTabEnUS   domain.Surface = "NEW_TAB_EN_US"
	SurfaceNewTabDeDE   domain.Surface = "NEW_TAB_DE_DE"
	SurfaceNewTabEnGB   domain.Surface = "NEW_TAB_EN_GB"
	SurfaceNewTabFrFR   domain.Surface = "NEW_TAB_FR_FR"
	SurfaceNewTabEnIntl domain.Surface = "NEW_TAB_EN_INTL"
	SurfaceDigestEnUS   domain.Surface = "DAILY_DIGEST_EN_US"
	SurfaceSandbox      domain.Surface = "SANDBOX"
)

// surfaceInfo describes per-surface behavior of the lifecycle engine.
type surfaceInfo struct {
	// removalReasons marks surfaces whose removal events carry curator-provided
	// reasons and comments. For all other surfaces these fields are dropped.
	removalReasons bool
}

var surfaces = map[domain.Surface]surfaceInfo{ //nolint: gochecknoglobals
	SurfaceNewTabEnUS:   {removalReasons: true},
	SurfaceNewTabDeDE:   {removalReasons: true},
	SurfaceNewTabEnGB:   {removalReasons: true},
	SurfaceNewTabFrFR:   {removalReasons: true},
	SurfaceNewTabEnIntl: {removalReasons: true},
	SurfaceDigestEnUS:   {},
	SurfaceSandbox:      {},
}

// KnownSurface reports whether s is a recognized surface identifier.
func KnownSurface(s domain.Surface) bool {
	_, ok := surfaces[s]

	return ok
}

// SurfaceAcceptsRemovalReasons reports whether removal events for s carry
// curator-provided reasons and comments.
func SurfaceAcceptsRemovalReasons(s domain.Surface) bool {
	return surfaces[s].removalReasons
}

// Surfaces returns all recognized surface identifiers in unspecified order.
func Surfaces() []domain.Surface {
	out := make([]domain.Surface, 0, len(surfaces))
	for s := range surfaces {
		out = append(out, s)
	}

	return out
}
