package curation_test

import (
	"testing"

	"curator/internal/curation"
)

func TestKnownSurface(t *testing.T) {
	for _, s := range curation.Surfaces() {
		if !curation.KnownSurface(s) {
			t.Errorf("surface %s should be known", s)
		}
	}
	if curation.KnownSurface("NEW_TAB_KLINGON") {
		t.Errorf("unexpected surface should not be known")
	}
	if curation.KnownSurface("") {
		t.Errorf("empty surface should not be known")
	}
}

func TestSurfaceAcceptsRemovalReasons(t *testing.T) {
	if !curation.SurfaceAcceptsRemovalReasons(curation.SurfaceNewTabEnUS) {
		t.Errorf("new-tab surfaces accept removal reasons")
	}
	if curation.SurfaceAcceptsRemovalReasons(curation.SurfaceSandbox) {
		t.Errorf("sandbox must not accept removal reasons")
	}
	if curation.SurfaceAcceptsRemovalReasons("BOGUS") {
		t.Errorf("unknown surfaces must not accept removal reasons")
	}
}
