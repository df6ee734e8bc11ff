package v1handler_test

import (
	"net/http"
	"os"
	"testing"

	"go.uber.org/mock/gomock"

	"curator/internal/api/handler/v1handler"
	mockcuration "curator/internal/curation/mock"
	"curator/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

// newTestHandler returns a mux with all v1 routes registered against a mock
// engine.
func newTestHandler(t *testing.T) (*mockcuration.MockCurator, *http.ServeMux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	curator := mockcuration.NewMockCurator(ctrl)

	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Curator: curator}).Register(mux)

	return curator, mux
}
