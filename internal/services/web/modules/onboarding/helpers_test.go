package onboarding

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/health/onboarding"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/moduletest"
)

type fixture struct {
	moduletest.Fixture
	handler http.Handler
	flows   *onboarding.Registry
}

func newFixture(t *testing.T, timings onboarding.Timings) fixture {
	t.Helper()
	base := moduletest.NewFixture(t)
	flows := onboarding.NewRegistry(onboarding.ClockScheduler{}, timings)
	t.Cleanup(func() { flows.Sweep(-time.Hour) })

	mount, err := New(base.Deps, flows).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return fixture{Fixture: base, handler: mount.Handler, flows: flows}
}

func instantTimings() onboarding.Timings {
	return onboarding.Timings{}
}

func (f fixture) serve(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	return moduletest.Serve(f.handler, req)
}

func (f fixture) store(t *testing.T, deviceID string) *appstate.Store {
	t.Helper()
	return f.Store(t, deviceID)
}

var (
	getRequest     = moduletest.Get
	postRequest    = moduletest.Post
	assertRedirect = moduletest.AssertRedirect
)
