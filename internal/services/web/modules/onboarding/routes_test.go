package onboarding

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/smarthealth/internal/health/onboarding"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
)

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(onboarding.NewRegistry(nil, instantTimings())), modulehandler.Base{}))
}

func TestRegisterRoutesOnboardingPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	f := newFixture(t, instantTimings())

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "root get", method: http.MethodGet, path: routepath.Root, wantStatus: http.StatusOK},
		{name: "root head", method: http.MethodHead, path: routepath.Root, wantStatus: http.StatusOK},
		{name: "language post without value", method: http.MethodPost, path: routepath.OnboardingLanguage, wantStatus: http.StatusSeeOther},
		{name: "role post without value", method: http.MethodPost, path: routepath.OnboardingRole, wantStatus: http.StatusSeeOther},
		{name: "language get rejected", method: http.MethodGet, path: routepath.OnboardingLanguage, wantStatus: http.StatusMethodNotAllowed, wantAllow: http.MethodPost},
		{name: "role get rejected", method: http.MethodGet, path: routepath.OnboardingRole, wantStatus: http.StatusMethodNotAllowed, wantAllow: http.MethodPost},
		{name: "unknown path", method: http.MethodGet, path: "/nowhere", wantStatus: http.StatusNotFound},
		{name: "unknown nested path", method: http.MethodGet, path: "/nowhere/deeper", wantStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := getRequest("device-"+tc.name, tc.path)
			req.Method = tc.method
			rr := httptest.NewRecorder()
			f.handler.ServeHTTP(rr, req)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if tc.wantAllow != "" {
				if got := rr.Header().Get("Allow"); got != tc.wantAllow {
					t.Fatalf("Allow = %q, want %q", got, tc.wantAllow)
				}
			}
		})
	}
}
