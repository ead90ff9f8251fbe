package awareness

import (
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/platform/i18n"
	module "github.com/louisbranch/smarthealth/internal/services/web/module"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/moduletest"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
)

func TestAwarenessListsTipsWithSteps(t *testing.T) {
	t.Parallel()

	f := moduletest.NewFixture(t)
	f.Onboard(t, "device-tips", i18n.Assamese, appstate.RoleCommunity)
	mount, err := New(f.Deps).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	rr := moduletest.Serve(mount.Handler, moduletest.Get("device-tips", routepath.Awareness))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `lang="as"`) || !strings.Contains(body, "স্বাস্থ্য সজাগতা") {
		t.Fatalf("expected Assamese awareness page, got %q", body)
	}
	doc := moduletest.Parse(t, body)
	if got := moduletest.AttrValues(doc, "data-tip"); !reflect.DeepEqual(got, []string{"1", "2", "3", "4"}) {
		t.Fatalf("tips = %v", got)
	}
	for _, tip := range f.Deps.Content.Awareness.Tips {
		if len(tip.Steps) == 0 {
			t.Fatalf("tip %s has no steps", tip.ID)
		}
	}
}

func TestMountRequiresDependencies(t *testing.T) {
	t.Parallel()

	if _, err := New(module.Dependencies{}).Mount(); err == nil {
		t.Fatal("expected missing dependency error")
	}
}
