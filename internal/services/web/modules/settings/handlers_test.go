package settings

import (
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/platform/i18n"
	module "github.com/louisbranch/smarthealth/internal/services/web/module"
	flashnotice "github.com/louisbranch/smarthealth/internal/services/web/platform/flash"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/moduletest"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
)

type recordingFlows struct {
	mu      sync.Mutex
	removed []string
}

func (f *recordingFlows) Remove(deviceID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, deviceID)
}

func mountSettings(t *testing.T, f moduletest.Fixture, opts ...Option) http.Handler {
	t.Helper()
	mount, err := New(f.Deps, opts...).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.SettingsPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.SettingsPrefix)
	}
	return mount.Handler
}

func TestSettingsMarksCurrentLanguageAndRole(t *testing.T) {
	t.Parallel()

	f := moduletest.NewFixture(t)
	f.Onboard(t, "device-view", i18n.Bengali, appstate.RoleCommunity)
	h := mountSettings(t, f)

	rr := moduletest.Serve(h, moduletest.Get("device-view", routepath.Settings))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	doc := moduletest.Parse(t, rr.Body.String())

	current := moduletest.FindAll(doc, moduletest.HasAttr("class", "choice choice-current"))
	var values []string
	for _, n := range current {
		v, _ := moduletest.Attr(n, "value")
		values = append(values, v)
	}
	if want := []string{"bn", "community"}; !reflect.DeepEqual(values, want) {
		t.Fatalf("current choices = %v, want %v", values, want)
	}
	if got := moduletest.AttrValues(doc, "data-card"); !reflect.DeepEqual(got, []string{"profile", "language", "role", "notifications", "data", "about", "help"}) {
		t.Fatalf("cards = %v", got)
	}
	if !strings.Contains(rr.Body.String(), "সেটিংস") {
		t.Fatalf("expected Bengali settings title")
	}
	if !strings.Contains(rr.Body.String(), `href="tel:108"`) {
		t.Fatalf("expected helpline link")
	}
}

func TestSettingsChangeLanguage(t *testing.T) {
	t.Parallel()

	f := moduletest.NewFixture(t)
	store := f.Onboard(t, "device-lang", i18n.English, appstate.RoleASHA)
	h := mountSettings(t, f)

	rr := moduletest.Serve(h, moduletest.Post("device-lang", routepath.SettingsLanguage, url.Values{"language": {"as"}}))
	moduletest.AssertRedirect(t, rr, routepath.Settings)
	moduletest.AssertFlash(t, rr, flashnotice.KindSuccess, "notices.languageChanged")
	if got := store.Language(); got != i18n.Assamese {
		t.Fatalf("Language() = %q, want %q", got, i18n.Assamese)
	}
	if got := store.Role(); got != appstate.RoleASHA {
		t.Fatalf("Role() = %q, want unchanged %q", got, appstate.RoleASHA)
	}

	page := moduletest.Serve(h, moduletest.Get("device-lang", routepath.Settings))
	if !strings.Contains(page.Body.String(), `lang="as"`) {
		t.Fatalf("expected page re-rendered in Assamese")
	}
}

func TestSettingsChangeRole(t *testing.T) {
	t.Parallel()

	f := moduletest.NewFixture(t)
	store := f.Onboard(t, "device-role", i18n.Hindi, appstate.RoleASHA)
	h := mountSettings(t, f)

	rr := moduletest.Serve(h, moduletest.Post("device-role", routepath.SettingsRole, url.Values{"role": {"Admin"}}))
	moduletest.AssertRedirect(t, rr, routepath.Settings)
	moduletest.AssertFlash(t, rr, flashnotice.KindSuccess, "notices.roleChanged")
	if got := store.Role(); got != appstate.RoleAdmin {
		t.Fatalf("Role() = %q, want %q", got, appstate.RoleAdmin)
	}
	if !store.Onboarded() {
		t.Fatal("expected device to stay onboarded")
	}
}

func TestSettingsRejectsUnknownSelections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		form   url.Values
		notice string
	}{
		{name: "unknown language", path: routepath.SettingsLanguage, form: url.Values{"language": {"fr"}}, notice: "notices.invalidLanguage"},
		{name: "missing language", path: routepath.SettingsLanguage, notice: "notices.invalidLanguage"},
		{name: "unknown role", path: routepath.SettingsRole, form: url.Values{"role": {"doctor"}}, notice: "notices.invalidRole"},
		{name: "blank role", path: routepath.SettingsRole, form: url.Values{"role": {" "}}, notice: "notices.invalidRole"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := moduletest.NewFixture(t)
			store := f.Onboard(t, "device-invalid", i18n.English, appstate.RoleCommunity)
			before := store.Snapshot()
			h := mountSettings(t, f)

			rr := moduletest.Serve(h, moduletest.Post("device-invalid", tc.path, tc.form))
			moduletest.AssertRedirect(t, rr, routepath.Settings)
			moduletest.AssertFlash(t, rr, flashnotice.KindError, tc.notice)
			if got := store.Snapshot(); got != before {
				t.Fatalf("state = %+v, want unchanged %+v", got, before)
			}
		})
	}
}

func TestSettingsDataActionsAcknowledge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		kind flashnotice.Kind
		key  string
	}{
		{name: "sync", path: routepath.SettingsSync, kind: flashnotice.KindInfo, key: "notices.syncQueued"},
		{name: "clear cache", path: routepath.SettingsClearCache, kind: flashnotice.KindSuccess, key: "notices.cacheCleared"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := moduletest.NewFixture(t)
			f.Onboard(t, "device-data", i18n.English, appstate.RoleASHA)
			h := mountSettings(t, f)

			rr := moduletest.Serve(h, moduletest.Post("device-data", tc.path, nil))
			moduletest.AssertRedirect(t, rr, routepath.Settings)
			moduletest.AssertFlash(t, rr, tc.kind, tc.key)
		})
	}
}

func TestSettingsResetClearsStateAndFlow(t *testing.T) {
	t.Parallel()

	f := moduletest.NewFixture(t)
	store := f.Onboard(t, "device-reset", i18n.Hindi, appstate.RoleAdmin)
	flows := &recordingFlows{}
	h := mountSettings(t, f, WithFlows(flows))

	rr := moduletest.Serve(h, moduletest.Post("device-reset", routepath.SettingsReset, nil))
	moduletest.AssertRedirect(t, rr, routepath.Root)

	want := appstate.State{Language: i18n.English, Role: appstate.RoleUnset, Onboarded: false}
	if got := store.Snapshot(); got != want {
		t.Fatalf("state = %+v, want %+v", got, want)
	}
	if !reflect.DeepEqual(flows.removed, []string{"device-reset"}) {
		t.Fatalf("removed flows = %v", flows.removed)
	}

	reloaded := f.Store(t, "device-reset")
	if reloaded.Onboarded() {
		t.Fatal("expected reset to be visible to later requests")
	}
}

func TestSettingsUnknownSubpathIsLocalized(t *testing.T) {
	t.Parallel()

	f := moduletest.NewFixture(t)
	f.Onboard(t, "device-404", i18n.Hindi, appstate.RoleCommunity)
	h := mountSettings(t, f)

	rr := moduletest.Serve(h, moduletest.Get("device-404", routepath.SettingsPrefix+"advanced"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), `lang="hi"`) {
		t.Fatalf("expected Hindi 404 page")
	}
}

func TestMountRequiresDependencies(t *testing.T) {
	t.Parallel()

	if _, err := New(module.Dependencies{}).Mount(); err == nil {
		t.Fatal("expected missing dependency error")
	}
}
