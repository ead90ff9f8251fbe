// Package moduletest provides fixtures shared by web module tests: an
// in-memory device state registry, device-scoped requests, and HTML
// assertions over rendered pages.
package moduletest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/health/content"
	"github.com/louisbranch/smarthealth/internal/platform/i18n"
	"github.com/louisbranch/smarthealth/internal/platform/i18n/catalog"
	"github.com/louisbranch/smarthealth/internal/platform/requestctx"
	module "github.com/louisbranch/smarthealth/internal/services/web/module"
	flashnotice "github.com/louisbranch/smarthealth/internal/services/web/platform/flash"
	"github.com/louisbranch/smarthealth/internal/services/web/storage/memory"
	"golang.org/x/net/html"
)

// Morning is the fixed clock fixtures start at.
var Morning = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

// Fixture bundles module dependencies over in-memory storage.
type Fixture struct {
	Deps   module.Dependencies
	States *appstate.Registry
}

// NewFixture builds dependencies with the embedded catalog and content and
// a clock fixed at Morning.
func NewFixture(t testing.TB) Fixture {
	t.Helper()
	cat := catalog.MustLoadEmbedded()
	states := appstate.NewRegistry(memory.New(), cat)
	return Fixture{
		Deps: module.Dependencies{
			States:  states,
			Catalog: cat,
			Content: content.MustLoadEmbedded(),
			Now:     func() time.Time { return Morning },
		},
		States: states,
	}
}

// At returns a copy of f whose clock is fixed at now.
func (f Fixture) At(now time.Time) Fixture {
	f.Deps.Now = func() time.Time { return now }
	return f
}

// Store returns the state store for deviceID.
func (f Fixture) Store(t testing.TB, deviceID string) *appstate.Store {
	t.Helper()
	store, err := f.States.Store(context.Background(), deviceID)
	if err != nil {
		t.Fatalf("Store(%q) error = %v", deviceID, err)
	}
	return store
}

// Onboard stores a finished onboarding for deviceID.
func (f Fixture) Onboard(t testing.TB, deviceID string, lang i18n.Language, role appstate.Role) *appstate.Store {
	t.Helper()
	store := f.Store(t, deviceID)
	ctx := context.Background()
	if err := store.SetLanguage(ctx, lang); err != nil {
		t.Fatalf("SetLanguage() error = %v", err)
	}
	if err := store.SetRole(ctx, role); err != nil {
		t.Fatalf("SetRole() error = %v", err)
	}
	if err := store.CompleteOnboarding(ctx); err != nil {
		t.Fatalf("CompleteOnboarding() error = %v", err)
	}
	return store
}

// Get builds a GET request made by deviceID.
func Get(deviceID, target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return req.WithContext(requestctx.WithDeviceID(req.Context(), deviceID))
}

// Post builds a form POST made by deviceID.
func Post(deviceID, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req.WithContext(requestctx.WithDeviceID(req.Context(), deviceID))
}

// Serve runs req through h.
func Serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// AssertRedirect fails unless rr is a see-other redirect to want.
func AssertRedirect(t testing.TB, rr *httptest.ResponseRecorder, want string) {
	t.Helper()
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d (body %q)", rr.Code, http.StatusSeeOther, rr.Body.String())
	}
	if got := rr.Header().Get("Location"); got != want {
		t.Fatalf("Location = %q, want %q", got, want)
	}
}

// Flash decodes the notice rr queued for the next page.
func Flash(rr *httptest.ResponseRecorder) (flashnotice.Notice, bool) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == flashnotice.CookieName && cookie.MaxAge >= 0 {
			req.AddCookie(cookie)
		}
	}
	return flashnotice.ReadAndClear(nil, req)
}

// AssertFlash fails unless rr queued a notice of kind with key.
func AssertFlash(t testing.TB, rr *httptest.ResponseRecorder, kind flashnotice.Kind, key string) {
	t.Helper()
	notice, ok := Flash(rr)
	if !ok {
		t.Fatalf("expected %s notice %q, got none", kind, key)
	}
	if notice.Kind != kind || notice.Key != key {
		t.Fatalf("notice = %+v, want %s %q", notice, kind, key)
	}
}

// Parse parses an HTML response body.
func Parse(t testing.TB, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// FindAll returns every element under n that match accepts, in document order.
func FindAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && match(node) {
			out = append(out, node)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return out
}

// HasAttr matches elements carrying name, with value when value is not
// empty.
func HasAttr(name, value string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		got, ok := Attr(n, name)
		return ok && (value == "" || got == value)
	}
}

// Attr returns the value of attribute name.
func Attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// AttrValues returns attribute name of every element under n that has it.
func AttrValues(n *html.Node, name string) []string {
	var out []string
	for _, node := range FindAll(n, HasAttr(name, "")) {
		value, _ := Attr(node, name)
		out = append(out, value)
	}
	return out
}

// Text returns the collapsed text content of n.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
			b.WriteByte(' ')
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
