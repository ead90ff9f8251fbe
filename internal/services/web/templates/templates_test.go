package templates

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/health/content"
	"github.com/louisbranch/smarthealth/internal/health/dataentry"
	"github.com/louisbranch/smarthealth/internal/platform/i18n"
	"golang.org/x/net/html"
)

type mapLocalizer map[string]string

func (m mapLocalizer) Translate(path string, fallback string) string {
	if value, ok := m[path]; ok {
		return value
	}
	return fallback
}

func renderNode(t *testing.T, ctx context.Context, c templ.Component) (*html.Node, string) {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc, err := html.Parse(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc, buf.String()
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
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

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(name string, value string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		got, ok := attr(n, name)
		return ok && (value == "" || got == value)
	}
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

type marker string

func (m marker) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, `<div id="child">`+string(m)+`</div>`)
	return err
}

func TestAppLayoutRendersShellAroundChildren(t *testing.T) {
	t.Parallel()

	loc := mapLocalizer{"navigation.home": "होम", "app.name": "स्मार्ट हेल्थ"}
	page := PageContext{
		Title:       "Reports",
		Lang:        i18n.Hindi,
		Loc:         loc,
		Role:        appstate.RoleASHA,
		CurrentPath: "/reports",
		ShowNav:     true,
		Toast:       &Toast{Kind: "success", Title: "<b>Saved</b>", Body: "ok"},
	}
	ctx := templ.WithChildren(context.Background(), marker("body"))
	doc, raw := renderNode(t, ctx, AppLayout(page))

	if htmlNodes := findAll(doc, func(n *html.Node) bool { return n.Data == "html" }); len(htmlNodes) != 1 {
		t.Fatalf("html elements = %d", len(htmlNodes))
	} else if lang, _ := attr(htmlNodes[0], "lang"); lang != "hi" {
		t.Fatalf("lang = %q, want %q", lang, "hi")
	}
	if len(findAll(doc, hasAttr("id", "child"))) != 1 {
		t.Fatal("children missing from main")
	}
	items := findAll(doc, hasAttr("data-destination", ""))
	if len(items) != 5 {
		t.Fatalf("nav items = %d, want 5", len(items))
	}
	if got := textOf(items[0]); got != "होम" {
		t.Fatalf("home label = %q, want %q", got, "होम")
	}
	current := findAll(doc, hasAttr("aria-current", "page"))
	if len(current) != 1 {
		t.Fatalf("active nav items = %d, want 1", len(current))
	}
	if dest, _ := attr(current[0], "data-destination"); dest != "reports" {
		t.Fatalf("active destination = %q, want reports", dest)
	}
	if strings.Contains(raw, "<b>Saved</b>") {
		t.Fatal("toast title was not escaped")
	}
	if len(findAll(doc, hasAttr("data-toast", "success"))) != 1 {
		t.Fatal("toast missing")
	}
}

func TestAppLayoutOnboardingHasNoNavAndRefreshes(t *testing.T) {
	t.Parallel()

	page := PageContext{Lang: i18n.English, RefreshAfter: 2100 * time.Millisecond}
	doc, _ := renderNode(t, context.Background(), AppLayout(page))
	if len(findAll(doc, func(n *html.Node) bool { return n.Data == "nav" })) != 0 {
		t.Fatal("onboarding page should not render navigation")
	}
	refresh := findAll(doc, hasAttr("http-equiv", "refresh"))
	if len(refresh) != 1 {
		t.Fatal("refresh meta missing")
	}
	if got, _ := attr(refresh[0], "content"); got != "3" {
		t.Fatalf("refresh content = %q, want %q", got, "3")
	}
}

func TestMainContentRendersOnlyMain(t *testing.T) {
	t.Parallel()

	ctx := templ.WithChildren(context.Background(), marker("x"))
	_, raw := renderNode(t, ctx, MainContent())
	if strings.Contains(strings.ToLower(raw), "<html") {
		t.Fatalf("fragment includes document wrapper: %q", raw)
	}
	if !strings.HasPrefix(raw, `<main id="main"`) {
		t.Fatalf("fragment = %q", raw)
	}
}

func TestOnboardingChoicesCoverClosedSets(t *testing.T) {
	t.Parallel()

	doc, _ := renderNode(t, context.Background(), LanguagePage(nil, "/onboarding/language", i18n.English))
	buttons := findAll(doc, hasAttr("name", FieldLanguage))
	if len(buttons) != len(i18n.AllLanguages()) {
		t.Fatalf("language buttons = %d", len(buttons))
	}
	for idx, lang := range i18n.AllLanguages() {
		if got, _ := attr(buttons[idx], "value"); got != string(lang) {
			t.Fatalf("button[%d] = %q, want %q", idx, got, lang)
		}
	}

	doc, _ = renderNode(t, context.Background(), RolePage(nil, "/onboarding/role"))
	buttons = findAll(doc, hasAttr("name", FieldRole))
	if len(buttons) != len(appstate.AllRoles()) {
		t.Fatalf("role buttons = %d", len(buttons))
	}
}

func TestDataEntryPageKeepsSubmittedValues(t *testing.T) {
	t.Parallel()

	options := content.MustLoadEmbedded().DataEntry
	view := DataEntryView{
		Action:     "/data-entry",
		SyncAction: "/data-entry/sync",
		Options:    options,
		Form:       dataentry.PatientForm{Name: "Asha", Gender: "female", Symptoms: []string{"fever"}, WaterSource: "muddy"},
	}
	doc, _ := renderNode(t, context.Background(), DataEntryPage(nil, view))

	names := findAll(doc, hasAttr("name", dataentry.FieldName))
	if got, _ := attr(names[0], "value"); got != "Asha" {
		t.Fatalf("name value = %q", got)
	}
	selected := findAll(doc, hasAttr("selected", ""))
	if len(selected) != 1 {
		t.Fatalf("selected options = %d, want 1", len(selected))
	}
	if got, _ := attr(selected[0], "value"); got != "female" {
		t.Fatalf("selected gender = %q", got)
	}
	checked := findAll(doc, hasAttr("checked", ""))
	if len(checked) != 2 {
		t.Fatalf("checked inputs = %d, want 2", len(checked))
	}
}

func TestAlertsPageStatusButtonIsOptional(t *testing.T) {
	t.Parallel()

	alerts := content.MustLoadEmbedded().Alerts
	view := AlertsView{Counts: alerts.Counts, Items: alerts.Items, Helpline: "108"}

	doc, _ := renderNode(t, context.Background(), AlertsPage(nil, view))
	if forms := findAll(doc, func(n *html.Node) bool { return n.Data == "form" }); len(forms) != 0 {
		t.Fatalf("status forms = %d, want 0", len(forms))
	}

	view.StatusAction = func(id string) string { return "/alerts/" + id + "/status" }
	doc, _ = renderNode(t, context.Background(), AlertsPage(nil, view))
	forms := findAll(doc, func(n *html.Node) bool { return n.Data == "form" })
	if len(forms) != len(alerts.Items) {
		t.Fatalf("status forms = %d, want %d", len(forms), len(alerts.Items))
	}
	if got, _ := attr(forms[0], "action"); got != "/alerts/1/status" {
		t.Fatalf("action = %q", got)
	}
}

func TestReportsPageFormatsNumbers(t *testing.T) {
	t.Parallel()

	reports := content.MustLoadEmbedded().Reports
	view := ReportsView{
		Patients:     content.PatientTotals{Total: 1560, ThisWeek: 23, Trend: "+12%"},
		Water:        reports.Water,
		Symptoms:     reports.Symptoms,
		ExportAction: "/reports/export",
		Printer:      i18n.English.Printer(),
	}
	doc, _ := renderNode(t, context.Background(), ReportsPage(nil, view))
	total := findAll(doc, hasAttr("data-value", "patients-total"))
	if len(total) != 1 || textOf(total[0]) != "1,560" {
		t.Fatalf("patients total = %v", total)
	}
	if rows := findAll(doc, hasAttr("data-symptom", "")); len(rows) != len(reports.Symptoms) {
		t.Fatalf("symptom rows = %d", len(rows))
	}
}

func TestErrorStateNormalisesStatus(t *testing.T) {
	t.Parallel()

	doc, _ := renderNode(t, context.Background(), ErrorState(nil, 404, "/"))
	if got := textOf(findAll(doc, func(n *html.Node) bool { return n.Data == "h1" })[0]); got != "Page Not Found" {
		t.Fatalf("404 heading = %q", got)
	}
	doc, _ = renderNode(t, context.Background(), ErrorState(nil, 503, "/"))
	if got := textOf(findAll(doc, func(n *html.Node) bool { return n.Data == "h1" })[0]); got != "Something Went Wrong" {
		t.Fatalf("5xx heading = %q", got)
	}
}
