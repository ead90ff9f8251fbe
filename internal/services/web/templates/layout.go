package templates

import (
	"context"
	"io"
	"math"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/smarthealth/internal/health/navigation"
	"github.com/louisbranch/smarthealth/internal/platform/icons"
)

// MainID is the element id of the swappable page body.
const MainID = "main"

// AppLayout renders the full document around the children in ctx.
func AppLayout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		appName := T(page.Loc, "app.name", "Smart Health")
		title := appName
		if page.Title != "" {
			title = page.Title + " · " + appName
		}

		m.raw("<!doctype html>")
		m.open("html", "lang", page.lang().Tag().String())
		m.raw("<head>")
		m.raw(`<meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		if page.RefreshAfter > 0 {
			seconds := int(math.Ceil(page.RefreshAfter.Seconds()))
			m.open("meta", "http-equiv", "refresh", "content", strconv.Itoa(seconds))
		}
		m.element("title", title)
		m.raw(`<link rel="stylesheet" href="/static/app.css">`)
		m.raw(`<script src="/static/app.js" defer></script>`)
		m.raw("</head>")

		m.open("body", "class", classes("app", onboardingClass(page)))
		m.raw(icons.LucideSprite())
		if page.ShowNav {
			m.open("header", "class", "app-header")
			m.open("div", "class", "app-brand")
			m.icon(icons.IDHeart, "app-brand-icon")
			m.element("span", appName)
			m.close("div")
			m.element("span", T(page.Loc, page.Role.LabelKey(), page.Role.FallbackLabel()), "class", "app-role")
			m.close("header")
		}
		m.component(ctx, MainContent())
		if page.ShowNav {
			m.component(ctx, BottomNav(page))
		}
		if page.Toast != nil {
			m.component(ctx, ToastView(*page.Toast))
		}
		m.raw("</body></html>")
		return m.err
	})
}

func onboardingClass(page PageContext) string {
	if page.ShowNav {
		return ""
	}
	return "app-onboarding"
}

// MainContent renders only the swappable main element, for HTMX requests.
func MainContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.open("main", "id", MainID, "class", "app-main")
		m.children(ctx)
		m.close("main")
		return m.err
	})
}

// BottomNav renders the role's navigation bar.
func BottomNav(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		active, _ := navigation.ActiveFor(page.CurrentPath)
		m.open("nav", "class", "bottom-nav", "aria-label", T(page.Loc, "navigation.home", "Home"))
		for _, item := range navigation.Items(page.Role) {
			attrs := []string{"href", item.Path, "class", "nav-item", "data-destination", string(item.Destination)}
			if item.Destination == active {
				attrs = []string{"href", item.Path, "class", "nav-item nav-item-active", "data-destination", string(item.Destination), "aria-current", "page"}
			}
			m.open("a", attrs...)
			m.icon(item.Icon, "")
			m.element("span", item.Label(translateFunc(page.Loc)))
			m.close("a")
		}
		m.close("nav")
		return m.err
	})
}

// ToastView renders a dismissible notice.
func ToastView(toast Toast) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		kind := toast.Kind
		if kind == "" {
			kind = "info"
		}
		m.open("div", "class", "toast toast-"+kind, "role", "status", "data-toast", kind)
		m.element("strong", toast.Title, "class", "toast-title")
		if toast.Body != "" {
			m.element("p", toast.Body, "class", "toast-body")
		}
		m.close("div")
		return m.err
	})
}

func translateFunc(loc Localizer) func(string, string) string {
	if loc == nil {
		return nil
	}
	return loc.Translate
}
