package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/smarthealth/internal/services/web/module"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/devicecookie"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/httpx"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
)

const defaultOnboardingPath = routepath.Root

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	// Onboarded reports whether the requesting device finished onboarding.
	// Screen modules redirect to the onboarding flow until it does.
	Onboarded           func(*http.Request) bool
	PublicModules       []module.Module
	ScreenModules       []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose builds a root HTTP handler from module groups.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	if input.Onboarded == nil {
		input.Onboarded = func(*http.Request) bool { return true }
	}
	seen := make(map[string]string)
	sameOrigin := requireDeviceSameOrigin(input.RequestSchemePolicy)

	for _, feature := range input.PublicModules {
		if feature == nil {
			return nil, fmt.Errorf("public module is nil")
		}
		if err := mountPublicModule(root, feature, seen, sameOrigin); err != nil {
			return nil, err
		}
	}

	for _, feature := range input.ScreenModules {
		if feature == nil {
			return nil, fmt.Errorf("screen module is nil")
		}
		if err := mountScreenModule(root, feature, seen, wrapScreenModule(input.Onboarded, sameOrigin)); err != nil {
			return nil, err
		}
	}

	return root, nil
}

func mountModule(
	root *http.ServeMux,
	feature module.Module,
	mount module.Mount,
	prefix string,
	seen map[string]string,
	wrap func(http.Handler) http.Handler,
) error {
	if root == nil || feature == nil {
		return nil
	}
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()

	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}
	root.Handle(prefix, handler)
	return nil
}

func mountPublicModule(root *http.ServeMux, feature module.Module, seen map[string]string, wrap func(http.Handler) http.Handler) error {
	mount, prefix, err := resolveMount(feature)
	if err != nil {
		return err
	}
	if isScreenPrefix(prefix) {
		return fmt.Errorf("module %q has screen prefix %q in public group", feature.ID(), prefix)
	}
	return mountModule(root, feature, mount, prefix, seen, wrap)
}

func mountScreenModule(root *http.ServeMux, feature module.Module, seen map[string]string, wrap func(http.Handler) http.Handler) error {
	mount, prefix, err := resolveMount(feature)
	if err != nil {
		return err
	}
	if !isScreenPrefix(prefix) {
		return fmt.Errorf("module %q must not mount at public prefix %q", feature.ID(), prefix)
	}
	if err := mountModule(root, feature, mount, prefix, seen, wrap); err != nil {
		return err
	}
	if alias := slashlessPrefixAlias(prefix); alias != "" {
		if err := mountModule(root, feature, mount, alias, seen, wrap); err != nil {
			return err
		}
	}
	return nil
}

// isScreenPrefix reports whether prefix belongs to the role screens rather
// than the root catch-all or the onboarding flow.
func isScreenPrefix(prefix string) bool {
	return prefix != routepath.Root && !strings.HasPrefix(prefix, routepath.OnboardingPrefix)
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	if feature == nil {
		return module.Mount{}, "", fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := validatePrefix(mount.Prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, mount.Prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

func slashlessPrefixAlias(prefix string) string {
	if !isScreenPrefix(prefix) || !strings.HasSuffix(prefix, "/") {
		return ""
	}
	return strings.TrimSuffix(prefix, "/")
}

func requireOnboarded(onboarded func(*http.Request) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			return http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !onboarded(r) {
				httpx.WriteRedirect(w, r, defaultOnboardingPath)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func wrapScreenModule(onboarded func(*http.Request) bool, sameOrigin func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	onboardedWrap := requireOnboarded(onboarded)
	return func(next http.Handler) http.Handler {
		return sameOrigin(onboardedWrap(next))
	}
}

// requireDeviceSameOrigin rejects state-changing requests that carry the
// device cookie but come from another origin.
func requireDeviceSameOrigin(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) || !hasDeviceCookie(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !requestmeta.SameOrigin(r, policy) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func hasDeviceCookie(r *http.Request) bool {
	cookie, err := r.Cookie(devicecookie.Name)
	return err == nil && strings.TrimSpace(cookie.Value) != ""
}
