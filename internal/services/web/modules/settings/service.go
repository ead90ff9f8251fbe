package settings

import (
	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/health/content"
	"github.com/louisbranch/smarthealth/internal/platform/i18n"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/smarthealth/internal/services/web/templates"
)

type service struct {
	content *content.Content
	flows   FlowRemover
}

func newService(c *content.Content, flows FlowRemover) service {
	return service{content: c, flows: flows}
}

func (s service) view(lang i18n.Language, role appstate.Role) webtemplates.SettingsView {
	return webtemplates.SettingsView{
		Language: lang,
		Role:     role,
		Settings: s.content.Settings,
		Actions: webtemplates.SettingsActions{
			Language:   routepath.SettingsLanguage,
			Role:       routepath.SettingsRole,
			Sync:       routepath.SettingsSync,
			ClearCache: routepath.SettingsClearCache,
			Reset:      routepath.SettingsReset,
		},
	}
}

// forgetFlow drops any onboarding flow left for deviceID so a reset device
// starts again from the splash.
func (s service) forgetFlow(deviceID string) {
	if s.flows == nil {
		return
	}
	s.flows.Remove(deviceID)
}
