package awareness

import "github.com/louisbranch/smarthealth/internal/health/content"

type service struct {
	content *content.Content
}

func newService(c *content.Content) service {
	return service{content: c}
}

// topics returns the tips shown to every role.
func (s service) topics() content.Awareness {
	return s.content.Awareness
}
