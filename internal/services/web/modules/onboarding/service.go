package onboarding

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/smarthealth/internal/health/onboarding"
)

const (
	// splashWaitLimit is the longest a request blocks for the splash to end
	// instead of rendering it with a refresh.
	splashWaitLimit = time.Second
	// awaitSlack covers scheduler latency past a known transition delay.
	awaitSlack = 2 * time.Second
)

type service struct {
	flows *onboarding.Registry
}

func newService(flows *onboarding.Registry) service {
	return service{flows: flows}
}

// flow returns the started flow for deviceID.
func (s service) flow(deviceID string, store onboarding.StateStore) *onboarding.Flow {
	return s.flows.Flow(deviceID, store)
}

func (s service) lookup(deviceID string) (*onboarding.Flow, bool) {
	return s.flows.Lookup(deviceID)
}

func (s service) finish(deviceID string) {
	s.flows.Remove(deviceID)
}

func (s service) selectionDelay() time.Duration {
	return s.flows.Timings().Selection
}

// await waits up to delay for flow to leave step from. Running out of time
// is not an error; the caller renders whatever step the flow is at.
func (s service) await(ctx context.Context, flow *onboarding.Flow, from onboarding.Step, delay time.Duration) (onboarding.Step, error) {
	ctx, cancel := context.WithTimeout(ctx, delay+awaitSlack)
	defer cancel()
	step, err := flow.Await(ctx, from)
	if errors.Is(err, context.DeadlineExceeded) {
		return step, nil
	}
	return step, err
}
