package models

type OnboardingState string

const (
	OnboardingNotStarted OnboardingState = "not_started"
	OnboardingInProgress OnboardingState = "in_progress"
	OnboardingCompleted  OnboardingState = "completed"
	OnboardingSkipped    OnboardingState = "skipped"
)

// Onboarding tracks progress through a one-time setup flow. The reminder
// scheduler is gated on the setup flow so nothing is scheduled before first
// configuration.
type Onboarding struct {
	FlowKey string          `json:"flow_key"`
	Step    int             `json:"step"`
	Status  OnboardingState `json:"status"`
}

// Done reports whether the flow no longer gates anything.
func (o Onboarding) Done() bool {
	return o.Status == OnboardingCompleted || o.Status == OnboardingSkipped
}
