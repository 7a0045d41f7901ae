package matcher

import (
	"context"

	"hackportal-backend/internal/domain"
	"hackportal-backend/internal/logger"
)

// HomePath is where callers are sent when the gate denies entry.
const HomePath = "/"

// ApplicationFetcher loads the caller's own application; nil means none exists.
type ApplicationFetcher interface {
	GetApplication(ctx context.Context) (*domain.Application, error)
}

type Verdict struct {
	Granted    bool
	RedirectTo string
}

// Gate guards the matcher view. It runs once per view activation.
type Gate struct {
	apps ApplicationFetcher
}

func NewGate(apps ApplicationFetcher) *Gate {
	return &Gate{apps: apps}
}

// Check grants access iff the caller's application is accepted or confirmed.
// A failed fetch and a missing or ineligible application all redirect home.
func (g *Gate) Check(ctx context.Context) Verdict {
	app, err := g.apps.GetApplication(ctx)
	if err != nil {
		logger.Warn("Matcher access check failed", "error", err)
		return Verdict{RedirectTo: HomePath}
	}
	if app == nil || !app.Status.CanAccessMatcher() {
		return Verdict{RedirectTo: HomePath}
	}
	return Verdict{Granted: true}
}
