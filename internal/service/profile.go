package service

import (
	"context"
	"fmt"

	"hackportal-backend/internal/domain"
	"hackportal-backend/internal/repository"
)

type profileService struct {
	appRepo repository.ApplicationRepository
}

func NewProfileService(appRepo repository.ApplicationRepository) ProfileService {
	return &profileService{appRepo: appRepo}
}

// ListEligibleProfiles returns every accepted or confirmed applicant except
// the caller, unpaginated and in store order.
func (s *profileService) ListEligibleProfiles(ctx context.Context, callerID string) ([]domain.Profile, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}

	profiles, err := s.appRepo.ListProfiles(ctx, domain.MatcherStatuses, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	// The caller never sees their own card.
	eligible := make([]domain.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.ID != callerID {
			eligible = append(eligible, p)
		}
	}
	return eligible, nil
}
