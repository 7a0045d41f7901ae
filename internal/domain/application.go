package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusDraft      ApplicationStatus = "draft"
	ApplicationStatusSubmitted  ApplicationStatus = "submitted"
	ApplicationStatusAccepted   ApplicationStatus = "accepted"
	ApplicationStatusWaitlisted ApplicationStatus = "waitlisted"
	ApplicationStatusConfirmed  ApplicationStatus = "confirmed"
)

// MatcherStatuses are the statuses whose holders may use the matcher and
// appear in the profile directory.
var MatcherStatuses = []ApplicationStatus{ApplicationStatusAccepted, ApplicationStatusConfirmed}

// AllStatuses lists every status in review order.
var AllStatuses = []ApplicationStatus{
	ApplicationStatusDraft,
	ApplicationStatusSubmitted,
	ApplicationStatusAccepted,
	ApplicationStatusWaitlisted,
	ApplicationStatusConfirmed,
}

func (s ApplicationStatus) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// CanAccessMatcher reports whether an applicant with this status is let
// into the matcher view.
func (s ApplicationStatus) CanAccessMatcher() bool {
	for _, allowed := range MatcherStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}

// Application is the per-user hackathon submission. Fields holds the open set
// of applicant-supplied answers keyed by their camelCase name.
type Application struct {
	UserID    string
	Status    ApplicationStatus
	Fields    map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Keys that belong to the record itself and can never come from a payload.
const (
	FieldUserID    = "userId"
	FieldStatus    = "status"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

var reservedFields = map[string]bool{
	FieldUserID:    true,
	FieldStatus:    true,
	FieldCreatedAt: true,
	FieldUpdatedAt: true,
}

func IsReservedField(name string) bool {
	return reservedFields[name]
}

// MarshalJSON flattens the stored fields next to the record columns, which is
// the shape clients of /api/db expect.
func (a Application) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(a.Fields)+4)
	for k, v := range a.Fields {
		out[k] = v
	}
	out[FieldUserID] = a.UserID
	out[FieldStatus] = a.Status
	out[FieldCreatedAt] = a.CreatedAt
	out[FieldUpdatedAt] = a.UpdatedAt
	return json.Marshal(out)
}

func (a *Application) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var app Application
	app.Fields = make(map[string]any)
	for k, v := range raw {
		var err error
		switch k {
		case FieldUserID:
			err = json.Unmarshal(v, &app.UserID)
		case FieldStatus:
			err = json.Unmarshal(v, &app.Status)
		case FieldCreatedAt:
			err = json.Unmarshal(v, &app.CreatedAt)
		case FieldUpdatedAt:
			err = json.Unmarshal(v, &app.UpdatedAt)
		default:
			var value any
			err = json.Unmarshal(v, &value)
			app.Fields[k] = value
		}
		if err != nil {
			return fmt.Errorf("application field %q: %w", k, err)
		}
	}
	*a = app
	return nil
}

// Profile is the read-only view of an application shown to peers in the matcher.
type Profile struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	WhyAttend           string `json:"whyAttend,omitempty"`
	ProjectExperience   string `json:"projectExperience,omitempty"`
	FuturePlans         string `json:"futurePlans,omitempty"`
	FunFact             string `json:"funFact,omitempty"`
	SkillLevel          string `json:"skillLevel,omitempty"`
	HackathonExperience string `json:"hackathonExperience,omitempty"`
}

// Stored field names the profile projection reads.
const (
	ProfileFieldName                = "fullName"
	ProfileFieldWhyAttend           = "whyAttend"
	ProfileFieldProjectExperience   = "projectExperience"
	ProfileFieldFuturePlans         = "futurePlans"
	ProfileFieldFunFact             = "funFact"
	ProfileFieldSkillLevel          = "skillLevel"
	ProfileFieldHackathonExperience = "hackathonExperience"
)

// ProfileFromApplication builds the display projection from a stored record.
func ProfileFromApplication(app *Application) Profile {
	str := func(key string) string {
		v, ok := app.Fields[key]
		if !ok || v == nil {
			return ""
		}
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}
	return Profile{
		ID:                  app.UserID,
		Name:                str(ProfileFieldName),
		WhyAttend:           str(ProfileFieldWhyAttend),
		ProjectExperience:   str(ProfileFieldProjectExperience),
		FuturePlans:         str(ProfileFieldFuturePlans),
		FunFact:             str(ProfileFieldFunFact),
		SkillLevel:          str(ProfileFieldSkillLevel),
		HackathonExperience: str(ProfileFieldHackathonExperience),
	}
}
