package rememberaccess

import "deal-advisor-workers/internal/models"

type Input struct {
	VisitorID  string `json:"visitorId,omitempty"`
	Email      string `json:"email"`
	Guest      bool   `json:"guest,omitempty"`
	RememberMe bool   `json:"rememberMe"`
}

func (i *Input) toGrant() models.AccessGrant {
	return models.AccessGrant{
		VisitorID:  i.VisitorID,
		Email:      i.Email,
		Guest:      i.Guest,
		RememberMe: i.RememberMe,
	}
}

type Output struct {
	Access models.AccessStatus `json:"access"`
}
