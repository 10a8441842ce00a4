package models

// AccessGrant records that a visitor passed the sign-up gate.
type AccessGrant struct {
	VisitorID  string `json:"visitorId"`
	Email      string `json:"email,omitempty"`
	Guest      bool   `json:"guest"`
	RememberMe bool   `json:"rememberMe"`
}

type AccessStatus struct {
	VisitorID  string `json:"visitorId"`
	HasAccess  bool   `json:"hasAccess"`
	Remembered bool   `json:"remembered"`
}
