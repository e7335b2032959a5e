package models

import "time"

type Relationship string

const (
	RelationshipFamily       Relationship = "family"
	RelationshipFriend       Relationship = "friend"
	RelationshipColleague    Relationship = "colleague"
	RelationshipAcquaintance Relationship = "acquaintance"
)

// ContactFrequency is how often the user wants to be in touch with a connection.
type ContactFrequency string

const (
	ContactDaily     ContactFrequency = "daily"
	ContactWeekly    ContactFrequency = "weekly"
	ContactMonthly   ContactFrequency = "monthly"
	ContactQuarterly ContactFrequency = "quarterly"
	ContactYearly    ContactFrequency = "yearly"
)

// ThresholdDays is the number of whole elapsed days after which a connection
// is due again. The buckets are fixed: a month is always 30 days.
// ok is false for an unknown frequency.
func (f ContactFrequency) ThresholdDays() (days int, ok bool) {
	switch f {
	case ContactDaily:
		return 1, true
	case ContactWeekly:
		return 7, true
	case ContactMonthly:
		return 30, true
	case ContactQuarterly:
		return 90, true
	case ContactYearly:
		return 365, true
	}
	return 0, false
}

type SocialConnection struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Relationship     Relationship     `json:"relationship"`
	LastContact      *time.Time       `json:"last_contact,omitempty"`
	ContactFrequency ContactFrequency `json:"contact_frequency"`
	Notes            string           `json:"notes,omitempty"`
	Avatar           string           `json:"avatar,omitempty"`
}

type ConnectionInput struct {
	Name             string           `json:"name"`
	Relationship     Relationship     `json:"relationship"`
	LastContact      *time.Time       `json:"last_contact,omitempty"`
	ContactFrequency ContactFrequency `json:"contact_frequency"`
	Notes            string           `json:"notes,omitempty"`
	Avatar           string           `json:"avatar,omitempty"`
}

type ConnectionPatch struct {
	Name             *string           `json:"name,omitempty"`
	Relationship     *Relationship     `json:"relationship,omitempty"`
	LastContact      *time.Time        `json:"last_contact,omitempty"`
	ContactFrequency *ContactFrequency `json:"contact_frequency,omitempty"`
	Notes            *string           `json:"notes,omitempty"`
	Avatar           *string           `json:"avatar,omitempty"`
}

func (p ConnectionPatch) Apply(c *SocialConnection) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Relationship != nil {
		c.Relationship = *p.Relationship
	}
	if p.LastContact != nil {
		t := *p.LastContact
		c.LastContact = &t
	}
	if p.ContactFrequency != nil {
		c.ContactFrequency = *p.ContactFrequency
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.Avatar != nil {
		c.Avatar = *p.Avatar
	}
}

// DueForContact reports whether c should be contacted at now: never contacted,
// or at least ThresholdDays whole days since the last contact.
func (c SocialConnection) DueForContact(now time.Time) bool {
	if c.LastContact == nil || c.LastContact.IsZero() {
		return true
	}
	threshold, ok := c.ContactFrequency.ThresholdDays()
	if !ok {
		return false
	}
	elapsed := int(now.Sub(*c.LastContact) / (24 * time.Hour))
	return elapsed >= threshold
}

func (c SocialConnection) Clone() SocialConnection {
	if c.LastContact != nil {
		t := *c.LastContact
		c.LastContact = &t
	}
	return c
}
