package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSocialConnection_DueForContact(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)
	ago := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	testcases := []struct {
		name string
		c    SocialConnection
		want bool
	}{
		{name: "never contacted", c: SocialConnection{ContactFrequency: ContactYearly}, want: true},
		{name: "daily after 23 hours", c: SocialConnection{ContactFrequency: ContactDaily, LastContact: ago(23 * time.Hour)}},
		{name: "daily after 24 hours", c: SocialConnection{ContactFrequency: ContactDaily, LastContact: ago(24 * time.Hour)}, want: true},
		{name: "weekly after 6 days", c: SocialConnection{ContactFrequency: ContactWeekly, LastContact: ago(6 * 24 * time.Hour)}},
		{name: "weekly after 7 days", c: SocialConnection{ContactFrequency: ContactWeekly, LastContact: ago(7 * 24 * time.Hour)}, want: true},
		{name: "monthly after 29.9 days", c: SocialConnection{ContactFrequency: ContactMonthly, LastContact: ago(30*24*time.Hour - time.Hour)}},
		{name: "monthly after 30 days", c: SocialConnection{ContactFrequency: ContactMonthly, LastContact: ago(30 * 24 * time.Hour)}, want: true},
		{name: "quarterly after 90 days", c: SocialConnection{ContactFrequency: ContactQuarterly, LastContact: ago(90 * 24 * time.Hour)}, want: true},
		{name: "yearly after 364 days", c: SocialConnection{ContactFrequency: ContactYearly, LastContact: ago(364 * 24 * time.Hour)}},
		{name: "unknown frequency", c: SocialConnection{ContactFrequency: "hourly", LastContact: ago(1000 * 24 * time.Hour)}},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.DueForContact(now))
		})
	}
}
