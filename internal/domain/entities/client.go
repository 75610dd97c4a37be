package entities

import "time"

// ContactMethod is how the client prefers to be reached during review.

type ContactMethod string

const (
	ContactMethodEmail    ContactMethod = "EMAIL"
	ContactMethodPhone    ContactMethod = "PHONE"
	ContactMethodWhatsApp ContactMethod = "WHATSAPP"
)

// ContactTime is the client's preferred contact window.

type ContactTime string

const (
	ContactTimeMorning   ContactTime = "MORNING"
	ContactTimeAfternoon ContactTime = "AFTERNOON"
	ContactTimeEvening   ContactTime = "EVENING"
	ContactTimeFlexible  ContactTime = "FLEXIBLE"
)

// Defaults applied when a first submission omits the optional profile fields.
const (
	DefaultCountryCode                 = "+62"
	DefaultContactMethod ContactMethod = ContactMethodEmail
	DefaultContactTime   ContactTime   = ContactTimeFlexible
)

// Client is the requester identity, deduplicated by email.
//
// Domain notes:
//   - Email is the natural key: one Client row per distinct email, owning
//     any number of Projects.
//   - Profile fields are written once on the first submission and never
//     updated by the intake workflow ("first submission wins"). Repeat
//     submissions with a different name/phone keep the original profile.
//
// Storage model (DynamoDB):
//   - PK: email (conditional put enforces uniqueness)

type Client struct {
	ID             string        `json:"id"`
	Email          string        `json:"email"`
	FullName       string        `json:"full_name"`
	Phone          string        `json:"phone"`
	CountryCode    string        `json:"country_code"`
	CompanyName    string        `json:"company_name,omitempty"`
	CompanyWebsite string        `json:"company_website,omitempty"`
	ContactMethod  ContactMethod `json:"contact_method"`
	ContactTime    ContactTime   `json:"contact_time"`
	ReferralSource string        `json:"referral_source,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}
