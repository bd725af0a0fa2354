package entity

import (
	"strings"
	"time"
)

// User represents a registered account.
type User struct {
	ID           string          `bson:"_id,omitempty" json:"id"`
	Username     string          `bson:"username" json:"username"`
	Email        string          `bson:"email" json:"email"`
	PasswordHash string          `bson:"password_hash,omitempty" json:"-"`
	FirstName    string          `bson:"first_name" json:"first_name"`
	LastName     string          `bson:"last_name" json:"last_name"`
	Gender       Gender          `bson:"gender" json:"gender"`
	ProfilePhoto string          `bson:"profile_photo" json:"profile_photo"`
	Role         UserRole        `bson:"role" json:"role"`
	Blocked      bool            `bson:"blocked" json:"blocked"`
	Deleted      bool            `bson:"deleted" json:"deleted"`
	DeletedAt    *time.Time      `bson:"deleted_at" json:"deleted_at"`
	LastLogin    *time.Time      `bson:"last_login" json:"last_login"`
	LastIP       string          `bson:"last_ip" json:"last_ip"`
	ActivityLog  []ActivityEntry `bson:"activity_log" json:"activity_log"`
	CreatedAt    time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `bson:"updated_at" json:"updated_at"`
}

// ActivityEntry is one item of a user's append-only activity log.
type ActivityEntry struct {
	Action    string    `bson:"action" json:"action"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

const ActivityLogin = "Login"

// Public returns a copy of the user without the password hash.
func (u User) Public() *User {
	u.PasswordHash = ""
	return &u
}

// Gender is the self-declared gender of a user.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func DefaultGender() Gender {
	return GenderOther
}

// Valid reports whether g is one of the known genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// NormalizeGender trims and lower-cases a declared gender.
func NormalizeGender(gender string) Gender {
	return Gender(strings.ToLower(strings.TrimSpace(gender)))
}

// NormalizeUsername trims and lower-cases a username.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
