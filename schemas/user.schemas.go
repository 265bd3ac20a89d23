package schemas

import "time"

// DefaultImageURL is assigned to identities that never uploaded an avatar
const DefaultImageURL = "https://res.cloudinary.com/dx2vel6vy/image/upload/v1710573655/default_uv0cmg.png"

// Titles is the closed category enumeration for identity titles
var Titles = []string{
	"Data Scientist",
	"Full Stack Developer",
	"Frontend Developer",
	"Backend Developer",
	"Mobile App Developer",
	"DevOps Engineer",
	"UI/UX Designer",
	"QA",
	"Cloud Engineer",
	"Other",
}

// ValidTitle reports whether title is part of the closed enumeration
func ValidTitle(title string) bool {
	for _, t := range Titles {
		if t == title {
			return true
		}
	}
	return false
}

// Identity struct is the stored user record
type Identity struct {
	ID                      string    `bson:"_id"`
	Name                    string    `bson:"name"`
	Email                   string    `bson:"email"`
	PasswordHash            string    `bson:"password_hash"`
	Title                   string    `bson:"title"`
	ImageURL                string    `bson:"image_url"`
	ProgrammingLanguages    []string  `bson:"programming_languages"`
	Frameworks              []string  `bson:"frameworks"`
	Libraries               []string  `bson:"libraries"`
	Hobbies                 []string  `bson:"hobbies"`
	ParticipatedInHackathon bool      `bson:"participated_in_hackathon"`
	Role                    string    `bson:"role"`
	Phone                   string    `bson:"phone"`
	PhoneVerified           bool      `bson:"phone_verified"`
	RejectedUsers           []string  `bson:"rejected_users"`
	PasswordChangedAt       time.Time `bson:"password_changed_at"`
	Active                  bool      `bson:"active"`
	Created                 time.Time `bson:"created"`
}

// Rejected reports whether id is in the identity's rejected set
func (i *Identity) Rejected(id string) bool {
	for _, r := range i.RejectedUsers {
		if r == id {
			return true
		}
	}
	return false
}

// PublicIdentitySchema is the password-free projection of an identity
type PublicIdentitySchema struct {
	UserID                  string
	Name                    string
	Email                   string
	ImageURL                string
	Title                   string
	ProgrammingLanguages    []string
	Frameworks              []string
	Libraries               []string
	Hobbies                 []string
	ParticipatedInHackathon bool
}

// PublicIdentity projects an identity without its sensitive fields
func PublicIdentity(i *Identity) PublicIdentitySchema {
	return PublicIdentitySchema{
		UserID:                  i.ID,
		Name:                    i.Name,
		Email:                   i.Email,
		ImageURL:                i.ImageURL,
		Title:                   i.Title,
		ProgrammingLanguages:    i.ProgrammingLanguages,
		Frameworks:              i.Frameworks,
		Libraries:               i.Libraries,
		Hobbies:                 i.Hobbies,
		ParticipatedInHackathon: i.ParticipatedInHackathon,
	}
}

// UpdateProfileSchema struct
type UpdateProfileSchema struct {
	Name  string `validate:"max=100"`
	Email string `validate:"omitempty,email,max=1000"`
}
