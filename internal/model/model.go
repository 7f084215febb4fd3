package model

import (
	"bytes"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Year is the participant's year of study. Forms send it either as a string
// ("2nd") or a bare number (2), so it unmarshals from both and is stored as
// the string form.
type Year string

func (y *Year) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*y = Year(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*y = Year(n.String())
	return nil
}

func (y Year) String() string { return string(y) }

type Participant struct {
	Name           string `bson:"name" json:"name"`
	Email          string `bson:"email" json:"email"`
	RegistrationNo string `bson:"registrationNo" json:"registrationNo"`
	PhoneNo        string `bson:"phoneNo" json:"phoneNo"`
	Section        string `bson:"section" json:"section"`
	Year           Year   `bson:"year" json:"year"`
	Img            string `bson:"img,omitempty" json:"img,omitempty"`

	// Flat fields the sports form sends inside its single participant entry.
	Gender     string `bson:"-" json:"gender,omitempty"`
	SportName  string `bson:"-" json:"sportName,omitempty"`
	Department string `bson:"-" json:"department,omitempty"`
	TeamName   string `bson:"-" json:"teamName,omitempty"`
	Role       string `bson:"-" json:"role,omitempty"`
}

type CodingChallenge struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventName    string             `bson:"eventName" json:"eventName"`
	Participants []Participant      `bson:"participants" json:"participants"`
	RegisteredAt time.Time          `bson:"registeredAt" json:"registeredAt"`
}

type CodeHunt struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventName    string             `bson:"eventName" json:"eventName"`
	Participants []Participant      `bson:"participants" json:"participants"`
	TeamName     string             `bson:"teamName" json:"teamName"`
	RegisteredAt time.Time          `bson:"registeredAt" json:"registeredAt"`
}

type PosterPresentation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventName    string             `bson:"eventName" json:"eventName"`
	Participants []Participant      `bson:"participants" json:"participants"`
	Topic        string             `bson:"topic" json:"topic"`
	RegisteredAt time.Time          `bson:"registeredAt" json:"registeredAt"`
}

type TechnicalQuiz struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventName    string             `bson:"eventName" json:"eventName"`
	Participants []Participant      `bson:"participants" json:"participants"`
	TeamName     string             `bson:"teamName" json:"teamName"`
	RegisteredAt time.Time          `bson:"registeredAt" json:"registeredAt"`
}

// Sports registrations are flat: one participant's fields plus the sport
// details, no nested participant list.
type Sports struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventName      string             `bson:"eventName" json:"eventName"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	RegistrationNo string             `bson:"registrationNo" json:"registrationNo"`
	Gender         string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Section        string             `bson:"section" json:"section"`
	SportName      string             `bson:"sportName" json:"sportName"`
	Year           Year               `bson:"year" json:"year"`
	Department     string             `bson:"department" json:"department"`
	TeamName       string             `bson:"teamName" json:"teamName"`
	Role           string             `bson:"role" json:"role"`
	PhoneNo        string             `bson:"phoneNo" json:"phoneNo"`
	RegisteredAt   time.Time          `bson:"registeredAt" json:"registeredAt"`
}

// The deploedLink spelling is the wire format the forms already use.
type HackathonTeam struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TeamName         string             `bson:"teamName" json:"teamName"`
	TeamNo           string             `bson:"teamNo" json:"teamNo"`
	ProblemStatement string             `bson:"problemStatement" json:"problemStatement"`
	Participants     []Participant      `bson:"participants" json:"participants"`
	GitHubLink       string             `bson:"gitHubLink,omitempty" json:"gitHubLink,omitempty"`
	DeploedLink      string             `bson:"deploedLink,omitempty" json:"deploedLink,omitempty"`
	Status           string             `bson:"status" json:"status"`
	UIUX             int                `bson:"uiux" json:"uiux"`
	Backend          int                `bson:"backend" json:"backend"`
	Frontend         int                `bson:"frontend" json:"frontend"`
	Deployed         int                `bson:"deployed" json:"deployed"`
	RegisteredAt     time.Time          `bson:"registeredAt" json:"registeredAt"`
}

type Cultural struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventName      string             `bson:"eventName" json:"eventName"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	RegistrationNo string             `bson:"registrationNo" json:"registrationNo"`
	PhoneNo        string             `bson:"phoneNo" json:"phoneNo"`
	Section        string             `bson:"section" json:"section"`
	Year           Year               `bson:"year" json:"year"`
	RegisteredAt   time.Time          `bson:"registeredAt" json:"registeredAt"`
}

// GenericRegistration is the fallback shape for event names without a
// specialized collection.
type GenericRegistration struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventName    string             `bson:"eventName" json:"eventName"`
	Participants []Participant      `bson:"participants" json:"participants"`
	RegisteredAt time.Time          `bson:"registeredAt" json:"registeredAt"`
}
