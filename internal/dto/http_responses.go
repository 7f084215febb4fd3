package dto

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"techfest/internal/model"
)

const (
	MsgInvalidEventName  = "Invalid event name"
	MsgAlreadyRegistered = "You have already registered for this event."
	MsgTeamDuplicate     = "Duplicate registration numbers within team. Each team member must have unique registration number."
	MsgRegistrationOK    = "Registration successful"
	MsgCulturalOK        = "Successfully registered for cultural event"
	MsgInvalidJSON       = "Invalid JSON format"
)

type RegisterRequest struct {
	EventName        string              `json:"eventName"`
	Participants     []model.Participant `json:"participants"`
	TeamName         string              `json:"teamName,omitempty"`
	Topic            string              `json:"topic,omitempty"`
	TeamNo           string              `json:"teamNo,omitempty"`
	ProblemStatement string              `json:"problemStatement,omitempty"`
	GitHubLink       string              `json:"gitHubLink,omitempty"`
	DeploedLink      string              `json:"deploedLink,omitempty"`
}

type CulturalRegisterRequest struct {
	Name           string     `json:"name" validate:"required"`
	Email          string     `json:"email" validate:"required"`
	RegistrationNo string     `json:"registrationNo" validate:"required"`
	PhoneNo        string     `json:"phoneNo" validate:"required"`
	Section        string     `json:"section" validate:"required"`
	Year           model.Year `json:"year" validate:"required"`
	EventName      string     `json:"eventName" validate:"required"`
}

type ScoreUpdateRequest struct {
	TeamNo   string `json:"teamNo" validate:"required"`
	UIUX     int    `json:"uiux" validate:"gte=0"`
	Backend  int    `json:"backend" validate:"gte=0"`
	Frontend int    `json:"frontend" validate:"gte=0"`
	Deployed int    `json:"deployed" validate:"gte=0"`
	Status   string `json:"status,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CreatedResponse struct {
	Message      string `json:"message"`
	Registration any    `json:"registration"`
}

type ListResponse struct {
	Message       string `json:"message"`
	Count         int    `json:"count"`
	Registrations any    `json:"registrations"`
}

func BadRequestError(c *ginext.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func ConflictError(c *ginext.Context) {
	c.JSON(http.StatusConflict, ErrorResponse{Error: MsgAlreadyRegistered})
}

func NotFoundError(c *ginext.Context, msg string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: msg})
}

func InternalServerError(c *ginext.Context, err error) {
	msg := "Internal server error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
}

func CreatedResponseOK(c *ginext.Context, message string, registration any) {
	c.JSON(http.StatusCreated, CreatedResponse{Message: message, Registration: registration})
}

func ListResponseOK(c *ginext.Context, message string, count int, registrations any) {
	c.JSON(http.StatusOK, ListResponse{Message: message, Count: count, Registrations: registrations})
}

func SuccessResponse(c *ginext.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// RegistrationCreatedMessage is the payload published after a successful
// registration; the consumer worker turns it into confirmation e-mails.
type RegistrationCreatedMessage struct {
	EventName string   `json:"eventName"`
	TeamName  string   `json:"teamName,omitempty"`
	Emails    []string `json:"emails"`
}
