package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/ginext"

	"techfest/internal/dto"
	"techfest/internal/model"
	"techfest/internal/rabbit"
	"techfest/internal/repo"
	"techfest/internal/schema"
	"techfest/pkg/validator"
)

type Service interface {
	Register(ctx *ginext.Context)
	ListByEvent(ctx *ginext.Context)
	CulturalRegister(ctx *ginext.Context)
	CulturalAll(ctx *ginext.Context)
	CulturalByEvent(ctx *ginext.Context)
	HackathonTeams(ctx *ginext.Context)
	UpdateHackathonScore(ctx *ginext.Context)
}

type service struct {
	repo repo.Repository
	log  *zerolog.Logger
	rbt  *rabbit.Client
}

// NewService wires the handlers. rbt may be nil, in which case registration
// notifications are skipped.
func NewService(repo repo.Repository, logger *zerolog.Logger, rbt *rabbit.Client) Service {
	return &service{
		repo: repo,
		log:  logger,
		rbt:  rbt,
	}
}

// Register handles POST /api/register for every non-cultural event type.
// Order matters and is load-bearing: event name, participant count,
// duplicate checks, field validation, event-specific fields, persist.
func (s *service) Register(ctx *ginext.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		s.log.Error().Err(err).Msg("failed to parse registration request")
		dto.BadRequestError(ctx, dto.MsgInvalidJSON)
		return
	}

	desc, ok := schema.Lookup(req.EventName)
	if !ok {
		dto.BadRequestError(ctx, dto.MsgInvalidEventName)
		return
	}

	if msg := checkParticipantCount(desc, req.Participants); msg != "" {
		dto.BadRequestError(ctx, msg)
		return
	}

	if done := s.runDuplicateChecks(ctx, desc, req.Participants); done {
		return
	}

	if desc.Flat {
		if err := validateSportsParticipant(req.Participants[0]); err != nil {
			dto.BadRequestError(ctx, err.Error())
			return
		}
	} else {
		for i, p := range req.Participants {
			if err := validateParticipant(p); err != nil {
				dto.BadRequestError(ctx, fmt.Sprintf("Participant %d: %s", i+1, err))
				return
			}
		}
	}

	if msg := checkEventFields(desc, &req); msg != "" {
		dto.BadRequestError(ctx, msg)
		return
	}

	record, err := s.persist(ctx, desc, &req)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateRegistration) {
			dto.ConflictError(ctx)
			return
		}
		s.log.Error().Err(err).Str("event", desc.Name).Msg("failed to persist registration")
		dto.InternalServerError(ctx, err)
		return
	}

	s.log.Info().Str("event", desc.Name).Msg("registration created successfully")
	s.notify(desc.Name, req.TeamName, collectEmails(req.Participants))

	dto.CreatedResponseOK(ctx, dto.MsgRegistrationOK, record)
}

func checkParticipantCount(desc schema.Descriptor, participants []model.Participant) string {
	if desc.ExactCount {
		if len(participants) != desc.TeamSize {
			return fmt.Sprintf("This event requires %d participants.", desc.TeamSize)
		}
		return ""
	}
	switch desc.Kind {
	case schema.KindSports:
		if len(participants) != 1 {
			return "Sports registration requires exactly 1 participant."
		}
	case schema.KindHackathon:
		if len(participants) != desc.TeamSize {
			return fmt.Sprintf("Hackathon requires exactly %d participants.", desc.TeamSize)
		}
	}
	return ""
}

// runDuplicateChecks writes the HTTP response itself on any rejection or
// lookup failure and reports whether the request is already handled.
func (s *service) runDuplicateChecks(ctx *ginext.Context, desc schema.Descriptor, participants []model.Participant) bool {
	if desc.TeamChecks {
		seen := make(map[string]struct{}, len(participants))
		for _, p := range participants {
			if _, dup := seen[p.RegistrationNo]; dup {
				dto.BadRequestError(ctx, dto.MsgTeamDuplicate)
				return true
			}
			seen[p.RegistrationNo] = struct{}{}
		}
	}

	if desc.Flat {
		exists, err := s.repo.SportsEntryExists(ctx, participants[0].RegistrationNo)
		if err != nil {
			s.log.Error().Err(err).Msg("duplicate check failed")
			dto.InternalServerError(ctx, err)
			return true
		}
		if exists {
			dto.ConflictError(ctx)
			return true
		}
		return false
	}

	for _, p := range participants {
		exists, err := s.repo.TeamMemberExists(ctx, desc.Collection, p.RegistrationNo)
		if err != nil {
			s.log.Error().Err(err).Msg("duplicate check failed")
			dto.InternalServerError(ctx, err)
			return true
		}
		if exists {
			dto.ConflictError(ctx)
			return true
		}
	}
	return false
}

func validateParticipant(p model.Participant) error {
	if err := validator.Name(p.Name); err != nil {
		return err
	}
	if err := validator.Email(p.Email); err != nil {
		return err
	}
	if err := validator.RegistrationNo(p.RegistrationNo); err != nil {
		return err
	}
	if err := validator.PhoneNo(p.PhoneNo); err != nil {
		return err
	}
	if err := validator.Section(p.Section); err != nil {
		return err
	}
	return validator.Year(p.Year.String())
}

func validateSportsParticipant(p model.Participant) error {
	if err := validateParticipant(p); err != nil {
		return err
	}
	if strings.TrimSpace(p.SportName) == "" {
		return errors.New("Sport name is required.")
	}
	if strings.TrimSpace(p.Department) == "" {
		return errors.New("Department is required.")
	}
	if strings.TrimSpace(p.TeamName) == "" {
		return errors.New("Team name is required.")
	}
	if strings.TrimSpace(p.Role) == "" {
		return errors.New("Role is required.")
	}
	return nil
}

func checkEventFields(desc schema.Descriptor, req *dto.RegisterRequest) string {
	if desc.NeedsTeamName && strings.TrimSpace(req.TeamName) == "" {
		return fmt.Sprintf("Team name is required for %s", desc.Name)
	}
	if desc.NeedsTopic && strings.TrimSpace(req.Topic) == "" {
		return "Topic is required for Poster Presentation"
	}
	if desc.NeedsHackathonFields {
		if req.TeamName == "" || req.TeamNo == "" || req.ProblemStatement == "" {
			return "Team name, team number, and problem statement are required for Hackathon"
		}
		if msg := checkHackathonComposition(req.Participants); msg != "" {
			return msg
		}
	}
	return ""
}

// checkHackathonComposition enforces the 3 third-year + 2 second-year rule
// that the forms promise but used to go unchecked on the server.
func checkHackathonComposition(participants []model.Participant) string {
	var second, third int
	for _, p := range participants {
		switch strings.TrimSpace(p.Year.String()) {
		case "2", "2nd":
			second++
		case "3", "3rd":
			third++
		}
	}
	if third != 3 || second != 2 {
		return "Hackathon team must consist of exactly 3 third-year and 2 second-year members."
	}
	return ""
}

func (s *service) persist(ctx *ginext.Context, desc schema.Descriptor, req *dto.RegisterRequest) (any, error) {
	now := time.Now()

	switch desc.Kind {
	case schema.KindCodingChallenge:
		rec := &model.CodingChallenge{
			EventName:    desc.Name,
			Participants: req.Participants,
			RegisteredAt: now,
		}
		return rec, s.repo.InsertCodingChallenge(ctx, rec)
	case schema.KindCodeHunt:
		rec := &model.CodeHunt{
			EventName:    desc.Name,
			Participants: req.Participants,
			TeamName:     req.TeamName,
			RegisteredAt: now,
		}
		return rec, s.repo.InsertCodeHunt(ctx, rec)
	case schema.KindPosterPresentation:
		rec := &model.PosterPresentation{
			EventName:    desc.Name,
			Participants: req.Participants,
			Topic:        req.Topic,
			RegisteredAt: now,
		}
		return rec, s.repo.InsertPosterPresentation(ctx, rec)
	case schema.KindTechnicalQuiz:
		rec := &model.TechnicalQuiz{
			EventName:    desc.Name,
			Participants: req.Participants,
			TeamName:     req.TeamName,
			RegisteredAt: now,
		}
		return rec, s.repo.InsertTechnicalQuiz(ctx, rec)
	case schema.KindSports:
		p := req.Participants[0]
		rec := &model.Sports{
			EventName:      desc.Name,
			Name:           p.Name,
			Email:          p.Email,
			RegistrationNo: p.RegistrationNo,
			Gender:         p.Gender,
			Section:        p.Section,
			SportName:      p.SportName,
			Year:           p.Year,
			Department:     p.Department,
			TeamName:       p.TeamName,
			Role:           p.Role,
			PhoneNo:        p.PhoneNo,
			RegisteredAt:   now,
		}
		return rec, s.repo.InsertSports(ctx, rec)
	case schema.KindHackathon:
		rec := &model.HackathonTeam{
			TeamName:         req.TeamName,
			TeamNo:           req.TeamNo,
			ProblemStatement: req.ProblemStatement,
			Participants:     req.Participants,
			GitHubLink:       req.GitHubLink,
			DeploedLink:      req.DeploedLink,
			Status:           "registered",
			RegisteredAt:     now,
		}
		return rec, s.repo.InsertHackathonTeam(ctx, rec)
	}
	return nil, fmt.Errorf("no persistence strategy for event %q", desc.Name)
}

func collectEmails(participants []model.Participant) []string {
	emails := make([]string, 0, len(participants))
	for _, p := range participants {
		if p.Email != "" {
			emails = append(emails, p.Email)
		}
	}
	return emails
}

func (s *service) notify(eventName, teamName string, emails []string) {
	if s.rbt == nil || len(emails) == 0 {
		return
	}
	payload, err := json.Marshal(dto.RegistrationCreatedMessage{
		EventName: eventName,
		TeamName:  teamName,
		Emails:    emails,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to marshal notification message")
		return
	}
	if err := s.rbt.Publish(payload); err != nil {
		s.log.Error().Err(err).Msg("failed to publish registration notification")
	}
}

// ListByEvent handles GET /api/register/all/:eventName. Known events read
// their own collection; anything else falls back to the generic collection
// filtered by name.
func (s *service) ListByEvent(ctx *ginext.Context) {
	eventName := ctx.Param("eventName")
	message := fmt.Sprintf("All %s registrations", eventName)

	desc, known := schema.Lookup(eventName)
	if !known {
		regs, err := s.repo.ListGeneric(ctx, eventName)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to list registrations")
			dto.InternalServerError(ctx, err)
			return
		}
		dto.ListResponseOK(ctx, message, len(regs), regs)
		return
	}

	var (
		regs  any
		count int
		err   error
	)
	switch desc.Kind {
	case schema.KindCodingChallenge:
		var out []model.CodingChallenge
		out, err = s.repo.ListCodingChallenges(ctx)
		regs, count = out, len(out)
	case schema.KindCodeHunt:
		var out []model.CodeHunt
		out, err = s.repo.ListCodeHunts(ctx)
		regs, count = out, len(out)
	case schema.KindPosterPresentation:
		var out []model.PosterPresentation
		out, err = s.repo.ListPosterPresentations(ctx)
		regs, count = out, len(out)
	case schema.KindTechnicalQuiz:
		var out []model.TechnicalQuiz
		out, err = s.repo.ListTechnicalQuizzes(ctx)
		regs, count = out, len(out)
	case schema.KindSports:
		var out []model.Sports
		out, err = s.repo.ListSports(ctx)
		regs, count = out, len(out)
	case schema.KindHackathon:
		var out []model.HackathonTeam
		out, err = s.repo.ListHackathonTeams(ctx)
		regs, count = out, len(out)
	}
	if err != nil {
		s.log.Error().Err(err).Str("event", eventName).Msg("failed to list registrations")
		dto.InternalServerError(ctx, err)
		return
	}

	dto.ListResponseOK(ctx, message, count, regs)
}

// CulturalRegister handles POST /api/cultural/register. Cultural entries are
// flat and keyed by (registrationNo, eventName).
func (s *service) CulturalRegister(ctx *ginext.Context) {
	var req dto.CulturalRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadRequestError(ctx, dto.MsgInvalidJSON)
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadRequestError(ctx, "All fields (name, email, registrationNo, phoneNo, section, year, eventName) are required")
		return
	}
	for _, check := range []error{
		validator.Name(req.Name),
		validator.Email(req.Email),
		validator.RegistrationNo(req.RegistrationNo),
		validator.PhoneNo(req.PhoneNo),
		validator.Section(req.Section),
		validator.Year(req.Year.String()),
	} {
		if check != nil {
			dto.BadRequestError(ctx, check.Error())
			return
		}
	}

	exists, err := s.repo.CulturalEntryExists(ctx, req.RegistrationNo, req.EventName)
	if err != nil {
		s.log.Error().Err(err).Msg("cultural duplicate check failed")
		dto.InternalServerError(ctx, err)
		return
	}
	if exists {
		dto.ConflictError(ctx)
		return
	}

	rec := &model.Cultural{
		EventName:      req.EventName,
		Name:           req.Name,
		Email:          req.Email,
		RegistrationNo: req.RegistrationNo,
		PhoneNo:        req.PhoneNo,
		Section:        req.Section,
		Year:           req.Year,
		RegisteredAt:   time.Now(),
	}
	if err := s.repo.InsertCultural(ctx, rec); err != nil {
		if errors.Is(err, repo.ErrDuplicateRegistration) {
			dto.ConflictError(ctx)
			return
		}
		s.log.Error().Err(err).Msg("failed to persist cultural registration")
		dto.InternalServerError(ctx, err)
		return
	}

	s.log.Info().Str("event", req.EventName).Msg("cultural registration created")
	s.notify(req.EventName, "", []string{req.Email})

	dto.CreatedResponseOK(ctx, dto.MsgCulturalOK, rec)
}

func (s *service) CulturalAll(ctx *ginext.Context) {
	regs, err := s.repo.ListCulturals(ctx, "")
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list cultural registrations")
		dto.InternalServerError(ctx, err)
		return
	}
	dto.ListResponseOK(ctx, "All cultural event registrations", len(regs), regs)
}

func (s *service) CulturalByEvent(ctx *ginext.Context) {
	eventName := ctx.Param("eventName")
	regs, err := s.repo.ListCulturals(ctx, eventName)
	if err != nil {
		s.log.Error().Err(err).Str("event", eventName).Msg("failed to list cultural registrations")
		dto.InternalServerError(ctx, err)
		return
	}
	dto.ListResponseOK(ctx, fmt.Sprintf("All %s registrations", eventName), len(regs), regs)
}

func (s *service) HackathonTeams(ctx *ginext.Context) {
	teams, err := s.repo.ListHackathonTeams(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list hackathon teams")
		dto.InternalServerError(ctx, err)
		return
	}
	dto.ListResponseOK(ctx, "All Hackathon teams", len(teams), teams)
}

// UpdateHackathonScore handles PUT /api/hackathon/score for the judging desk.
func (s *service) UpdateHackathonScore(ctx *ginext.Context) {
	var req dto.ScoreUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadRequestError(ctx, dto.MsgInvalidJSON)
		return
	}
	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadRequestError(ctx, verr.Error())
		return
	}

	err := s.repo.UpdateHackathonScores(ctx, req.TeamNo, req.UIUX, req.Backend, req.Frontend, req.Deployed, req.Status)
	if err != nil {
		if errors.Is(err, repo.ErrTeamNotFound) {
			dto.NotFoundError(ctx, "Hackathon team not found")
			return
		}
		s.log.Error().Err(err).Str("teamNo", req.TeamNo).Msg("failed to update hackathon scores")
		dto.InternalServerError(ctx, err)
		return
	}

	s.log.Info().Str("teamNo", req.TeamNo).Msg("hackathon scores updated")
	dto.SuccessResponse(ctx, map[string]string{"message": "Scores updated"})
}
