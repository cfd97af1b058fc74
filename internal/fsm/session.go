package fsm

import (
	"errors"
	"time"

	"work_exchange/internal/db/models"
)

type (
	Flow string
	Step string
)

const (
	FlowWorkerProfile   Flow = "worker_profile"
	FlowEmployerProfile Flow = "employer_profile"
	FlowJob             Flow = "job"
	FlowReview          Flow = "review"
)

const (
	StepName                     Step = "name"
	StepPhone                    Step = "phone"
	StepPassportPhoto            Step = "passport_photo"
	StepOccupations              Step = "occupations"
	StepAbout                    Step = "about"
	StepMinSalary                Step = "min_salary"
	StepObjectPhotosConfirmation Step = "object_photos_confirmation"
	StepObjectPhoto              Step = "object_photo"
	StepNotifications            Step = "notifications"
	StepDescription              Step = "description"
	StepRate                     Step = "rate"
	StepComment                  Step = "comment"
	StepConfirmation             Step = "confirmation"
)

// Input is the shape of an update a step accepts.
type Input string

const (
	InputText     Input = "text"
	InputContact  Input = "contact"
	InputPhoto    Input = "photo"
	InputCallback Input = "callback"
)

var ErrNoOccupations = errors.New("no occupations selected")

var flows = map[Flow][]Step{
	FlowWorkerProfile: {
		StepName,
		StepPhone,
		StepPassportPhoto,
		StepOccupations,
		StepAbout,
		StepMinSalary,
		StepObjectPhotosConfirmation,
		StepObjectPhoto,
		StepNotifications,
		StepConfirmation,
	},
	FlowEmployerProfile: {
		StepPhone,
	},
	FlowJob: {
		StepOccupations,
		StepMinSalary,
		StepDescription,
		StepNotifications,
		StepConfirmation,
	},
	FlowReview: {
		StepRate,
		StepComment,
		StepConfirmation,
	},
}

var inputs = map[Step][]Input{
	StepName:                     {InputText},
	StepPhone:                    {InputText, InputContact},
	StepPassportPhoto:            {InputPhoto},
	StepOccupations:              {InputCallback},
	StepAbout:                    {InputText},
	StepMinSalary:                {InputText},
	StepObjectPhotosConfirmation: {InputCallback},
	StepObjectPhoto:              {InputPhoto},
	StepNotifications:            {InputCallback},
	StepDescription:              {InputText},
	StepRate:                     {InputCallback},
	StepComment:                  {InputText, InputCallback},
	StepConfirmation:             {InputCallback},
}

// Draft holds the answers collected so far.
type Draft struct {
	Name            string   `json:"name,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	PassportPhotoID string   `json:"passport_photo_id,omitempty"`
	Occupations     []string `json:"occupations,omitempty"`
	About           string   `json:"about,omitempty"`
	MinSalary       int      `json:"min_salary,omitempty"`
	ObjectPhotos    []string `json:"object_photos,omitempty"`
	Notifications   bool     `json:"notifications,omitempty"`
	Description     string   `json:"description,omitempty"`
	Rate            int      `json:"rate,omitempty"`
	Comment         string   `json:"comment,omitempty"`
	// TargetID is the worker or employer being reviewed.
	TargetID int64 `json:"target_id,omitempty"`
}

type Session struct {
	Flow      Flow      `json:"flow"`
	Step      Step      `json:"step"`
	Draft     Draft     `json:"draft"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Start opens a flow at its first step with an empty draft.
func Start(flow Flow) *Session {
	return &Session{
		Flow: flow,
		Step: flows[flow][0],
	}
}

// StartReview opens the review flow for the given worker or employer.
func StartReview(targetID int64) *Session {
	session := Start(FlowReview)
	session.Draft.TargetID = targetID
	return session
}

// Accepts reports whether the current step takes the given input.
func (s *Session) Accepts(input Input) bool {
	for _, accepted := range inputs[s.Step] {
		if accepted == input {
			return true
		}
	}
	return false
}

// Next moves to the step following the current one in the flow order.
func (s *Session) Next() {
	steps := flows[s.Flow]
	for i, step := range steps {
		if step == s.Step && i+1 < len(steps) {
			s.Step = steps[i+1]
			return
		}
	}
}

func (s *Session) GoTo(step Step) {
	s.Step = step
}

// ToggleOccupation adds or removes an occupation from the working set.
func (s *Session) ToggleOccupation(slug string) {
	for i, selected := range s.Draft.Occupations {
		if selected == slug {
			s.Draft.Occupations = append(s.Draft.Occupations[:i], s.Draft.Occupations[i+1:]...)
			return
		}
	}
	s.Draft.Occupations = append(s.Draft.Occupations, slug)
}

func (s *Session) HasOccupation(slug string) bool {
	for _, selected := range s.Draft.Occupations {
		if selected == slug {
			return true
		}
	}
	return false
}

// ConfirmOccupations advances past the occupation step when at least one is selected.
func (s *Session) ConfirmOccupations() error {
	if len(s.Draft.Occupations) == 0 {
		return ErrNoOccupations
	}
	s.Next()
	return nil
}

// AddObjectPhoto stores a photo and returns true once the limit is reached,
// in which case the session has moved on to the notifications step.
func (s *Session) AddObjectPhoto(fileID string) bool {
	if len(s.Draft.ObjectPhotos) < models.MaxObjectPhotos {
		s.Draft.ObjectPhotos = append(s.Draft.ObjectPhotos, fileID)
	}

	if len(s.Draft.ObjectPhotos) >= models.MaxObjectPhotos {
		s.GoTo(StepNotifications)
		return true
	}

	s.GoTo(StepObjectPhotosConfirmation)
	return false
}

// SkipObjectPhotos leaves the photo loop.
func (s *Session) SkipObjectPhotos() {
	s.GoTo(StepNotifications)
}

// Retype restarts the flow. Profile and job drafts are discarded completely,
// a review keeps only the reviewed party.
func (s *Session) Retype() {
	targetID := s.Draft.TargetID

	s.Draft = Draft{}
	s.Step = flows[s.Flow][0]

	if s.Flow == FlowReview {
		s.Draft.TargetID = targetID
	}
}
