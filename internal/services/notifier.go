package services

import "work_exchange/internal/db/models"

// Notifier schedules the messages that follow a state change. Implementations
// must not block: delivery happens in the background and an error only means
// the notification could not be scheduled.
type Notifier interface {
	WorkerSubmitted(worker *models.Worker) error
	JobSubmitted(job *models.Job) error
	ReviewSubmitted(review *models.Review) error

	WorkerModerated(worker *models.Worker) error
	JobModerated(job *models.Job) error
	ReviewModerated(review *models.Review) error

	ProposalCreated(proposal *models.Proposal) error
	ProposalAnswered(proposal *models.Proposal) error
}
