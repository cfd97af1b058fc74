package models

import "time"

// ProposalKind names the side that initiated the proposal.
type ProposalKind string

func (k ProposalKind) String() string {
	return string(k)
}

const (
	ProposalKindWorker   ProposalKind = "worker"
	ProposalKindEmployer ProposalKind = "employer"
)

type Proposal struct {
	ID          int64          `json:"id" pg:",pk"`
	Kind        ProposalKind   `json:"kind" pg:",notnull"`
	WorkerID    int64          `json:"worker_id" pg:",notnull"`
	Worker      *Worker        `json:"worker" pg:"rel:has-one"`
	EmployerID  int64          `json:"employer_id" pg:",notnull"`
	Employer    *Employer      `json:"employer" pg:"rel:has-one"`
	JobID       int64          `json:"job_id"`
	Job         *Job           `json:"job" pg:"rel:has-one"`
	Status      ProposalStatus `json:"status" pg:",notnull"`
	IsProceeded bool           `json:"is_proceeded" pg:",use_zero"`
	CreatedAt   time.Time      `json:"created_at" pg:"default:now()"`
	UpdatedAt   time.Time      `json:"updated_at" pg:"default:now()"`
}

func (p *Proposal) Initiator() Role {
	if p.Kind == ProposalKindEmployer {
		return RoleEmployer
	}
	return RoleWorker
}

func (p *Proposal) Recipient() Role {
	return p.Initiator().Counterpart()
}

// PartyID returns the worker or employer id on the given side.
func (p *Proposal) PartyID(role Role) int64 {
	if role == RoleEmployer {
		return p.EmployerID
	}
	return p.WorkerID
}

func (p *Proposal) IsPending() bool {
	return p.Status == ProposalStatusPending
}

func (p *Proposal) IsAccepted() bool {
	return p.Status == ProposalStatusAccepted
}

func (p *Proposal) IsDeclined() bool {
	return p.Status == ProposalStatusDeclined
}
