package models

type (
	ApprovalStatus string
	ProposalStatus string
)

func (s ApprovalStatus) String() string {
	return string(s)
}

func (s ProposalStatus) String() string {
	return string(s)
}

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusDeclined ApprovalStatus = "declined"

	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusDeclined ProposalStatus = "declined"
)

func (s ApprovalStatus) IsApproved() bool {
	return s == ApprovalStatusApproved
}

func (s ApprovalStatus) IsPending() bool {
	return s == ApprovalStatusPending
}

func (s ApprovalStatus) IsDeclined() bool {
	return s == ApprovalStatusDeclined
}
