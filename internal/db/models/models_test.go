package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorker_IsListed(t *testing.T) {
	tests := []struct {
		name      string
		approval  ApprovalStatus
		searching bool
		want      bool
	}{
		{"approved and searching", ApprovalStatusApproved, true, true},
		{"approved but hidden", ApprovalStatusApproved, false, false},
		{"pending", ApprovalStatusPending, true, false},
		{"declined", ApprovalStatusDeclined, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			worker := &Worker{Approval: tt.approval, IsSearching: tt.searching}
			assert.Equal(t, tt.want, worker.IsListed())
		})
	}
}

func TestWorker_MatchesJob(t *testing.T) {
	worker := &Worker{Occupations: []string{"painter", "tile"}, MinSalary: 50}

	assert.True(t, worker.MatchesJob(&Job{Occupations: []string{"tile"}, MinSalary: 50}))
	assert.False(t, worker.MatchesJob(&Job{Occupations: []string{"tile"}, MinSalary: 49}))
	assert.False(t, worker.MatchesJob(&Job{Occupations: []string{"welding"}, MinSalary: 80}))
}

func TestJob_IsVisible(t *testing.T) {
	assert.True(t, (&Job{IsActive: true, Approval: ApprovalStatusApproved}).IsVisible())
	assert.False(t, (&Job{IsActive: false, Approval: ApprovalStatusApproved}).IsVisible())
	assert.False(t, (&Job{IsActive: true, Approval: ApprovalStatusPending}).IsVisible())
}

func TestLocalizedFields(t *testing.T) {
	worker := &Worker{About: "Опыт 10 лет"}
	assert.Equal(t, "Опыт 10 лет", worker.AboutIn(LanguageHebrew))

	worker.AboutHeb = "ניסיון של 10 שנים"
	assert.Equal(t, "ניסיון של 10 שנים", worker.AboutIn(LanguageHebrew))
	assert.Equal(t, "Опыт 10 лет", worker.AboutIn(LanguageRussian))

	job := &Job{Description: "עבודה בחיפה", DescriptionRus: "Работа в Хайфе"}
	assert.Equal(t, "Работа в Хайфе", job.DescriptionIn(LanguageRussian))
	assert.Equal(t, "עבודה בחיפה", job.DescriptionIn(LanguageHebrew))

	review := &Review{Author: RoleEmployer, Comment: "מצוין", CommentTranslated: "Отлично"}
	assert.Equal(t, "Отлично", review.CommentIn(LanguageRussian))
	assert.Equal(t, "מצוין", review.CommentIn(LanguageHebrew))
}

func TestProposal_Sides(t *testing.T) {
	proposal := &Proposal{Kind: ProposalKindEmployer, WorkerID: 1, EmployerID: 2}

	assert.Equal(t, RoleEmployer, proposal.Initiator())
	assert.Equal(t, RoleWorker, proposal.Recipient())
	assert.Equal(t, int64(2), proposal.PartyID(RoleEmployer))
	assert.Equal(t, int64(1), proposal.PartyID(RoleWorker))
}

func TestRole_Language(t *testing.T) {
	assert.Equal(t, LanguageRussian, RoleWorker.Language())
	assert.Equal(t, LanguageHebrew, RoleEmployer.Language())
	assert.Equal(t, LanguageRussian, Role("").Language())

	assert.Equal(t, "\u202Bשלום", LanguageHebrew.Direct("שלום"))
	assert.Equal(t, "Привет", LanguageRussian.Direct("Привет"))
}

func TestBroadcast_TargetsAndButtons(t *testing.T) {
	assert.Equal(t, []Role{RoleWorker, RoleEmployer}, BroadcastTargetAll.Roles())
	assert.Nil(t, BroadcastTargetIndividual.Roles())

	button := &BroadcastButton{TextRus: "Сайт", Link: "http://example.com"}
	assert.False(t, button.HasSecureLink())
	assert.Equal(t, "Сайт", button.TextIn(LanguageHebrew))
}
