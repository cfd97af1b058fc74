package callbacks

import "work_exchange/internal/services"

// Menu sections opened through w_menu / e_menu.
const (
	SectionMain      = "main"
	SectionJobs      = "jobs"
	SectionWorkers   = "workers"
	SectionProposals = "proposals"
	SectionReviews   = "reviews"
	SectionProfile   = "profile"
)

// Objects opened through w_details / e_details.
const (
	ObjectJob      = "job"
	ObjectWorker   = "worker"
	ObjectEmployer = "employer"
	ObjectProposal = "proposal"
	ObjectReview   = "review"
)

// Controls sent through w_c / e_c as control:action:id.
const (
	ControlPropose       = "propose"
	ControlResend        = "resend"
	ControlAnswer        = "answer"
	ControlReview        = "review"
	ControlNotifications = "notif"
	ControlSearching     = "search"
	ControlCV            = "cv"
	ControlJobNotif      = "job_notif"
	ControlJobActive     = "job_active"
	ControlJobCreate     = "job_create"
	ControlPhone         = "phone"

	ActionToggle  = "toggle"
	ActionChange  = "change"
	ActionAccept  = "accept"
	ActionDecline = "decline"
	ActionOpen    = "open"
)

// Section returns the menu section a listing belongs to.
func Section(destination services.Destination) string {
	switch destination {
	case services.DestinationAllWorkers, services.DestinationSuitableWorkers:
		return SectionWorkers
	case services.DestinationInboxProposals, services.DestinationOutboxProposals:
		return SectionProposals
	case services.DestinationInboxReviews, services.DestinationOutboxReviews:
		return SectionReviews
	}
	return SectionJobs
}

// EntryObject names the details view of a listing row.
func EntryObject(entry services.Entry) string {
	switch {
	case entry.Job != nil:
		return ObjectJob
	case entry.Worker != nil:
		return ObjectWorker
	case entry.Proposal != nil:
		return ObjectProposal
	}
	return ObjectReview
}
