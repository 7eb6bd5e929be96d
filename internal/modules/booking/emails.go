package booking

import (
	"fmt"

	"mentorhub/internal/domain"
)

func applicantConfirmationEmail(b *domain.Booking, mentor *domain.Mentor) (subject, htmlBody, textBody string) {
	subject = "Your mentor session request was received"
	textBody = fmt.Sprintf(
		"Hi %s,\n\nWe received your request to meet %s on %s at %s (%d min) about %q.\n"+
			"Our team will review it and get back to you by email.\n",
		b.ApplicantName, mentor.Name, b.MeetingDate, b.MeetingTime, b.Duration, b.Topic,
	)
	htmlBody = fmt.Sprintf(
		"<p>Hi %s,</p><p>We received your request to meet <b>%s</b> on <b>%s</b> at <b>%s</b> (%d min) about %q.</p>"+
			"<p>Our team will review it and get back to you by email.</p>",
		b.ApplicantName, mentor.Name, b.MeetingDate, b.MeetingTime, b.Duration, b.Topic,
	)
	return subject, htmlBody, textBody
}

func mentorAlertEmail(b *domain.Booking, mentor *domain.Mentor) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("New session request: %s on %s", b.Topic, b.MeetingDate)
	textBody = fmt.Sprintf(
		"Hi %s,\n\n%s (%s) requested a session on %s at %s (%d min).\nTopic: %s\n\n%s\n",
		mentor.Name, b.ApplicantName, b.ApplicantEmail, b.MeetingDate, b.MeetingTime, b.Duration, b.Topic, b.Message,
	)
	htmlBody = fmt.Sprintf(
		"<p>Hi %s,</p><p><b>%s</b> (%s) requested a session on <b>%s</b> at <b>%s</b> (%d min).</p>"+
			"<p>Topic: %s</p><p>%s</p>",
		mentor.Name, b.ApplicantName, b.ApplicantEmail, b.MeetingDate, b.MeetingTime, b.Duration, b.Topic, b.Message,
	)
	return subject, htmlBody, textBody
}

func adminAlertEmail(b *domain.Booking, mentor *domain.Mentor) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("New booking #%d for %s", b.ID, mentor.Name)
	textBody = fmt.Sprintf(
		"New booking #%d\nMentor: %s\nApplicant: %s (%s)\nWhen: %s %s (%d min)\nTopic: %s\n",
		b.ID, mentor.Name, b.ApplicantName, b.ApplicantEmail, b.MeetingDate, b.MeetingTime, b.Duration, b.Topic,
	)
	htmlBody = fmt.Sprintf(
		"<p>New booking <b>#%d</b></p><ul><li>Mentor: %s</li><li>Applicant: %s (%s)</li>"+
			"<li>When: %s %s (%d min)</li><li>Topic: %s</li></ul>",
		b.ID, mentor.Name, b.ApplicantName, b.ApplicantEmail, b.MeetingDate, b.MeetingTime, b.Duration, b.Topic,
	)
	return subject, htmlBody, textBody
}

func statusUpdateEmail(b *domain.Booking, mentor *domain.Mentor) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("Your session request is now %s", b.Status)
	textBody = fmt.Sprintf(
		"Hi %s,\n\nYour session with %s on %s at %s is now %s.\n",
		b.ApplicantName, mentor.Name, b.MeetingDate, b.MeetingTime, b.Status,
	)
	htmlBody = fmt.Sprintf(
		"<p>Hi %s,</p><p>Your session with <b>%s</b> on <b>%s</b> at <b>%s</b> is now <b>%s</b>.</p>",
		b.ApplicantName, mentor.Name, b.MeetingDate, b.MeetingTime, b.Status,
	)
	return subject, htmlBody, textBody
}
