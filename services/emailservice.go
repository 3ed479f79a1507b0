package services

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/config"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/model"
)

// ErrTransport marks a mail-delivery failure. Callers treat it as
// retryable-by-omission: the reminder stays unsent and the next scan
// cycle picks it up again.
var ErrTransport = errors.New("email transport failure")

// Mailer sends one HTML email. The SMTP implementation below is swapped
// for a recording fake in tests.
type Mailer interface {
	Send(to, subject, html string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.Configuration) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return nil
}

const emailLayout = `
<table width="600px" cellpadding="0" cellspacing="0" border="0" style="font-family:Arial,sans-serif;background:#eeeeee">
  <tr><td align="center" style="padding:20px"><h1 style="margin:0">Employee Reminder System</h1></td></tr>
  <tr><td style="background:#ffffff;padding:30px;color:#333333;font-size:15px;line-height:22px">%s</td></tr>
  <tr><td align="center" style="padding:16px;font-size:12px;color:#888888">This is an automated message. Please do not reply.</td></tr>
</table>`

func wrapBody(inner string) string {
	return fmt.Sprintf(emailLayout, inner)
}

// TaskReminderEmail renders the body for a due task reminder.
func TaskReminderEmail(title string, deadline time.Time) (subject, html string) {
	subject = "Reminder: " + title
	inner := fmt.Sprintf(
		`<p>Hello!</p>
<p>This is a reminder for your task:</p>
<p style="font-size:18px"><strong>%s</strong></p>
<p>Deadline: <strong style="color:#cc0000">%s</strong></p>
<p>Please make sure it is completed on time.</p>`,
		title, deadline.Format("Mon, 02 Jan 2006 15:04 MST"))
	return subject, wrapBody(inner)
}

// MeetingReminderEmail renders the body for an upcoming meeting.
func MeetingReminderEmail(m model.Meeting) (subject, html string) {
	subject = "Meeting reminder: " + m.Title
	where := m.Location
	if m.Type == model.MeetingVirtual && m.MeetingLink != "" {
		where = fmt.Sprintf(`<a href="%s">%s</a>`, m.MeetingLink, m.MeetingLink)
	}
	inner := fmt.Sprintf(
		`<p>Hello!</p>
<p>Your meeting <strong>%s</strong> is coming up.</p>
<p>Starts: <strong>%s</strong><br>Where: %s</p>`,
		m.Title, m.Start.Format("Mon, 02 Jan 2006 15:04 MST"), where)
	return subject, wrapBody(inner)
}

// AssignmentEmail notifies an employee that a task was assigned to them.
func AssignmentEmail(title string, deadline time.Time, assignee model.Identity) (subject, html string) {
	subject = "New task assigned: " + title
	inner := fmt.Sprintf(
		`<p>Hello %s,</p>
<p>A new task has been assigned to you:</p>
<p style="font-size:18px"><strong>%s</strong></p>
<p>Deadline: <strong>%s</strong></p>
<p>Sign in to view the details and update your progress.</p>`,
		assignee.Name, title, deadline.Format("Mon, 02 Jan 2006 15:04 MST"))
	return subject, wrapBody(inner)
}

// InvitationEmail invites an employee to a meeting.
func InvitationEmail(m model.Meeting, invitee model.Identity) (subject, html string) {
	subject = "Meeting invitation: " + m.Title
	inner := fmt.Sprintf(
		`<p>Hello %s,</p>
<p>You have been invited to <strong>%s</strong>.</p>
<p>Starts: <strong>%s</strong><br>Ends: <strong>%s</strong></p>
<p>%s</p>`,
		invitee.Name, m.Title,
		m.Start.Format("Mon, 02 Jan 2006 15:04 MST"),
		m.End.Format("Mon, 02 Jan 2006 15:04 MST"),
		m.Description)
	return subject, wrapBody(inner)
}
