package services

import (
	"log"

	"gorm.io/gorm"

	"billiton/internal/metrics"
)

// notifyAndMark runs the best-effort notification step for a freshly
// persisted inquiry: it attempts exactly one email to the staff address and,
// only on confirmed delivery, flips the row's email_sent flag. The returned
// bool reports whether the email went out; no error ever escapes, so a
// provider outage can never fail the submission that triggered it.
//
// If the flag update fails after a successful send the row keeps
// email_sent=false even though the email exists. That drift is logged and
// accepted; the record itself is already durable.
func notifyAndMark(db *gorm.DB, mailer Mailer, tag string, model interface{}, id, to, subject, htmlBody, textBody string) bool {
	if err := mailer.SendHTMLEmail(to, subject, htmlBody, textBody); err != nil {
		log.Printf("%s Warning: failed to send notification email for inquiry id=%s: %v", tag, id, err)
		metrics.RecordNotificationEmail(false)
		return false
	}

	log.Printf("%s Notification email sent for inquiry id=%s", tag, id)
	metrics.RecordNotificationEmail(true)

	if err := db.Model(model).Where("id = ?", id).Update("email_sent", true).Error; err != nil {
		log.Printf("%s Warning: email sent but failed to update email_sent for id=%s: %v", tag, id, err)
	}
	return true
}

// orNotSpecified substitutes the placeholder used in notification emails for
// empty optional fields.
func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

// orNotProvided is the free-text variant of orNotSpecified.
func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}
