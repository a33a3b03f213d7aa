package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billiton/internal/domain"
)

func TestNotifyAndMarkFlipsFlag(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}

	row := &domain.ConsultationInquiry{FirstName: "Ada", Email: "ada@example.com"}
	require.NoError(t, db.Create(row).Error)

	sent := notifyAndMark(db, mailer, "[TEST]", &domain.ConsultationInquiry{}, row.ID, testNotifyTo, "subject", "<p>hi</p>", "hi")
	assert.True(t, sent)

	var got domain.ConsultationInquiry
	require.NoError(t, db.First(&got, "id = ?", row.ID).Error)
	assert.True(t, got.EmailSent)
}

func TestNotifyAndMarkSendFailure(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{fail: true}

	row := &domain.ConsultationInquiry{FirstName: "Ada"}
	require.NoError(t, db.Create(row).Error)

	sent := notifyAndMark(db, mailer, "[TEST]", &domain.ConsultationInquiry{}, row.ID, testNotifyTo, "subject", "", "")
	assert.False(t, sent)

	var got domain.ConsultationInquiry
	require.NoError(t, db.First(&got, "id = ?", row.ID).Error)
	assert.False(t, got.EmailSent)
}

func TestNotifyAndMarkUpdateFailureStillReportsSent(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}

	row := &domain.ConsultationInquiry{FirstName: "Ada"}
	require.NoError(t, db.Create(row).Error)
	require.NoError(t, db.Migrator().DropTable(&domain.ConsultationInquiry{}))

	// The email went out; a failed flag update is logged, not reported.
	sent := notifyAndMark(db, mailer, "[TEST]", &domain.ConsultationInquiry{}, row.ID, testNotifyTo, "subject", "", "")
	assert.True(t, sent)
	assert.Len(t, mailer.sent, 1)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "Not specified", orNotSpecified(""))
	assert.Equal(t, "$1M", orNotSpecified("$1M"))
	assert.Equal(t, "Not provided", orNotProvided(""))
	assert.Equal(t, "details", orNotProvided("details"))
}
