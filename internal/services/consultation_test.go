package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billiton/gen/consultation"
	"billiton/internal/domain"
	apperrors "billiton/pkg/errors"
)

func TestConsultationSubmit(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewConsultationService(db, mailer, testNotifyTo)

	res, err := svc.Submit(context.Background(), &consultation.SubmitPayload{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		DescribesYou: "jeweller",
		InterestedIn: "tokenisation",
		Message:      "Please get in touch.",
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.NotEmpty(t, res.ID)
	assert.True(t, res.EmailSent)

	var row domain.ConsultationInquiry
	require.NoError(t, db.First(&row, "id = ?", res.ID).Error)
	assert.Equal(t, "Ada", row.FirstName)
	assert.Equal(t, "ada@example.com", row.Email)
	assert.True(t, row.EmailSent)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, testNotifyTo, mailer.sent[0].to)
	assert.Equal(t, "New Consultation Request from Ada Lovelace", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].html, "ada@example.com")
}

func TestConsultationSubmitEmailFailure(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{fail: true}
	svc := NewConsultationService(db, mailer, testNotifyTo)

	res, err := svc.Submit(context.Background(), &consultation.SubmitPayload{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)

	// The inquiry survives a provider outage; only the flag reports it.
	assert.True(t, res.Success)
	assert.False(t, res.EmailSent)

	var row domain.ConsultationInquiry
	require.NoError(t, db.First(&row, "id = ?", res.ID).Error)
	assert.False(t, row.EmailSent)
}

func TestConsultationSubmitEmptyPayload(t *testing.T) {
	db := newTestDB(t)
	svc := NewConsultationService(db, &fakeMailer{}, testNotifyTo)

	res, err := svc.Submit(context.Background(), &consultation.SubmitPayload{})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.ID)

	var count int64
	db.Model(&domain.ConsultationInquiry{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestConsultationSubmitPersistenceFailure(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewConsultationService(db, mailer, testNotifyTo)

	require.NoError(t, db.Migrator().DropTable(&domain.ConsultationInquiry{}))

	res, err := svc.Submit(context.Background(), &consultation.SubmitPayload{
		FirstName: "Ada",
	})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, apperrors.IsPersistence(err))

	// No email without a durable row.
	assert.Empty(t, mailer.sent)
}

func TestConsultationSubmitDistinctIDs(t *testing.T) {
	db := newTestDB(t)
	svc := NewConsultationService(db, &fakeMailer{}, testNotifyTo)

	p := &consultation.SubmitPayload{FirstName: "Ada", Email: "ada@example.com"}
	first, err := svc.Submit(context.Background(), p)
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), p)
	require.NoError(t, err)

	// No dedup: identical payloads become separate rows.
	assert.NotEqual(t, first.ID, second.ID)

	var count int64
	db.Model(&domain.ConsultationInquiry{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestConsultationList(t *testing.T) {
	db := newTestDB(t)
	svc := NewConsultationService(db, &fakeMailer{}, testNotifyTo)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		row := &domain.ConsultationInquiry{FirstName: name, Email: name + "@example.com"}
		require.NoError(t, db.Create(row).Error)
		require.NoError(t, db.Model(&domain.ConsultationInquiry{}).
			Where("id = ?", row.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	results, err := svc.List(context.Background(), &consultation.ListPayload{Skip: 0, Limit: 100})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Newest first.
	assert.Equal(t, "third", results[0].FirstName)
	assert.Equal(t, "first", results[2].FirstName)

	page, err := svc.List(context.Background(), &consultation.ListPayload{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "second", page[0].FirstName)
}
