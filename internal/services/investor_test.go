package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billiton/gen/investor"
	"billiton/internal/domain"
	apperrors "billiton/pkg/errors"
)

func TestInvestorSubmit(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewInvestorService(db, mailer, testNotifyTo)

	res, err := svc.Submit(context.Background(), &investor.SubmitPayload{
		Email:         "fund@example.com",
		InvestorTypes: []string{"family-office", "institutional"},
		TicketSize:    "$500K-$1M",
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.NotEmpty(t, res.ID)
	assert.True(t, res.EmailSent)

	var row domain.InvestorInquiry
	require.NoError(t, db.First(&row, "id = ?", res.ID).Error)
	assert.Equal(t, "family-office, institutional", row.InvestorTypes)
	assert.True(t, row.EmailSent)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "New Investor Interest Registration", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].html, "family-office, institutional")
}

func TestInvestorSubmitNoTypes(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewInvestorService(db, mailer, testNotifyTo)

	res, err := svc.Submit(context.Background(), &investor.SubmitPayload{
		Email: "fund@example.com",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)

	var row domain.InvestorInquiry
	require.NoError(t, db.First(&row, "id = ?", res.ID).Error)
	assert.Empty(t, row.InvestorTypes)

	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].text, "Investor Type(s): Not specified")
}

func TestInvestorSubmitEmailFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvestorService(db, &fakeMailer{fail: true}, testNotifyTo)

	res, err := svc.Submit(context.Background(), &investor.SubmitPayload{
		Email: "fund@example.com",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, res.EmailSent)

	var row domain.InvestorInquiry
	require.NoError(t, db.First(&row, "id = ?", res.ID).Error)
	assert.False(t, row.EmailSent)
}

func TestInvestorSubmitPersistenceFailure(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewInvestorService(db, mailer, testNotifyTo)

	require.NoError(t, db.Migrator().DropTable(&domain.InvestorInquiry{}))

	res, err := svc.Submit(context.Background(), &investor.SubmitPayload{Email: "fund@example.com"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, apperrors.IsPersistence(err))
	assert.Empty(t, mailer.sent)
}

func TestInvestorListSplitsTypes(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvestorService(db, &fakeMailer{}, testNotifyTo)

	require.NoError(t, db.Create(&domain.InvestorInquiry{
		Email:         "fund@example.com",
		InvestorTypes: "hnwi, retail",
		TicketSize:    "$100K",
	}).Error)
	require.NoError(t, db.Create(&domain.InvestorInquiry{
		Email: "solo@example.com",
	}).Error)

	results, err := svc.List(context.Background(), &investor.ListPayload{Skip: 0, Limit: 100})
	require.NoError(t, err)
	require.Len(t, results, 2)

	byEmail := map[string][]string{}
	for _, r := range results {
		byEmail[r.Email] = r.InvestorTypes
	}
	assert.Equal(t, []string{"hnwi", "retail"}, byEmail["fund@example.com"])
	assert.Empty(t, byEmail["solo@example.com"])
}
