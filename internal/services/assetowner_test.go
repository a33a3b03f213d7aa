package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billiton/gen/assetowner"
	"billiton/internal/domain"
	apperrors "billiton/pkg/errors"
)

func TestAssetOwnerSubmit(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewAssetOwnerService(db, mailer, testNotifyTo)

	res, err := svc.Submit(context.Background(), &assetowner.SubmitPayload{
		Name:           "Grace Hopper",
		Organisation:   "Hopper Gems Ltd",
		Role:           "Director",
		Email:          "grace@example.com",
		InventoryValue: "$2M-$5M",
		Description:    "Mixed polished stock, GIA certified.",
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.NotEmpty(t, res.ID)
	assert.True(t, res.EmailSent)

	var row domain.AssetOwnerInquiry
	require.NoError(t, db.First(&row, "id = ?", res.ID).Error)
	assert.Equal(t, "Hopper Gems Ltd", row.Organisation)
	assert.True(t, row.EmailSent)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "New Asset Assessment Request from Grace Hopper", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].html, "$2M-$5M")
}

func TestAssetOwnerSubmitEmailFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssetOwnerService(db, &fakeMailer{fail: true}, testNotifyTo)

	res, err := svc.Submit(context.Background(), &assetowner.SubmitPayload{
		Name:  "Grace Hopper",
		Email: "grace@example.com",
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.False(t, res.EmailSent)

	var row domain.AssetOwnerInquiry
	require.NoError(t, db.First(&row, "id = ?", res.ID).Error)
	assert.False(t, row.EmailSent)
}

func TestAssetOwnerSubmitEmptyOptionalFields(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewAssetOwnerService(db, mailer, testNotifyTo)

	res, err := svc.Submit(context.Background(), &assetowner.SubmitPayload{
		Name:  "Grace Hopper",
		Email: "grace@example.com",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)

	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].text, "Approximate Inventory Value: Not specified")
	assert.Contains(t, mailer.sent[0].text, "Not provided")
}

func TestAssetOwnerSubmitPersistenceFailure(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewAssetOwnerService(db, mailer, testNotifyTo)

	require.NoError(t, db.Migrator().DropTable(&domain.AssetOwnerInquiry{}))

	res, err := svc.Submit(context.Background(), &assetowner.SubmitPayload{Name: "Grace Hopper"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, apperrors.IsPersistence(err))
	assert.Empty(t, mailer.sent)
}

func TestAssetOwnerList(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssetOwnerService(db, &fakeMailer{}, testNotifyTo)

	for _, name := range []string{"a", "b"} {
		require.NoError(t, db.Create(&domain.AssetOwnerInquiry{
			Name:  name,
			Email: name + "@example.com",
		}).Error)
	}

	results, err := svc.List(context.Background(), &assetowner.ListPayload{Skip: 0, Limit: 100})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	page, err := svc.List(context.Background(), &assetowner.ListPayload{Skip: 0, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, page, 1)
}
