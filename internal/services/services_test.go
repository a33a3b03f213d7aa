package services

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"billiton/internal/domain"
)

const testNotifyTo = "staff@example.com"

// newTestDB opens an in-memory SQLite database with the same schema the
// server migrates at startup.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// A second pool connection would see a different empty database.
	conn.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        ":memory:",
		Conn:       conn,
	}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.ConsultationInquiry{},
		&domain.AssetOwnerInquiry{},
		&domain.InvestorInquiry{},
	))

	return db
}

type sentEmail struct {
	to      string
	subject string
	html    string
	text    string
}

// fakeMailer records sent emails, or fails every send when fail is set.
type fakeMailer struct {
	fail bool
	sent []sentEmail
}

func (m *fakeMailer) SendHTMLEmail(to, subject, htmlBody, textBody string) error {
	if m.fail {
		return errors.New("provider unavailable")
	}
	m.sent = append(m.sent, sentEmail{to: to, subject: subject, html: htmlBody, text: textBody})
	return nil
}
