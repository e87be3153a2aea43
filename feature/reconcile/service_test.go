package reconcile

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"store-sync/core/mailer"
	"store-sync/core/stores"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

type fakeSource struct {
	files map[string]string
}

func (f *fakeSource) Download(remotePath string, w io.Writer) error {
	content, ok := f.files[remotePath]
	if !ok {
		return errors.New("550 no such file")
	}
	_, err := io.WriteString(w, content)
	return err
}

func (f *fakeSource) Close() {}

type fakeNotifier struct {
	messages []mailer.Message
	// attachment content captured at send time, before cleanup runs
	attachments []string
	err         error
}

func (n *fakeNotifier) Send(_ context.Context, msg mailer.Message) error {
	if n.err != nil {
		return n.err
	}
	content, err := os.ReadFile(msg.AttachmentPath)
	if err != nil {
		return err
	}
	n.messages = append(n.messages, msg)
	n.attachments = append(n.attachments, string(content))
	return nil
}

func testStore() stores.Store {
	return stores.Store{
		ID:           1,
		Code:         "0001",
		Name:         "northgate",
		Recipient:    "inventory.northgate@partsdepot.example",
		SnapshotFile: "PICKERNORTHGATE.csv",
	}
}

func TestService_Run_ReportsDiscrepancies(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"name", "count"}).AddRow("B2", 3)
	mock.ExpectQuery("SELECT name, COUNT\\(name\\)").
		WithArgs("unknown", 1).
		WillReturnRows(rows)

	snapshot := "Part Number,Quantity on Hand\n" +
		"\"A-1\",\"1,500\"\n" +
		"B2,3\n"
	src := &fakeSource{files: map[string]string{"/PICKERNORTHGATE.csv": snapshot}}
	notifier := &fakeNotifier{}

	svc := NewService(db, []stores.Store{testStore()}, func() (Source, error) {
		return src, nil
	}, notifier, nil, "unknown", zap.NewNop())

	require.NoError(t, svc.Run(context.Background()))
	require.Len(t, notifier.messages, 1)

	msg := notifier.messages[0]
	assert.Equal(t, "inventory.northgate@partsdepot.example", msg.To)
	assert.Contains(t, msg.Subject, "northgate")
	assert.Contains(t, msg.Body, "1 inventory discrepancies")

	// B2 matches and is absent; A1 appears with the snapshot surplus.
	report := notifier.attachments[0]
	assert.Contains(t, report, "Item Name,Database Count,CSV Count,Difference")
	assert.Contains(t, report, "A1,0,1500,1500")
	assert.NotContains(t, report, "B2")

	// The local report is gone once the run finishes.
	_, err := os.Stat(msg.AttachmentPath)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Run_NoDiscrepanciesSkipsMail(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"name", "count"}).AddRow("A1", 2)
	mock.ExpectQuery("SELECT name, COUNT\\(name\\)").WillReturnRows(rows)

	src := &fakeSource{files: map[string]string{
		"/PICKERNORTHGATE.csv": "Part Number,Quantity on Hand\nA1,2\n",
	}}
	notifier := &fakeNotifier{}

	svc := NewService(db, []stores.Store{testStore()}, func() (Source, error) {
		return src, nil
	}, notifier, nil, "unknown", zap.NewNop())

	require.NoError(t, svc.Run(context.Background()))
	assert.Empty(t, notifier.messages)
}

func TestService_Run_StoreFailuresAreIsolated(t *testing.T) {
	db, mock := setupMockDB(t)

	// First store fails at the database step; the second still runs clean.
	mock.ExpectQuery("SELECT name, COUNT\\(name\\)").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectQuery("SELECT name, COUNT\\(name\\)").
		WillReturnRows(sqlmock.NewRows([]string{"name", "count"}).AddRow("A1", 1))

	second := testStore()
	second.ID = 2
	second.Name = "southridge"
	second.SnapshotFile = "PICKERSOUTHRIDGE.csv"

	src := &fakeSource{files: map[string]string{
		"/PICKERSOUTHRIDGE.csv": "Part Number,Quantity on Hand\nA1,1\n",
	}}
	notifier := &fakeNotifier{}

	svc := NewService(db, []stores.Store{testStore(), second}, func() (Source, error) {
		return src, nil
	}, notifier, nil, "unknown", zap.NewNop())

	err := svc.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "northgate")
	assert.NotContains(t, strings.TrimPrefix(err.Error(), "reconciliation failed for: "), "southridge")
	assert.NoError(t, mock.ExpectationsWereMet())
}
