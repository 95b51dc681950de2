package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vena/backend/internal/domain/production"
	"github.com/vena/backend/internal/domain/shared"
	"github.com/vena/backend/internal/infrastructure/persistence/models"
	"github.com/vena/backend/tests/testutil"
)

func newSOPCollection(t *testing.T) (*Collection[models.SOPRow, production.SOP], *testutil.MockDB) {
	t.Helper()
	mdb := testutil.NewMockDB(t)
	t.Cleanup(func() { mdb.Close() })

	col := NewCollection(mdb.DB, zap.NewNop(), "sops", OrderOldestFirst, models.SOPRowFromRecord,
		GatewayOptions{
			Timeout:    time.Second,
			MaxRetries: 1,
			RetryDelay: time.Millisecond,
		})
	return col, mdb
}

func sopRows(ownerID uuid.UUID, titles ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "owner_id", "created_at", "updated_at", "title", "category", "content", "last_updated"})
	for _, title := range titles {
		rows.AddRow(uuid.New(), ownerID, time.Now(), time.Now(), title, "Umum", "", "")
	}
	return rows
}

func TestCollectionList(t *testing.T) {
	col, mdb := newSOPCollection(t)
	ownerID := uuid.New()

	mdb.Mock.ExpectQuery(`SELECT \* FROM "sops" WHERE owner_id = \$1 ORDER BY created_at ASC`).
		WithArgs(ownerID).
		WillReturnRows(sopRows(ownerID, "Briefing klien", "Checklist alat"))

	records, err := col.List(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Briefing klien", records[0].Title)

	mdb.ExpectationsWereMet(t)
}

func TestCollectionListRejectsNilOwner(t *testing.T) {
	col, _ := newSOPCollection(t)

	_, err := col.List(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, shared.ErrUnauthenticated)
}

func TestCollectionListRetriesThenFails(t *testing.T) {
	col, mdb := newSOPCollection(t)
	ownerID := uuid.New()

	dbErr := errors.New("connection refused")
	// One initial attempt plus one retry, then the failure surfaces.
	mdb.Mock.ExpectQuery(`SELECT \* FROM "sops"`).WillReturnError(dbErr)
	mdb.Mock.ExpectQuery(`SELECT \* FROM "sops"`).WillReturnError(dbErr)

	_, err := col.List(context.Background(), ownerID)
	require.Error(t, err)
	assert.True(t, shared.IsRemote(err))
	assert.ErrorIs(t, err, dbErr)

	mdb.ExpectationsWereMet(t)
}

func TestCollectionInsert(t *testing.T) {
	col, mdb := newSOPCollection(t)
	ownerID := uuid.New()

	mdb.Mock.ExpectExec(`INSERT INTO "sops"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	stored, err := col.Insert(context.Background(), ownerID, uuid.Nil, production.SOP{
		Title:    "Briefing klien",
		Category: "Umum",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, stored.ID, "nil record id must be replaced")
	assert.Equal(t, "Briefing klien", stored.Title)

	mdb.ExpectationsWereMet(t)
}

func TestCollectionUpdateNotFound(t *testing.T) {
	col, mdb := newSOPCollection(t)
	ownerID := uuid.New()
	id := uuid.New()

	mdb.Mock.ExpectExec(`UPDATE "sops" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := col.Update(context.Background(), ownerID, id, production.SOP{Title: "Revisi"})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	mdb.ExpectationsWereMet(t)
}

func TestCollectionUpdate(t *testing.T) {
	col, mdb := newSOPCollection(t)
	ownerID := uuid.New()
	id := uuid.New()

	mdb.Mock.ExpectExec(`UPDATE "sops" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	rows := sqlmock.NewRows([]string{"id", "owner_id", "created_at", "updated_at", "title", "category", "content", "last_updated"}).
		AddRow(id, ownerID, time.Now(), time.Now(), "Revisi", "Umum", "", "")
	mdb.Mock.ExpectQuery(`SELECT \* FROM "sops" WHERE id = \$1 AND owner_id = \$2`).
		WillReturnRows(rows)

	stored, err := col.Update(context.Background(), ownerID, id, production.SOP{Title: "Revisi"})
	require.NoError(t, err)
	assert.Equal(t, id, stored.ID)
	assert.Equal(t, "Revisi", stored.Title)

	mdb.ExpectationsWereMet(t)
}

func TestCollectionUpdateWritesClearedFields(t *testing.T) {
	col, mdb := newSOPCollection(t)
	ownerID := uuid.New()
	id := uuid.New()

	// A blanked field must still reach the SET clause; a struct update
	// would drop zero values and the remote row would keep the old text.
	mdb.Mock.ExpectExec(`UPDATE "sops" SET .*"content"=.*`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	rows := sqlmock.NewRows([]string{"id", "owner_id", "created_at", "updated_at", "title", "category", "content", "last_updated"}).
		AddRow(id, ownerID, time.Now(), time.Now(), "Briefing klien", "Umum", "", "")
	mdb.Mock.ExpectQuery(`SELECT \* FROM "sops" WHERE id = \$1 AND owner_id = \$2`).
		WillReturnRows(rows)

	stored, err := col.Update(context.Background(), ownerID, id, production.SOP{Title: "Briefing klien", Content: ""})
	require.NoError(t, err)
	assert.Empty(t, stored.Content)

	mdb.ExpectationsWereMet(t)
}

func TestCollectionDelete(t *testing.T) {
	col, mdb := newSOPCollection(t)
	ownerID := uuid.New()
	id := uuid.New()

	mdb.Mock.ExpectExec(`DELETE FROM "sops" WHERE id = \$1 AND owner_id = \$2`).
		WithArgs(id, ownerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, col.Delete(context.Background(), ownerID, id))
	mdb.ExpectationsWereMet(t)
}
