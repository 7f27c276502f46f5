package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"plumtrips-backend/database"
	"plumtrips-backend/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type mapKV struct {
	data map[string]string
}

func newMapKV() *mapKV { return &mapKV{data: map[string]string{}} }

func (m *mapKV) Get(ctx context.Context, key string) (string, error) {
	return m.data[key], nil
}

func (m *mapKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *mapKV) Del(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// failingKV simulates Redis being down mid-request.
type failingKV struct{}

func (failingKV) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("connection refused")
}

func (failingKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return errors.New("connection refused")
}

func (failingKV) Del(ctx context.Context, key string) error {
	return errors.New("connection refused")
}

func swapDrafts(t *testing.T, kv services.KV) {
	t.Helper()
	old := services.Drafts
	services.Drafts = services.NewDraftStore(kv)
	t.Cleanup(func() { services.Drafts = old })
}

func stubInviteDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	old := database.DB
	database.DB = gdb
	t.Cleanup(func() {
		database.DB = old
		db.Close()
	})
	return mock
}

func openInviteRows(token string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "token", "kind", "status", "invitee_email", "expires_at"}).
		AddRow(uuid.NewString(), token, "employee", "pending", "a@b.com", time.Now().Add(time.Hour))
}

func draftRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/onboarding/draft/:token", GetDraft)
	r.POST("/onboarding/draft/:token", SaveDraft)
	return r
}

func TestSaveDraftCheckpointsForm(t *testing.T) {
	mock := stubInviteDB(t)
	kv := newMapKV()
	swapDrafts(t, kv)

	mock.ExpectQuery(`SELECT \* FROM "invites"`).WillReturnRows(openInviteRows("tok-1"))

	body, _ := json.Marshal(gin.H{
		"core":        gin.H{"fullName": "Asha"},
		"attachments": []gin.H{{"name": "pan.pdf", "docType": "pan"}},
	})
	req := httptest.NewRequest(http.MethodPost, "/onboarding/draft/tok-1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	draftRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)

	draft, found := services.Drafts.Load(context.Background(), "tok-1")
	require.True(t, found)
	assert.Equal(t, "Asha", draft.Core["fullName"])
	require.Len(t, draft.Attachments, 1)
	assert.Equal(t, "pan", draft.Attachments[0].DocType)
}

func TestSaveDraftAlwaysAcceptedWhenStoreDown(t *testing.T) {
	mock := stubInviteDB(t)
	swapDrafts(t, failingKV{})

	mock.ExpectQuery(`SELECT \* FROM "invites"`).WillReturnRows(openInviteRows("tok-1"))

	body, _ := json.Marshal(gin.H{"core": gin.H{"fullName": "Asha"}})
	req := httptest.NewRequest(http.MethodPost, "/onboarding/draft/tok-1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	draftRouter().ServeHTTP(w, req)

	// Draft saves are best-effort: a dead store must never surface.
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestGetDraftEmptyWhenNoneSaved(t *testing.T) {
	mock := stubInviteDB(t)
	swapDrafts(t, newMapKV())

	mock.ExpectQuery(`SELECT \* FROM "invites"`).WillReturnRows(openInviteRows("tok-1"))

	req := httptest.NewRequest(http.MethodGet, "/onboarding/draft/tok-1", nil)
	w := httptest.NewRecorder()
	draftRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    services.Draft `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data.Core)
	assert.Empty(t, resp.Data.Core)
}

func TestGetDraftReturnsSavedForm(t *testing.T) {
	mock := stubInviteDB(t)
	kv := newMapKV()
	swapDrafts(t, kv)
	services.Drafts.Save(context.Background(), "tok-1", services.Draft{
		Core: map[string]any{"fullName": "Asha"},
	})

	mock.ExpectQuery(`SELECT \* FROM "invites"`).WillReturnRows(openInviteRows("tok-1"))

	req := httptest.NewRequest(http.MethodGet, "/onboarding/draft/tok-1", nil)
	w := httptest.NewRecorder()
	draftRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data services.Draft `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Asha", resp.Data.Core["fullName"])
}

func TestDraftEndpointsRejectUnknownToken(t *testing.T) {
	mock := stubInviteDB(t)
	swapDrafts(t, newMapKV())

	mock.ExpectQuery(`SELECT \* FROM "invites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest(http.MethodGet, "/onboarding/draft/nope", nil)
	w := httptest.NewRecorder()
	draftRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDraftEndpointsRejectExpiredInvite(t *testing.T) {
	mock := stubInviteDB(t)
	swapDrafts(t, newMapKV())

	expired := sqlmock.NewRows([]string{"id", "token", "kind", "status", "invitee_email", "expires_at"}).
		AddRow(uuid.NewString(), "tok-1", "employee", "pending", "a@b.com", time.Now().Add(-time.Hour))
	mock.ExpectQuery(`SELECT \* FROM "invites"`).WillReturnRows(expired)

	req := httptest.NewRequest(http.MethodGet, "/onboarding/draft/tok-1", nil)
	w := httptest.NewRecorder()
	draftRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusGone, w.Code)
}
