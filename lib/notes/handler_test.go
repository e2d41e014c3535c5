package noteshandler

import (
	"testing"
	"tracker-backend/models"
	noteapimodels "tracker-backend/models/api/note"
	dbmodels "tracker-backend/models/db"
	"tracker-backend/models/errs"

	"github.com/stretchr/testify/require"
)

func noteRec(ownerID string, shareType models.NoteShareType, sharedWith ...string) dbmodels.Note {
	return dbmodels.Note{
		OwnerID:    ownerID,
		ShareType:  shareType,
		SharedWith: sharedWith,
	}
}

func TestCanView(t *testing.T) {
	t.Run("владелец видит любую свою заметку", func(t *testing.T) {
		require.True(t, canView(noteRec("user-1", models.NoteSharePrivate), "user-1"))
		require.True(t, canView(noteRec("user-1", models.NoteShareShared), "user-1"))
	})
	t.Run("общая заметка видна всем", func(t *testing.T) {
		require.True(t, canView(noteRec("user-1", models.NoteSharePublic), "user-2"))
	})
	t.Run("личная заметка скрыта от остальных", func(t *testing.T) {
		require.False(t, canView(noteRec("user-1", models.NoteSharePrivate), "user-2"))
	})
	t.Run("заметка для избранных видна получателю", func(t *testing.T) {
		rec := noteRec("user-1", models.NoteShareShared, "user-2", "user-3")
		require.True(t, canView(rec, "user-2"))
		require.False(t, canView(rec, "user-4"))
	})
}

type fakeNotesStore struct {
	rec   *dbmodels.Note
	saved *dbmodels.Note
}

func (f *fakeNotesStore) Create(rec dbmodels.Note) (string, error) { return rec.ID, nil }
func (f *fakeNotesStore) GetByID(spaceID, id string) (*dbmodels.Note, error) {
	return f.rec, nil
}
func (f *fakeNotesStore) Save(rec *dbmodels.Note) error {
	f.saved = rec
	return nil
}
func (f *fakeNotesStore) Delete(spaceID, id string) error { return nil }
func (f *fakeNotesStore) List(spaceID, userID string) ([]dbmodels.Note, error) {
	return nil, nil
}

func TestOwnerOnlyOperations(t *testing.T) {
	title := "Новый заголовок"
	t.Run("изменение чужой заметки недоступно", func(t *testing.T) {
		rec := noteRec("user-1", models.NoteSharePublic)
		i := impl{store: &fakeNotesStore{rec: &rec}}
		err := i.Update("space-1", "user-2", "note-1", noteapimodels.NoteUpdateData{Title: &title})
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
	t.Run("удаление чужой заметки недоступно", func(t *testing.T) {
		rec := noteRec("user-1", models.NoteSharePublic)
		i := impl{store: &fakeNotesStore{rec: &rec}}
		err := i.Delete("space-1", "user-2", "note-1")
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
	t.Run("владелец меняет режим видимости", func(t *testing.T) {
		rec := noteRec("user-1", models.NoteShareShared, "user-2")
		store := &fakeNotesStore{rec: &rec}
		i := impl{store: store}
		err := i.Share("space-1", "user-1", "note-1", noteapimodels.NoteShareData{
			ShareType: models.NoteSharePrivate,
		})
		require.NoError(t, err)
		require.NotNil(t, store.saved)
		require.Equal(t, models.NoteSharePrivate, store.saved.ShareType)
		// состав получателей сбрасывается вместе с режимом
		require.Empty(t, store.saved.SharedWith)
	})
	t.Run("отсутствующая заметка", func(t *testing.T) {
		i := impl{store: &fakeNotesStore{}}
		err := i.Update("space-1", "user-1", "note-404", noteapimodels.NoteUpdateData{Title: &title})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}
