package commentapimodels

import (
	"testing"
	"time"
	dbmodels "tracker-backend/models/db"

	"github.com/stretchr/testify/require"
)

func commentRec(id, parentID, text string, createdAt time.Time) dbmodels.Comment {
	rec := dbmodels.Comment{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			BaseModel: dbmodels.BaseModel{
				ID:        id,
				CreatedAt: createdAt,
			},
			SpaceID: "space-1",
		},
		AuthorID: "user-1",
		Text:     text,
	}
	if parentID != "" {
		rec.ParentID = &parentID
	}
	return rec
}

func TestBuildTree(t *testing.T) {
	now := time.Now()
	t.Run("пустой список", func(t *testing.T) {
		result := BuildTree(nil)
		require.Empty(t, result)
	})
	t.Run("плоский список без ответов", func(t *testing.T) {
		list := []dbmodels.Comment{
			commentRec("c1", "", "первый", now),
			commentRec("c2", "", "второй", now.Add(time.Minute)),
		}
		result := BuildTree(list)
		require.Len(t, result, 2)
		require.Equal(t, "c1", result[0].ID)
		require.Equal(t, "c2", result[1].ID)
		require.Empty(t, result[0].Replies)
	})
	t.Run("ответы уходят в ветку родителя", func(t *testing.T) {
		list := []dbmodels.Comment{
			commentRec("c1", "", "корень", now),
			commentRec("c2", "c1", "ответ", now.Add(time.Minute)),
			commentRec("c3", "c2", "ответ на ответ", now.Add(2*time.Minute)),
			commentRec("c4", "", "второй корень", now.Add(3*time.Minute)),
		}
		result := BuildTree(list)
		require.Len(t, result, 2)
		require.Equal(t, "c1", result[0].ID)
		require.Len(t, result[0].Replies, 1)
		require.Equal(t, "c2", result[0].Replies[0].ID)
		require.Len(t, result[0].Replies[0].Replies, 1)
		require.Equal(t, "c3", result[0].Replies[0].Replies[0].ID)
		require.Equal(t, "c4", result[1].ID)
	})
	t.Run("порядок создания сохраняется на уровне", func(t *testing.T) {
		list := []dbmodels.Comment{
			commentRec("c1", "", "корень", now),
			commentRec("c2", "c1", "ранний ответ", now.Add(time.Minute)),
			commentRec("c3", "c1", "поздний ответ", now.Add(2*time.Minute)),
		}
		result := BuildTree(list)
		require.Len(t, result, 1)
		require.Len(t, result[0].Replies, 2)
		require.Equal(t, "c2", result[0].Replies[0].ID)
		require.Equal(t, "c3", result[0].Replies[1].ID)
	})
}
