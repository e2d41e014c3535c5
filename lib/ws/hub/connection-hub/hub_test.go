package connectionhub

import (
	"sync"
	"testing"
	dbmodels "tracker-backend/models/db"
	wsmodels "tracker-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"
)

type fakePushStore struct{}

func (f fakePushStore) Create(rec dbmodels.PushData) error         { return nil }
func (f fakePushStore) List(userID string) ([]dbmodels.PushData, error) { return nil, nil }
func (f fakePushStore) Delete(ids []string) error                  { return nil }

func newTestHub() *impl {
	return &impl{
		clients: map[string]clientSession{},
		store:   fakePushStore{},
	}
}

func TestHub(t *testing.T) {
	t.Run("отправка после удаления клиента не паникует", func(t *testing.T) {
		hub := newTestHub()
		const iterations = 2000
		msg := wsmodels.ServerMessage{ToUserID: "user-1", Msg: "событие"}

		wg := sync.WaitGroup{}
		for s := 0; s < 4; s++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for n := 0; n < iterations; n++ {
					hub.SendMessage(msg)
				}
			}()
		}
		for n := 0; n < iterations; n++ {
			hub.AddClient("user-1", &websocket.Conn{})
			hub.DeleteClient("user-1")
		}
		wg.Wait()
		require.False(t, hub.IsConnected("user-1"))
	})
	t.Run("удаление отсутствующего клиента", func(t *testing.T) {
		hub := newTestHub()
		hub.DeleteClient("user-404")
		require.False(t, hub.IsConnected("user-404"))
	})
	t.Run("сообщение без адресата пропускается", func(t *testing.T) {
		hub := newTestHub()
		hub.SendMessage(wsmodels.ServerMessage{ToUserID: "user-404", Msg: "событие"})
	})
}
