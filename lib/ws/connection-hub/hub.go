package connectionhub

import (
	"sync"

	"github.com/gofiber/contrib/websocket"

	wsmodels "crewtime-backend/models/ws"
)

type Provider interface {
	AddWatcher(userID string, conn *websocket.Conn)
	DeleteWatcher(userID string)
	Broadcast(msg wsmodels.LocationUpdate)
	SendClose(userID string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		watchers: map[string]watcherSession{},
	}
}

type impl struct {
	mu       sync.RWMutex
	watchers map[string]watcherSession //map[userID]
}

func (i *impl) AddWatcher(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	oldSess, ok := i.watchers[userID]
	if ok {
		oldSess.stop()
	}
	i.watchers[userID] = newSession(conn)
}

func (i *impl) DeleteWatcher(userID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.watchers[userID]
	if !ok {
		return
	}
	delete(i.watchers, userID)
	sess.stop()
	close(sess.sendCh)
}

// Broadcast delivers the update to every connected watcher except the
// employee it describes. A watcher with a full buffer is skipped rather
// than blocking the ingestion path.
func (i *impl) Broadcast(msg wsmodels.LocationUpdate) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	for userID, sess := range i.watchers {
		if userID == msg.UserID {
			continue
		}
		select {
		case sess.sendCh <- msg:
		default:
		}
	}
}

func (i *impl) SendClose(userID string) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.watchers[userID]
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.watchers[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}
