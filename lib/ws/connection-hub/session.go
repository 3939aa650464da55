package connectionhub

import (
	"context"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

// watcherSession owns one websocket connection. Writes go through sendCh
// so only the session goroutine ever touches the connection.
type watcherSession struct {
	conn *websocket.Conn

	sendCh chan any
	stop   func()
}

func newSession(conn *websocket.Conn) watcherSession {
	ctx, cancelFn := context.WithCancel(context.TODO())
	sess := watcherSession{
		stop:   cancelFn,
		conn:   conn,
		sendCh: make(chan any, 8),
	}
	go sess.startSend(ctx)
	return sess
}

func (s watcherSession) startSend(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.close()
			return
		case msg, opened := <-s.sendCh:
			if !opened {
				return
			}
			if err := s.send(msg); err != nil {
				log.WithError(err).Error("failed to send ws message")
			}
		}
	}
}

func (s watcherSession) send(msg interface{}) error {
	if s.conn.Conn == nil {
		return nil
	}
	return s.conn.WriteJSON(msg)
}

func (s watcherSession) close() {
	if s.conn == nil || s.conn.Conn == nil {
		return
	}
	err := s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Millisecond))
	if err != nil {
		log.WithError(err).Error("failed to close ws connection")
	}
}
