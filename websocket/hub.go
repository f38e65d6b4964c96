package websocket

import (
	"KidSpace/interfaces"
	"KidSpace/models"
	"sync"
	"time"
)

// Hub хранит активные соединения и рассылает кадры адресатам
type Hub struct {
	// Зарегистрированные клиенты по ID пользователя;
	// у одного пользователя может быть несколько вкладок
	clients map[uint]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan *outbound

	mu sync.Mutex
}

// outbound — кадр и список пользователей-адресатов
type outbound struct {
	userIDs []uint
	frame   interfaces.WebSocketMessage
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *outbound),
	}
}

// Register регистрирует нового клиента в хабе
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister отменяет регистрацию клиента
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// PushMessage доставляет сохраненное сообщение обоим участникам переписки.
// Реализует interfaces.MessagePusher
func (h *Hub) PushMessage(message models.Message) {
	h.broadcast <- &outbound{
		userIDs: []uint{message.SenderID, message.ReceiverID},
		frame: interfaces.WebSocketMessage{
			Type:      "message",
			Payload:   message,
			Timestamp: time.Now(),
		},
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.clients[client.UserID]; !ok {
				h.clients[client.UserID] = make(map[*Client]bool)
			}
			h.clients[client.UserID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.UserID]; ok {
				if _, registered := h.clients[client.UserID][client]; registered {
					delete(h.clients[client.UserID], client)
					close(client.send)
					if len(h.clients[client.UserID]) == 0 {
						delete(h.clients, client.UserID)
					}
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for _, userID := range message.userIDs {
				for client := range h.clients[userID] {
					select {
					case client.send <- message.frame:
					default:
						// Клиент не успевает читать — отключаем
						close(client.send)
						delete(h.clients[userID], client)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}
