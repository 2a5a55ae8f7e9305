package services

import (
	"encoding/json"
	"log"

	"inkwell/models"
)

// HubService fans out feed events (new published posts, new comments) to
// every connected websocket client.
type HubService struct {
	hub *models.Hub
}

func NewHubService() *HubService {
	service := &HubService{hub: models.NewHub()}
	go service.Run()
	return service
}

func (h *HubService) GetHub() *models.Hub {
	return h.hub
}

func (h *HubService) Run() {
	for {
		select {
		case client := <-h.hub.Register:
			h.hub.Clients[client] = true

		case client := <-h.hub.Unregister:
			if _, ok := h.hub.Clients[client]; ok {
				delete(h.hub.Clients, client)
				close(client.Send)
			}

		case message := <-h.hub.Broadcast:
			for client := range h.hub.Clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.hub.Clients, client)
				}
			}
		}
	}
}

// BroadcastEvent publishes a typed event to all subscribers. Marshal
// failures are logged and dropped; the feed is best-effort.
func (h *HubService) BroadcastEvent(eventType string, data interface{}) {
	payload, err := json.Marshal(models.Event{Type: eventType, Data: data})
	if err != nil {
		log.Printf("Error marshaling %s event: %v", eventType, err)
		return
	}
	h.hub.Broadcast <- payload
}
