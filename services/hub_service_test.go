package services

import (
	"encoding/json"
	"testing"
	"time"

	"inkwell/models"
)

func TestBroadcastEventReachesSubscribers(t *testing.T) {
	hub := NewHubService()

	client := &models.Client{ID: "subscriber", Hub: hub.GetHub(), Send: make(chan []byte, 1)}
	hub.GetHub().Register <- client

	hub.BroadcastEvent("post_published", map[string]string{"title": "hello"})

	select {
	case payload := <-client.Send:
		var event models.Event
		if err := json.Unmarshal(payload, &event); err != nil {
			t.Fatalf("decode event: %v", err)
		}
		if event.Type != "post_published" {
			t.Fatalf("event type = %q, want post_published", event.Type)
		}
		data, ok := event.Data.(map[string]interface{})
		if !ok || data["title"] != "hello" {
			t.Fatalf("event data = %+v", event.Data)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber received no event")
	}
}

func TestUnregisterClosesClient(t *testing.T) {
	hub := NewHubService()

	client := &models.Client{ID: "leaver", Hub: hub.GetHub(), Send: make(chan []byte, 1)}
	hub.GetHub().Register <- client
	hub.GetHub().Unregister <- client

	select {
	case _, open := <-client.Send:
		if open {
			t.Fatal("send channel still open after unregister")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel not closed after unregister")
	}

	// Later broadcasts must not reach the departed client.
	hub.BroadcastEvent("comment_created", map[string]string{"content": "late"})
}
