package mq

import (
	"encoding/json"
	"log"

	"mvs/globals"
	"mvs/models"
	"mvs/notify"
	"mvs/rdx"
)

const orderChannel = "order-events"

// Emit publishes an order event to Redis. Fire-and-forget: a failed
// publish is logged, never surfaced to the caller.
func Emit(eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(globals.Ctx, orderChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s event to Redis: %v", eventName, err)
		return
	}
}

// StartOrderWorker forwards published order events to the admin
// notification hub. Runs until the Redis subscription closes.
func StartOrderWorker(hub *notify.Hub) {
	sub := rdx.Conn.Subscribe(globals.Ctx, orderChannel)
	ch := sub.Channel()

	log.Println("[OrderWorker] Listening for order events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[OrderWorker] Failed to parse event: %v", err)
			continue
		}
		hub.Broadcast([]byte(msg.Payload))
	}
}
