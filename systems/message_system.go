package systems

import (
	"github.com/leonelquinteros/gotext"

	"dungeon-crawl/ecs"
)

// MessageLog stores game messages
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddTyped(message, MessageTypeNormal)
}

// AddTyped adds a message of the given type to the log
func (ml *MessageLog) AddTyped(message string, t MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: t})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// SubscribeNarration writes player-facing text for game events to the log
func SubscribeNarration(events *ecs.EventManager, log *MessageLog) {
	events.Subscribe(EventCombat, func(event ecs.Event) {
		e := event.(CombatEvent)
		if e.VictimPlayer {
			log.AddTyped(gotext.Get("%s hits you for %d damage.", e.AttackerName, e.Damage), MessageTypeCombat)
			return
		}
		log.AddTyped(gotext.Get("%s hits %s for %d damage.", e.AttackerName, e.VictimName, e.Damage), MessageTypeCombat)
	})

	events.Subscribe(EventDeath, func(event ecs.Event) {
		e := event.(DeathEvent)
		log.AddTyped(gotext.Get("%s dies.", e.Name), MessageTypeCombat)
	})

	events.Subscribe(EventRest, func(event ecs.Event) {
		e := event.(RestEvent)
		if e.Healed > 0 {
			log.Add(gotext.Get("You rest and recover %d hp.", e.Healed))
		}
	})

	events.Subscribe(EventTurnState, func(event ecs.Event) {
		switch event.(TurnStateEvent).To {
		case GameOver:
			log.AddTyped(gotext.Get("Your quest has ended. Press Enter to play again."), MessageTypeAlert)
		case Victory:
			log.AddTyped(gotext.Get("You have won! You put on the Amulet of Yala. Press Enter to play again."), MessageTypeAlert)
		}
	})

	events.Subscribe(EventReset, func(event ecs.Event) {
		log.AddTyped(gotext.Get("A new dungeon awaits. Find the Amulet of Yala."), MessageTypeSystem)
	})
}
