package dashboard

import (
	"time"

	"github.com/meharahmadft6/educonnect/models"
)

// ChatsSection is the messages tab. Threads live only for the session;
// there is no chat transport behind it yet.
type ChatsSection struct {
	conversations []models.Conversation
	active        int
}

// NewChatsSection seeds the section with the starter threads
func NewChatsSection() *ChatsSection {
	now := time.Now()
	return &ChatsSection{
		active: 1,
		conversations: []models.Conversation{
			{
				ID:      1,
				Contact: "Sarah Johnson",
				Unread:  2,
				Messages: []models.ChatMessage{
					{From: "Sarah Johnson", Body: "Hi there! How's the project coming along?", SentAt: now.Add(-25 * time.Minute)},
					{From: "You", Body: "Going well! I've completed the frontend part, working on the backend now.", SentAt: now.Add(-23 * time.Minute)},
					{From: "Sarah Johnson", Body: "That's great to hear. Let me know if you need any help with the API integration.", SentAt: now.Add(-22 * time.Minute)},
					{From: "You", Body: "Will do. Thanks!", SentAt: now.Add(-20 * time.Minute)},
				},
			},
			{
				ID:      2,
				Contact: "Study Group",
				Messages: []models.ChatMessage{
					{From: "Alex", Body: "I'll share my notes with everyone", SentAt: now.Add(-5 * time.Hour)},
				},
			},
			{
				ID:      3,
				Contact: "Michael Chen",
				Messages: []models.ChatMessage{
					{From: "Michael Chen", Body: "Your question about the dataset was excellent", SentAt: now.Add(-24 * time.Hour)},
				},
			},
		},
	}
}

// Conversations returns all threads
func (s *ChatsSection) Conversations() []models.Conversation { return s.conversations }

// Active returns the open thread, nil when the id no longer exists
func (s *ChatsSection) Active() *models.Conversation {
	return s.find(s.active)
}

// Open switches to a thread and clears its unread counter
func (s *ChatsSection) Open(id int) {
	if conv := s.find(id); conv != nil {
		s.active = id
		conv.Unread = 0
	}
}

// Send appends a message from the learner to the open thread
func (s *ChatsSection) Send(body string) {
	conv := s.find(s.active)
	if conv == nil || body == "" {
		return
	}
	conv.Messages = append(conv.Messages, models.ChatMessage{
		From:   "You",
		Body:   body,
		SentAt: time.Now(),
	})
}

func (s *ChatsSection) find(id int) *models.Conversation {
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			return &s.conversations[i]
		}
	}
	return nil
}
