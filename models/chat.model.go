package models

import "time"

// TeacherInfo is a directory entry shown on the Teachers tab
type TeacherInfo struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Subject string  `json:"subject"`
	Avatar  string  `json:"avatar"`
	Rating  float64 `json:"rating"`
	Courses int     `json:"courses"`
	Online  bool    `json:"online"`
}

// Conversation is a chat thread with one contact. Messages live only in
// the current session; the platform has no chat persistence yet.
type Conversation struct {
	ID       int
	Contact  string
	Messages []ChatMessage
	Unread   int
}

// ChatMessage is a single message within a conversation
type ChatMessage struct {
	From   string
	Body   string
	SentAt time.Time
}
