package domain

// Author tells who wrote a conversation log entry
type Author string

const (
	AuthorUser Author = "user"
	AuthorBot  Author = "bot"
)

// Message is one entry of the assistant conversation log
type Message struct {
	Author Author
	Text   string
}
