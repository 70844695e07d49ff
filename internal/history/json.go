package history

import (
	"encoding/json"
	"fmt"
)

// messageJSON is the wire shape of a transcript entry. Content is either a
// plain string or a list of content blocks.
type messageJSON struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

// MarshalJSON encodes the message with string content for Text and a block
// list for Blocks.
func (m Message) MarshalJSON() ([]byte, error) {
	var content any
	switch value := m.Content.(type) {
	case Text:
		content = value.Text
	case Blocks:
		content = value.Blocks
	case nil:
		content = ""
	default:
		return nil, fmt.Errorf("history: unsupported content type %T", m.Content)
	}
	return json.Marshal(struct {
		Role    string `json:"role"`
		Content any    `json:"content"`
	}{Role: string(m.Role), Content: content})
}

// UnmarshalJSON decodes string content into Text and array content into
// Blocks.
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw messageJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("history: parse message: %w", err)
	}
	m.Role = Role(raw.Role)
	if len(raw.Content) == 0 {
		m.Content = Text{}
		return nil
	}
	switch raw.Content[0] {
	case '[':
		var blocks []Block
		if err := json.Unmarshal(raw.Content, &blocks); err != nil {
			return fmt.Errorf("history: parse content blocks: %w", err)
		}
		m.Content = Blocks{Blocks: blocks}
	default:
		var text string
		if err := json.Unmarshal(raw.Content, &text); err != nil {
			return fmt.Errorf("history: parse content: %w", err)
		}
		m.Content = Text{Text: text}
	}
	return nil
}

// ParseTranscript decodes a JSON array of messages.
func ParseTranscript(data []byte) ([]Message, error) {
	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("history: parse transcript: %w", err)
	}
	return messages, nil
}

// EncodeTranscript encodes messages as an indented JSON array.
func EncodeTranscript(messages []Message) ([]byte, error) {
	if messages == nil {
		messages = []Message{}
	}
	return json.MarshalIndent(messages, "", "  ")
}
