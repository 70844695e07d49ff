// Package history models conversational message histories and their
// conversion into the flat records expected by token counting services.
package history

// Role identifies the author of a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Content is a single typed content payload of a message.
type Content interface {
	content()
}

// Text holds plain text content.
type Text struct {
	Text string
}

// content marks Text as Content.
func (Text) content() {}

// Blocks holds structured content blocks.
type Blocks struct {
	Blocks []Block
}

// content marks Blocks as Content.
func (Blocks) content() {}

// Block is one structured content element, such as a text segment or a
// tool result fragment.
type Block struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Message is one turn in a conversation history. Messages are immutable
// once created; trimming selects sub-sequences and never edits content.
type Message struct {
	Role    Role
	Content Content
}

// Record is the flat role/content shape consumed by external token
// counting services.
type Record struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ContentString flattens a message's content into plain text. Structured
// blocks are concatenated in order, separated by newlines.
func ContentString(c Content) string {
	switch value := c.(type) {
	case Text:
		return value.Text
	case Blocks:
		out := ""
		for i, block := range value.Blocks {
			if i > 0 {
				out += "\n"
			}
			out += block.Text
		}
		return out
	default:
		return ""
	}
}

// ToRecords converts messages into the flat records expected by external
// token counters.
func ToRecords(messages []Message) []Record {
	records := make([]Record, 0, len(messages))
	for _, msg := range messages {
		records = append(records, Record{
			Role:    string(msg.Role),
			Content: ContentString(msg.Content),
		})
	}
	return records
}
