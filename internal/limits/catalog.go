package limits

// Entry is a fallback catalog record for a provider/model pair.
type Entry struct {
	TokenLimit int
}

// Catalog is the static fallback table: provider name to normalized model
// name to limits. Model keys carry no hyphens; lookups normalize the
// queried name the same way.
type Catalog map[string]map[string]Entry

// Lookup returns the entry for a provider and model name, normalizing the
// model name first.
func (c Catalog) Lookup(provider, model string) (Entry, bool) {
	models, ok := c[provider]
	if !ok {
		return Entry{}, false
	}
	entry, ok := models[NormalizeModelName(model)]
	return entry, ok
}

// DefaultCatalog is loaded at process start and read-only thereafter. It
// covers the models most likely to be missing from metadata providers.
var DefaultCatalog = Catalog{
	"anthropic": {
		"claude2":                Entry{TokenLimit: 100_000},
		"claude2.1":              Entry{TokenLimit: 200_000},
		"claude3opus20240229":    Entry{TokenLimit: 200_000},
		"claude3sonnet20240229":  Entry{TokenLimit: 200_000},
		"claude3haiku20240307":   Entry{TokenLimit: 200_000},
		"claude35sonnet20240620": Entry{TokenLimit: 200_000},
		"claude35sonnet20241022": Entry{TokenLimit: 200_000},
		"claude37sonnet20250219": Entry{TokenLimit: 200_000},
	},
	"openai": {
		"gpt4":        Entry{TokenLimit: 8_192},
		"gpt4turbo":   Entry{TokenLimit: 128_000},
		"gpt4o":       Entry{TokenLimit: 128_000},
		"gpt4omini":   Entry{TokenLimit: 128_000},
		"gpt3.5turbo": Entry{TokenLimit: 16_385},
		"o1":          Entry{TokenLimit: 200_000},
		"o1mini":      Entry{TokenLimit: 128_000},
	},
	"openrouter": {
		"deepseek/deepseekchat":     Entry{TokenLimit: 64_000},
		"deepseek/deepseekreasoner": Entry{TokenLimit: 64_000},
	},
	"gemini": {
		"gemini1.5pro":   Entry{TokenLimit: 2_097_152},
		"gemini1.5flash": Entry{TokenLimit: 1_048_576},
		"gemini2.0flash": Entry{TokenLimit: 1_048_576},
	},
}
