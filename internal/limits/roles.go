package limits

// Role selects which provider/model configuration entry applies.
type Role string

const (
	RoleDefault  Role = "default"
	RoleResearch Role = "research"
	RolePlanner  Role = "planner"
)

// ParseRole maps a string onto a known role, defaulting to RoleDefault.
func ParseRole(value string) Role {
	switch Role(value) {
	case RoleResearch:
		return RoleResearch
	case RolePlanner:
		return RolePlanner
	default:
		return RoleDefault
	}
}

// ProviderModel resolves the provider and model name for a role. Role
// qualified keys ("research_provider", "planner_model", ...) take
// precedence; empty or absent values fall back to the generic keys.
func ProviderModel(cfg map[string]string, role Role) (provider, model string) {
	providerKeys := []string{"provider"}
	modelKeys := []string{"model"}
	if role != RoleDefault {
		providerKeys = append([]string{string(role) + "_provider"}, providerKeys...)
		modelKeys = append([]string{string(role) + "_model"}, modelKeys...)
	}
	return firstNonEmpty(cfg, providerKeys), firstNonEmpty(cfg, modelKeys)
}

// firstNonEmpty evaluates keys in precedence order and returns the first
// non-empty value.
func firstNonEmpty(cfg map[string]string, keys []string) string {
	for _, key := range keys {
		if value := cfg[key]; value != "" {
			return value
		}
	}
	return ""
}
