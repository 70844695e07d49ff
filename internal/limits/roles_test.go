package limits

import "testing"

func TestProviderModelRolePrecedence(t *testing.T) {
	cfg := map[string]string{
		"provider":       "anthropic",
		"model":          "m2",
		"research_model": "m1",
	}

	_, model := ProviderModel(cfg, RoleResearch)
	if model != "m1" {
		t.Fatalf("research role should pick research_model, got %q", model)
	}

	_, model = ProviderModel(cfg, RoleDefault)
	if model != "m2" {
		t.Fatalf("default role should pick model, got %q", model)
	}
}

func TestProviderModelEmptyRoleKeyFallsBack(t *testing.T) {
	cfg := map[string]string{
		"provider":         "anthropic",
		"model":            "m2",
		"planner_provider": "",
		"planner_model":    "",
	}

	provider, model := ProviderModel(cfg, RolePlanner)
	if provider != "anthropic" || model != "m2" {
		t.Fatalf("empty role keys should fall back, got %q/%q", provider, model)
	}
}

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"research", RoleResearch},
		{"planner", RolePlanner},
		{"default", RoleDefault},
		{"", RoleDefault},
		{"bogus", RoleDefault},
	}
	for _, tc := range cases {
		if got := ParseRole(tc.in); got != tc.want {
			t.Fatalf("ParseRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsReasoningFamily(t *testing.T) {
	if !IsReasoningFamily("claude-3-7-sonnet-20250219") {
		t.Fatalf("claude-3-7 should be a reasoning family model")
	}
	if IsReasoningFamily("claude-3-5-sonnet-20241022") {
		t.Fatalf("claude-3-5 should not be a reasoning family model")
	}
}
