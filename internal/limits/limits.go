// Package limits resolves the maximum input-token budget for a
// provider/model configuration.
//
// Resolution consults, in order: a live configuration snapshot when one is
// available, a model metadata provider, and a static fallback catalog.
// Resolve never fails; every collaborator error is absorbed and the next
// source is consulted, so the worst outcome is an unknown limit.
package limits

import (
	"log/slog"
	"strings"
)

// ModelInfo is the metadata subset the resolver needs.
type ModelInfo struct {
	MaxInputTokens int
}

// InfoProvider is the external model metadata collaborator. It may fail
// for unknown identifiers; failures trigger the fallback catalog.
type InfoProvider interface {
	ModelInfo(identifier string) (ModelInfo, error)
}

// ConfigStore supplies a live configuration snapshot. It fails when no
// active session exists, in which case the caller-supplied configuration
// is used instead.
type ConfigStore interface {
	All() (map[string]string, error)
}

// ModelHandle describes a live model binding: its identifier and,
// when set, the output-token allocation reserved for the model.
type ModelHandle struct {
	Model           string
	MaxOutputTokens int
}

// Resolver holds the collaborators consulted during resolution. The zero
// value resolves from the builtin catalog alone.
type Resolver struct {
	store    ConfigStore
	provider InfoProvider
	catalog  Catalog
	logger   *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithStore sets the live configuration store.
func WithStore(store ConfigStore) Option {
	return func(r *Resolver) { r.store = store }
}

// WithProvider sets the model metadata provider.
func WithProvider(provider InfoProvider) Option {
	return func(r *Resolver) { r.provider = provider }
}

// WithCatalog replaces the builtin fallback catalog.
func WithCatalog(catalog Catalog) Option {
	return func(r *Resolver) { r.catalog = catalog }
}

// WithLogger sets the logger used for absorbed failures.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// NewResolver builds a Resolver with the given options.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{catalog: DefaultCatalog, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	if r.catalog == nil {
		r.catalog = DefaultCatalog
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Resolve determines the input-token budget for the configuration and
// role. The boolean reports whether a limit is known. Resolve never
// panics through to the caller; unexpected failures are logged and
// reported as unknown.
func (r *Resolver) Resolve(cfg map[string]string, role Role, handle *ModelHandle) (limit int, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn("limit resolution failed", "panic", rec)
			limit, ok = 0, false
		}
	}()

	// A live snapshot is authoritative when one can be obtained. Failure
	// here is local: resolution continues with the supplied configuration.
	if r.store != nil {
		if snapshot, err := r.store.All(); err == nil {
			cfg = snapshot
		} else {
			r.logger.Debug("no live configuration snapshot", "error", err)
		}
	}

	provider, model := ProviderModel(cfg, role)
	identifier := model
	if provider != "" {
		identifier = provider + "/" + model
	}

	if r.provider != nil {
		info, err := r.provider.ModelInfo(identifier)
		if err == nil && info.MaxInputTokens > 0 {
			r.logger.Debug("using provider token limit",
				"model", identifier, "max_input_tokens", info.MaxInputTokens)
			return adjustReasoningBudget(info.MaxInputTokens, handle, r.logger), true
		}
		if err != nil {
			r.logger.Debug("model metadata lookup failed, using fallback catalog",
				"model", identifier, "error", err)
		}
	}

	entry, found := r.catalog.Lookup(provider, model)
	if !found {
		r.logger.Debug("no token limit found", "provider", provider, "model", model)
		return 0, false
	}
	r.logger.Debug("using catalog token limit",
		"provider", provider, "model", model, "token_limit", entry.TokenLimit)
	return adjustReasoningBudget(entry.TokenLimit, handle, r.logger), true
}

// Resolve resolves a limit with a one-off Resolver.
func Resolve(cfg map[string]string, role Role, handle *ModelHandle, opts ...Option) (int, bool) {
	return NewResolver(opts...).Resolve(cfg, role, handle)
}

// adjustReasoningBudget deducts the model's output allocation from the
// input budget for extended-reasoning models, which count output tokens
// against the same budget as input. A zero limit passes through
// unchanged.
func adjustReasoningBudget(maxInputTokens int, handle *ModelHandle, logger *slog.Logger) int {
	if maxInputTokens == 0 {
		return maxInputTokens
	}
	if handle == nil || handle.MaxOutputTokens <= 0 {
		return maxInputTokens
	}
	if !IsReasoningFamily(handle.Model) {
		return maxInputTokens
	}
	effective := maxInputTokens - handle.MaxOutputTokens
	logger.Debug("adjusting token limit for reasoning model",
		"model", handle.Model,
		"max_input_tokens", maxInputTokens,
		"max_output_tokens", handle.MaxOutputTokens,
		"effective", effective)
	return effective
}

// reasoningFamilies are normalized name fragments of model families whose
// reasoning output draws from the input budget.
var reasoningFamilies = []string{
	"claude37",
	"claude3.7",
}

// IsReasoningFamily reports whether the model identifier belongs to an
// extended-reasoning family.
func IsReasoningFamily(model string) bool {
	normalized := NormalizeModelName(strings.ToLower(model))
	for _, family := range reasoningFamilies {
		if strings.Contains(normalized, family) {
			return true
		}
	}
	return false
}

// NormalizeModelName strips hyphens so catalog keys match naming variants
// such as "claude-2" and "claude2".
func NormalizeModelName(model string) string {
	return strings.ReplaceAll(model, "-", "")
}
