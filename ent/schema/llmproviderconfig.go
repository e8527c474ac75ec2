package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMProviderConfig holds the schema definition for an LLM provider account:
// provider tag, model, encrypted API key, and generation parameters.
type LLMProviderConfig struct {
	ent.Schema
}

// Fields of the LLMProviderConfig.
func (LLMProviderConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("llm_config_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("provider").
			Values("openai", "mistral"),
		field.String("model_name").
			NotEmpty(),
		field.String("api_key_encrypted").
			Sensitive(),
		field.Int("max_tokens").
			Default(300),
		field.Float("temperature").
			Default(0.7),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the LLMProviderConfig.
func (LLMProviderConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
