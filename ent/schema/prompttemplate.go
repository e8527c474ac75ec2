package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptTemplate holds the schema definition for a prompt template.
// SYSTEM templates have no owner and are read-only; USER templates belong
// to exactly one user.
type PromptTemplate struct {
	ent.Schema
}

// Fields of the PromptTemplate.
func (PromptTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prompt_template_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional().
			Nillable().
			Comment("null for shared SYSTEM templates"),
		field.Enum("category").
			Values("SYSTEM", "USER").
			Default("USER"),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional().
			Nillable(),
		field.Text("system_prompt"),
		field.Text("user_prompt_template").
			Comment("Uses {placeholder} markers from the closed placeholder set"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PromptTemplate.
func (PromptTemplate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("processes", Process.Type).
			Ref("prompt_templates"),
	}
}

// Indexes of the PromptTemplate.
func (PromptTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("category"),
	}
}
