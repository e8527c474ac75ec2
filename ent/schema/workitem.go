package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkItem holds the schema definition for the WorkItem entity, the only
// entity carrying pipeline state. One row per (process, article, login);
// the unique index on that triple is the deduplication and at-most-once
// posting guarantee.
type WorkItem struct {
	ent.Schema
}

// Fields of the WorkItem.
func (WorkItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("item_id").
			Unique().
			Immutable(),
		field.String("process_id").
			Immutable(),
		field.String("login_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("article_id").
			Immutable().
			Comment("Upstream article identifier from /article/{id}/ hrefs"),

		field.String("prompt_template_id").
			Optional().
			Nillable(),
		field.String("llm_config_id").
			Optional().
			Nillable(),

		// Article snapshot, written once during Preparation
		field.String("article_title").
			Optional().
			Nillable(),
		field.String("article_author").
			Optional().
			Nillable(),
		field.Int("article_category_id").
			Optional().
			Nillable().
			Comment("Never inferred from the index page; filled from the detail page"),
		field.Int("article_task_id").
			Optional().
			Nillable(),
		field.String("article_url").
			Optional().
			Nillable(),
		field.Text("article_content").
			Optional().
			Nillable(),
		field.Text("article_html").
			Optional().
			Nillable().
			Comment("Raw article div with textarea children stripped"),
		field.Time("article_published_at").
			Optional().
			Nillable(),
		field.Time("article_edited_at").
			Optional().
			Nillable(),
		field.Time("scraped_at").
			Optional().
			Nillable(),

		// Generated comment, written during Generation
		field.Text("comment_text").
			Optional().
			Nillable().
			Comment("Always starts with the configured AI disclosure prefix"),
		field.String("llm_model_name").
			Optional().
			Nillable(),
		field.String("llm_provider_name").
			Optional().
			Nillable(),
		field.Int("generation_tokens").
			Optional().
			Nillable(),
		field.Int("generation_time_ms").
			Optional().
			Nillable(),

		field.String("upstream_comment_id").
			Optional().
			Nillable().
			Comment("Synthesised: {article_id}-{unix_seconds}-{item id prefix}"),

		// Lifecycle
		field.Enum("status").
			Values("discovered", "prepared", "generated", "posted", "failed", "deleted").
			Default("discovered"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("posted_at").
			Optional().
			Nillable(),
		field.Time("failed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
	}
}

// Edges of the WorkItem.
func (WorkItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("process", Process.Type).
			Ref("work_items").
			Field("process_id").
			Unique().
			Required().
			Immutable(),
		edge.From("login", UpstreamLogin.Type).
			Ref("work_items").
			Field("login_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkItem.
func (WorkItem) Indexes() []ent.Index {
	return []ent.Index{
		// At-most-once per fanout target
		index.Fields("process_id", "article_id", "login_id").
			Unique(),
		// Stage workers read by (process, status), ordered by created_at
		index.Fields("process_id", "status"),
		index.Fields("user_id"),
	}
}
