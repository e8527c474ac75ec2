package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Process holds the schema definition for a monitoring process.
// A process owns the pipeline run: its filter, its deadline, and the four
// stage task handles the scheduler uses to detect in-flight workers.
type Process struct {
	ent.Schema
}

// Fields of the Process.
func (Process) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("process_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Owner; every read through the pipeline is scoped to it"),

		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional().
			Nillable(),

		// Lifecycle
		field.Enum("status").
			Values("stopped", "running", "failed").
			Default("stopped"),
		field.Int("max_duration_minutes").
			Comment("Wall-clock budget, 1..1440"),
		field.Bool("generate_only").
			Default(false).
			Comment("Skip the Posting stage; items terminate in 'generated'"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("stopped_at").
			Optional().
			Nillable(),
		field.Time("expires_at").
			Optional().
			Nillable().
			Comment("started_at + max_duration_minutes, set on start"),
		field.String("stop_reason").
			Optional().
			Nillable().
			Comment("'manual', 'timeout', 'stage_error', 'generate_only_complete'"),
		field.String("error_message").
			Optional().
			Nillable(),

		// Discovery filter, passed verbatim to the upstream index
		field.String("filter_tab").
			Optional().
			Nillable().
			Comment("'home', 'alle', or a numeric classroom id"),
		field.Int("filter_category_id").
			Optional().
			Nillable(),
		field.Int("filter_task_id").
			Optional().
			Nillable(),
		field.String("filter_search").
			Optional().
			Nillable().
			Comment("Client-side title substring filter"),
		field.String("filter_sort").
			Optional().
			Nillable(),
		field.Int("article_limit").
			Default(0).
			Comment("0 falls back to the configured default limit"),

		// Stage task handles; non-empty while a worker for the stage may
		// still be in flight. Cleared on stop.
		field.String("discovery_task_id").
			Optional().
			Nillable(),
		field.String("preparation_task_id").
			Optional().
			Nillable(),
		field.String("generation_task_id").
			Optional().
			Nillable(),
		field.String("posting_task_id").
			Optional().
			Nillable(),

		field.String("llm_config_id"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Process.
func (Process) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("work_items", WorkItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("llm_config", LLMProviderConfig.Type).
			Field("llm_config_id").
			Unique().
			Required(),
		edge.To("logins", UpstreamLogin.Type).
			StorageKey(edge.Table("process_logins"), edge.Columns("process_id", "login_id")),
		edge.To("prompt_templates", PromptTemplate.Type).
			StorageKey(edge.Table("process_prompts"), edge.Columns("process_id", "prompt_template_id")),
	}
}

// Indexes of the Process.
func (Process) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
	}
}
