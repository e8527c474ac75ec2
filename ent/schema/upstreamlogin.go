package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UpstreamLogin holds the schema definition for a stored upstream platform
// credential. Username and password are vault-encrypted at rest; plaintext
// exists only transiently inside the session registry.
type UpstreamLogin struct {
	ent.Schema
}

// Fields of the UpstreamLogin.
func (UpstreamLogin) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("login_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("name").
			NotEmpty().
			Comment("Display name; never the upstream username"),
		field.String("username_encrypted").
			Sensitive(),
		field.String("password_encrypted").
			Sensitive(),
		field.Bool("is_admin").
			Default(false).
			Comment("Permits the out-of-pipeline backup feature; ignored here"),
		field.Bool("is_active").
			Default(true),
		field.Time("last_used_at").
			Optional().
			Nillable().
			Comment("Bumped on successful authentication"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the UpstreamLogin.
func (UpstreamLogin) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("work_items", WorkItem.Type),
		edge.From("processes", Process.Type).
			Ref("logins"),
	}
}

// Indexes of the UpstreamLogin.
func (UpstreamLogin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
