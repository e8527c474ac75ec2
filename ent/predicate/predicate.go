// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMProviderConfig is the predicate function for llmproviderconfig builders.
type LLMProviderConfig func(*sql.Selector)

// Process is the predicate function for process builders.
type Process func(*sql.Selector)

// PromptTemplate is the predicate function for prompttemplate builders.
type PromptTemplate func(*sql.Selector)

// UpstreamLogin is the predicate function for upstreamlogin builders.
type UpstreamLogin func(*sql.Selector)

// WorkItem is the predicate function for workitem builders.
type WorkItem func(*sql.Selector)
