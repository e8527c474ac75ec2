// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmProviderConfigsColumns holds the columns for the "llm_provider_configs" table.
	LlmProviderConfigsColumns = []*schema.Column{
		{Name: "llm_config_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"openai", "mistral"}},
		{Name: "model_name", Type: field.TypeString},
		{Name: "api_key_encrypted", Type: field.TypeString},
		{Name: "max_tokens", Type: field.TypeInt, Default: 300},
		{Name: "temperature", Type: field.TypeFloat64, Default: 0.7},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmProviderConfigsTable holds the schema information for the "llm_provider_configs" table.
	LlmProviderConfigsTable = &schema.Table{
		Name:       "llm_provider_configs",
		Columns:    LlmProviderConfigsColumns,
		PrimaryKey: []*schema.Column{LlmProviderConfigsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmproviderconfig_user_id",
				Unique:  false,
				Columns: []*schema.Column{LlmProviderConfigsColumns[1]},
			},
		},
	}
	// ProcessesColumns holds the columns for the "processes" table.
	ProcessesColumns = []*schema.Column{
		{Name: "process_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"stopped", "running", "failed"}, Default: "stopped"},
		{Name: "max_duration_minutes", Type: field.TypeInt},
		{Name: "generate_only", Type: field.TypeBool, Default: false},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "stopped_at", Type: field.TypeTime, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "stop_reason", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "filter_tab", Type: field.TypeString, Nullable: true},
		{Name: "filter_category_id", Type: field.TypeInt, Nullable: true},
		{Name: "filter_task_id", Type: field.TypeInt, Nullable: true},
		{Name: "filter_search", Type: field.TypeString, Nullable: true},
		{Name: "filter_sort", Type: field.TypeString, Nullable: true},
		{Name: "article_limit", Type: field.TypeInt, Default: 0},
		{Name: "discovery_task_id", Type: field.TypeString, Nullable: true},
		{Name: "preparation_task_id", Type: field.TypeString, Nullable: true},
		{Name: "generation_task_id", Type: field.TypeString, Nullable: true},
		{Name: "posting_task_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "llm_config_id", Type: field.TypeString},
	}
	// ProcessesTable holds the schema information for the "processes" table.
	ProcessesTable = &schema.Table{
		Name:       "processes",
		Columns:    ProcessesColumns,
		PrimaryKey: []*schema.Column{ProcessesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processes_llm_provider_configs_llm_config",
				Columns:    []*schema.Column{ProcessesColumns[23]},
				RefColumns: []*schema.Column{LlmProviderConfigsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "process_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProcessesColumns[1]},
			},
			{
				Name:    "process_status",
				Unique:  false,
				Columns: []*schema.Column{ProcessesColumns[4]},
			},
		},
	}
	// PromptTemplatesColumns holds the columns for the "prompt_templates" table.
	PromptTemplatesColumns = []*schema.Column{
		{Name: "prompt_template_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"SYSTEM", "USER"}, Default: "USER"},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "system_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "user_prompt_template", Type: field.TypeString, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PromptTemplatesTable holds the schema information for the "prompt_templates" table.
	PromptTemplatesTable = &schema.Table{
		Name:       "prompt_templates",
		Columns:    PromptTemplatesColumns,
		PrimaryKey: []*schema.Column{PromptTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prompttemplate_user_id",
				Unique:  false,
				Columns: []*schema.Column{PromptTemplatesColumns[1]},
			},
			{
				Name:    "prompttemplate_category",
				Unique:  false,
				Columns: []*schema.Column{PromptTemplatesColumns[2]},
			},
		},
	}
	// UpstreamLoginsColumns holds the columns for the "upstream_logins" table.
	UpstreamLoginsColumns = []*schema.Column{
		{Name: "login_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "username_encrypted", Type: field.TypeString},
		{Name: "password_encrypted", Type: field.TypeString},
		{Name: "is_admin", Type: field.TypeBool, Default: false},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UpstreamLoginsTable holds the schema information for the "upstream_logins" table.
	UpstreamLoginsTable = &schema.Table{
		Name:       "upstream_logins",
		Columns:    UpstreamLoginsColumns,
		PrimaryKey: []*schema.Column{UpstreamLoginsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "upstreamlogin_user_id",
				Unique:  false,
				Columns: []*schema.Column{UpstreamLoginsColumns[1]},
			},
		},
	}
	// WorkItemsColumns holds the columns for the "work_items" table.
	WorkItemsColumns = []*schema.Column{
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "article_id", Type: field.TypeString},
		{Name: "prompt_template_id", Type: field.TypeString, Nullable: true},
		{Name: "llm_config_id", Type: field.TypeString, Nullable: true},
		{Name: "article_title", Type: field.TypeString, Nullable: true},
		{Name: "article_author", Type: field.TypeString, Nullable: true},
		{Name: "article_category_id", Type: field.TypeInt, Nullable: true},
		{Name: "article_task_id", Type: field.TypeInt, Nullable: true},
		{Name: "article_url", Type: field.TypeString, Nullable: true},
		{Name: "article_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "article_html", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "article_published_at", Type: field.TypeTime, Nullable: true},
		{Name: "article_edited_at", Type: field.TypeTime, Nullable: true},
		{Name: "scraped_at", Type: field.TypeTime, Nullable: true},
		{Name: "comment_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "llm_model_name", Type: field.TypeString, Nullable: true},
		{Name: "llm_provider_name", Type: field.TypeString, Nullable: true},
		{Name: "generation_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "generation_time_ms", Type: field.TypeInt, Nullable: true},
		{Name: "upstream_comment_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"discovered", "prepared", "generated", "posted", "failed", "deleted"}, Default: "discovered"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "posted_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "process_id", Type: field.TypeString},
		{Name: "login_id", Type: field.TypeString},
	}
	// WorkItemsTable holds the schema information for the "work_items" table.
	WorkItemsTable = &schema.Table{
		Name:       "work_items",
		Columns:    WorkItemsColumns,
		PrimaryKey: []*schema.Column{WorkItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "work_items_processes_work_items",
				Columns:    []*schema.Column{WorkItemsColumns[27]},
				RefColumns: []*schema.Column{ProcessesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "work_items_upstream_logins_work_items",
				Columns:    []*schema.Column{WorkItemsColumns[28]},
				RefColumns: []*schema.Column{UpstreamLoginsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workitem_process_id_article_id_login_id",
				Unique:  true,
				Columns: []*schema.Column{WorkItemsColumns[27], WorkItemsColumns[2], WorkItemsColumns[28]},
			},
			{
				Name:    "workitem_process_id_status",
				Unique:  false,
				Columns: []*schema.Column{WorkItemsColumns[27], WorkItemsColumns[21]},
			},
			{
				Name:    "workitem_user_id",
				Unique:  false,
				Columns: []*schema.Column{WorkItemsColumns[1]},
			},
		},
	}
	// ProcessLoginsColumns holds the columns for the "process_logins" table.
	ProcessLoginsColumns = []*schema.Column{
		{Name: "process_id", Type: field.TypeString},
		{Name: "login_id", Type: field.TypeString},
	}
	// ProcessLoginsTable holds the schema information for the "process_logins" table.
	ProcessLoginsTable = &schema.Table{
		Name:       "process_logins",
		Columns:    ProcessLoginsColumns,
		PrimaryKey: []*schema.Column{ProcessLoginsColumns[0], ProcessLoginsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "process_logins_process_id",
				Columns:    []*schema.Column{ProcessLoginsColumns[0]},
				RefColumns: []*schema.Column{ProcessesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "process_logins_login_id",
				Columns:    []*schema.Column{ProcessLoginsColumns[1]},
				RefColumns: []*schema.Column{UpstreamLoginsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ProcessPromptsColumns holds the columns for the "process_prompts" table.
	ProcessPromptsColumns = []*schema.Column{
		{Name: "process_id", Type: field.TypeString},
		{Name: "prompt_template_id", Type: field.TypeString},
	}
	// ProcessPromptsTable holds the schema information for the "process_prompts" table.
	ProcessPromptsTable = &schema.Table{
		Name:       "process_prompts",
		Columns:    ProcessPromptsColumns,
		PrimaryKey: []*schema.Column{ProcessPromptsColumns[0], ProcessPromptsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "process_prompts_process_id",
				Columns:    []*schema.Column{ProcessPromptsColumns[0]},
				RefColumns: []*schema.Column{ProcessesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "process_prompts_prompt_template_id",
				Columns:    []*schema.Column{ProcessPromptsColumns[1]},
				RefColumns: []*schema.Column{PromptTemplatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmProviderConfigsTable,
		ProcessesTable,
		PromptTemplatesTable,
		UpstreamLoginsTable,
		WorkItemsTable,
		ProcessLoginsTable,
		ProcessPromptsTable,
	}
)

func init() {
	ProcessesTable.ForeignKeys[0].RefTable = LlmProviderConfigsTable
	WorkItemsTable.ForeignKeys[0].RefTable = ProcessesTable
	WorkItemsTable.ForeignKeys[1].RefTable = UpstreamLoginsTable
	ProcessLoginsTable.ForeignKeys[0].RefTable = ProcessesTable
	ProcessLoginsTable.ForeignKeys[1].RefTable = UpstreamLoginsTable
	ProcessPromptsTable.ForeignKeys[0].RefTable = ProcessesTable
	ProcessPromptsTable.ForeignKeys[1].RefTable = PromptTemplatesTable
}
