// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/yourmoment/yourmoment/ent/llmproviderconfig"
	"github.com/yourmoment/yourmoment/ent/process"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
	"github.com/yourmoment/yourmoment/ent/schema"
	"github.com/yourmoment/yourmoment/ent/upstreamlogin"
	"github.com/yourmoment/yourmoment/ent/workitem"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmproviderconfigFields := schema.LLMProviderConfig{}.Fields()
	_ = llmproviderconfigFields
	// llmproviderconfigDescModelName is the schema descriptor for model_name field.
	llmproviderconfigDescModelName := llmproviderconfigFields[3].Descriptor()
	// llmproviderconfig.ModelNameValidator is a validator for the "model_name" field. It is called by the builders before save.
	llmproviderconfig.ModelNameValidator = llmproviderconfigDescModelName.Validators[0].(func(string) error)
	// llmproviderconfigDescMaxTokens is the schema descriptor for max_tokens field.
	llmproviderconfigDescMaxTokens := llmproviderconfigFields[5].Descriptor()
	// llmproviderconfig.DefaultMaxTokens holds the default value on creation for the max_tokens field.
	llmproviderconfig.DefaultMaxTokens = llmproviderconfigDescMaxTokens.Default.(int)
	// llmproviderconfigDescTemperature is the schema descriptor for temperature field.
	llmproviderconfigDescTemperature := llmproviderconfigFields[6].Descriptor()
	// llmproviderconfig.DefaultTemperature holds the default value on creation for the temperature field.
	llmproviderconfig.DefaultTemperature = llmproviderconfigDescTemperature.Default.(float64)
	// llmproviderconfigDescIsActive is the schema descriptor for is_active field.
	llmproviderconfigDescIsActive := llmproviderconfigFields[7].Descriptor()
	// llmproviderconfig.DefaultIsActive holds the default value on creation for the is_active field.
	llmproviderconfig.DefaultIsActive = llmproviderconfigDescIsActive.Default.(bool)
	// llmproviderconfigDescCreatedAt is the schema descriptor for created_at field.
	llmproviderconfigDescCreatedAt := llmproviderconfigFields[8].Descriptor()
	// llmproviderconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmproviderconfig.DefaultCreatedAt = llmproviderconfigDescCreatedAt.Default.(func() time.Time)
	processFields := schema.Process{}.Fields()
	_ = processFields
	// processDescName is the schema descriptor for name field.
	processDescName := processFields[2].Descriptor()
	// process.NameValidator is a validator for the "name" field. It is called by the builders before save.
	process.NameValidator = processDescName.Validators[0].(func(string) error)
	// processDescGenerateOnly is the schema descriptor for generate_only field.
	processDescGenerateOnly := processFields[6].Descriptor()
	// process.DefaultGenerateOnly holds the default value on creation for the generate_only field.
	process.DefaultGenerateOnly = processDescGenerateOnly.Default.(bool)
	// processDescArticleLimit is the schema descriptor for article_limit field.
	processDescArticleLimit := processFields[17].Descriptor()
	// process.DefaultArticleLimit holds the default value on creation for the article_limit field.
	process.DefaultArticleLimit = processDescArticleLimit.Default.(int)
	// processDescCreatedAt is the schema descriptor for created_at field.
	processDescCreatedAt := processFields[23].Descriptor()
	// process.DefaultCreatedAt holds the default value on creation for the created_at field.
	process.DefaultCreatedAt = processDescCreatedAt.Default.(func() time.Time)
	prompttemplateFields := schema.PromptTemplate{}.Fields()
	_ = prompttemplateFields
	// prompttemplateDescName is the schema descriptor for name field.
	prompttemplateDescName := prompttemplateFields[3].Descriptor()
	// prompttemplate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	prompttemplate.NameValidator = prompttemplateDescName.Validators[0].(func(string) error)
	// prompttemplateDescIsActive is the schema descriptor for is_active field.
	prompttemplateDescIsActive := prompttemplateFields[7].Descriptor()
	// prompttemplate.DefaultIsActive holds the default value on creation for the is_active field.
	prompttemplate.DefaultIsActive = prompttemplateDescIsActive.Default.(bool)
	// prompttemplateDescCreatedAt is the schema descriptor for created_at field.
	prompttemplateDescCreatedAt := prompttemplateFields[8].Descriptor()
	// prompttemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	prompttemplate.DefaultCreatedAt = prompttemplateDescCreatedAt.Default.(func() time.Time)
	upstreamloginFields := schema.UpstreamLogin{}.Fields()
	_ = upstreamloginFields
	// upstreamloginDescName is the schema descriptor for name field.
	upstreamloginDescName := upstreamloginFields[2].Descriptor()
	// upstreamlogin.NameValidator is a validator for the "name" field. It is called by the builders before save.
	upstreamlogin.NameValidator = upstreamloginDescName.Validators[0].(func(string) error)
	// upstreamloginDescIsAdmin is the schema descriptor for is_admin field.
	upstreamloginDescIsAdmin := upstreamloginFields[5].Descriptor()
	// upstreamlogin.DefaultIsAdmin holds the default value on creation for the is_admin field.
	upstreamlogin.DefaultIsAdmin = upstreamloginDescIsAdmin.Default.(bool)
	// upstreamloginDescIsActive is the schema descriptor for is_active field.
	upstreamloginDescIsActive := upstreamloginFields[6].Descriptor()
	// upstreamlogin.DefaultIsActive holds the default value on creation for the is_active field.
	upstreamlogin.DefaultIsActive = upstreamloginDescIsActive.Default.(bool)
	// upstreamloginDescCreatedAt is the schema descriptor for created_at field.
	upstreamloginDescCreatedAt := upstreamloginFields[8].Descriptor()
	// upstreamlogin.DefaultCreatedAt holds the default value on creation for the created_at field.
	upstreamlogin.DefaultCreatedAt = upstreamloginDescCreatedAt.Default.(func() time.Time)
	workitemFields := schema.WorkItem{}.Fields()
	_ = workitemFields
	// workitemDescCreatedAt is the schema descriptor for created_at field.
	workitemDescCreatedAt := workitemFields[24].Descriptor()
	// workitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	workitem.DefaultCreatedAt = workitemDescCreatedAt.Default.(func() time.Time)
	// workitemDescRetryCount is the schema descriptor for retry_count field.
	workitemDescRetryCount := workitemFields[28].Descriptor()
	// workitem.DefaultRetryCount holds the default value on creation for the retry_count field.
	workitem.DefaultRetryCount = workitemDescRetryCount.Default.(int)
}
