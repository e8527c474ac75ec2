package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
)

// CreateTemplateInput contains the data for a new prompt template. A
// template without a user id is a shared SYSTEM template.
type CreateTemplateInput struct {
	UserID             string
	Name               string
	Description        string
	SystemPrompt       string
	UserPromptTemplate string
}

// TemplateService manages prompt templates.
type TemplateService struct {
	client *ent.Client
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(client *ent.Client) *TemplateService {
	if client == nil {
		panic("NewTemplateService: client must not be nil")
	}
	return &TemplateService{client: client}
}

// CreateTemplate stores a prompt template. An empty UserID creates a
// shared SYSTEM template; otherwise the template is user-owned.
func (s *TemplateService) CreateTemplate(ctx context.Context, input CreateTemplateInput) (*ent.PromptTemplate, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if input.SystemPrompt == "" {
		return nil, NewValidationError("system_prompt", "required")
	}
	if input.UserPromptTemplate == "" {
		return nil, NewValidationError("user_prompt_template", "required")
	}

	builder := s.client.PromptTemplate.Create().
		SetID(uuid.New().String()).
		SetName(input.Name).
		SetSystemPrompt(input.SystemPrompt).
		SetUserPromptTemplate(input.UserPromptTemplate)

	if input.UserID == "" {
		builder.SetCategory(prompttemplate.CategorySYSTEM)
	} else {
		builder.SetUserID(input.UserID).
			SetCategory(prompttemplate.CategoryUSER)
	}
	if input.Description != "" {
		builder.SetDescription(input.Description)
	}

	template, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt template: %w", err)
	}
	return template, nil
}

// GetTemplate retrieves a template visible to the user: their own or a
// shared SYSTEM one.
func (s *TemplateService) GetTemplate(ctx context.Context, userID, templateID string) (*ent.PromptTemplate, error) {
	template, err := s.client.PromptTemplate.Query().
		Where(
			prompttemplate.IDEQ(templateID),
			prompttemplate.Or(
				prompttemplate.UserIDEQ(userID),
				prompttemplate.CategoryEQ(prompttemplate.CategorySYSTEM),
			),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get prompt template: %w", err)
	}
	return template, nil
}

// ListTemplates returns the active templates visible to the user: shared
// SYSTEM templates first, then their own.
func (s *TemplateService) ListTemplates(ctx context.Context, userID string) ([]*ent.PromptTemplate, error) {
	templates, err := s.client.PromptTemplate.Query().
		Where(
			prompttemplate.IsActiveEQ(true),
			prompttemplate.Or(
				prompttemplate.UserIDEQ(userID),
				prompttemplate.CategoryEQ(prompttemplate.CategorySYSTEM),
			),
		).
		Order(ent.Asc(prompttemplate.FieldCategory), ent.Asc(prompttemplate.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompt templates: %w", err)
	}
	return templates, nil
}

// Deactivate marks a user-owned template inactive. SYSTEM templates
// cannot be deactivated through this path.
func (s *TemplateService) Deactivate(ctx context.Context, userID, templateID string) error {
	n, err := s.client.PromptTemplate.Update().
		Where(
			prompttemplate.IDEQ(templateID),
			prompttemplate.UserIDEQ(userID),
			prompttemplate.CategoryEQ(prompttemplate.CategoryUSER),
		).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to deactivate prompt template: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
