package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"seopro/internal/seo"
	"seopro/internal/store"
)

type GetRecordInput struct {
	Type string `json:"type" jsonschema:"entity type, e.g. post or page"`
	ID   string `json:"id" jsonschema:"entity identifier"`
}

type UpdateRecordInput struct {
	Type   string         `json:"type" jsonschema:"entity type"`
	ID     string         `json:"id" jsonschema:"entity identifier"`
	Fields map[string]any `json:"fields" jsonschema:"columns to set: title, description, keywords, author, robots, canonical_url, open_graph, twitter, json_ld, additional_meta"`
}

type ScoreInput struct {
	Type string `json:"type" jsonschema:"entity type"`
	ID   string `json:"id" jsonschema:"entity identifier"`
}

type AuditHTMLInput struct {
	HTML string `json:"html" jsonschema:"HTML document to audit"`
}

type RenderMetaInput struct {
	Type string `json:"type" jsonschema:"entity type"`
	ID   string `json:"id" jsonschema:"entity identifier"`
}

type ListRecordsInput struct {
	Type   string `json:"type,omitempty" jsonschema:"entity type filter"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum records to return"`
	Offset int    `json:"offset,omitempty" jsonschema:"records to skip"`
}

type RecordOutput struct {
	Record *store.Record `json:"record"`
}

type ScoreOutput struct {
	Score           int      `json:"score"`
	Recommendations []string `json:"recommendations"`
}

type AuditHTMLOutput struct {
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
	Passed   []string `json:"passed"`
}

type RenderMetaOutput struct {
	HTML string `json:"html"`
}

type ListRecordsOutput struct {
	Records []store.Summary `json:"records"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_seo_record",
		Description: "Retrieve the stored SEO metadata for an entity",
	}, s.handleGetRecord)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "update_seo_record",
		Description: "Create or update SEO metadata fields for an entity",
	}, s.handleUpdateRecord)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "score_seo",
		Description: "Compute the completeness score and recommendations for an entity",
	}, s.handleScore)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "audit_html",
		Description: "Audit an HTML document for missing or out-of-range SEO markup",
	}, s.handleAuditHTML)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "render_meta",
		Description: "Render the full head block for an entity's metadata",
	}, s.handleRenderMeta)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_seo_records",
		Description: "List stored SEO records with optional type filter",
	}, s.handleListRecords)
}

func (s *Server) engine() *seo.Engine {
	return seo.New(s.cfg, seo.Options{Records: s.db})
}

func refFromInput(entityType, id string) (store.EntityRef, error) {
	if entityType == "" || id == "" {
		return store.EntityRef{}, fmt.Errorf("type and id are required")
	}
	return store.EntityRef{Type: entityType, ID: id}, nil
}

func (s *Server) handleGetRecord(ctx context.Context, req *sdk.CallToolRequest, input GetRecordInput) (*sdk.CallToolResult, RecordOutput, error) {
	ref, err := refFromInput(input.Type, input.ID)
	if err != nil {
		return nil, RecordOutput{}, err
	}
	rec, err := s.db.Get(ctx, ref)
	if err != nil {
		return nil, RecordOutput{}, err
	}
	return nil, RecordOutput{Record: rec}, nil
}

func (s *Server) handleUpdateRecord(ctx context.Context, req *sdk.CallToolRequest, input UpdateRecordInput) (*sdk.CallToolResult, RecordOutput, error) {
	ref, err := refFromInput(input.Type, input.ID)
	if err != nil {
		return nil, RecordOutput{}, err
	}
	if len(input.Fields) == 0 {
		return nil, RecordOutput{}, fmt.Errorf("fields are required")
	}
	rec, err := s.engine().UpdateEntity(ctx, ref, store.Patch(input.Fields))
	if err != nil {
		return nil, RecordOutput{}, err
	}
	return nil, RecordOutput{Record: rec}, nil
}

func (s *Server) handleScore(ctx context.Context, req *sdk.CallToolRequest, input ScoreInput) (*sdk.CallToolResult, ScoreOutput, error) {
	ref, err := refFromInput(input.Type, input.ID)
	if err != nil {
		return nil, ScoreOutput{}, err
	}
	eng := s.engine()
	if _, err := eng.LoadRecord(ctx, ref); err != nil {
		return nil, ScoreOutput{}, err
	}
	eng.Optimize()
	return nil, ScoreOutput{
		Score:           eng.Score(),
		Recommendations: eng.Recommendations(),
	}, nil
}

func (s *Server) handleAuditHTML(ctx context.Context, req *sdk.CallToolRequest, input AuditHTMLInput) (*sdk.CallToolResult, AuditHTMLOutput, error) {
	if input.HTML == "" {
		return nil, AuditHTMLOutput{}, fmt.Errorf("html is required")
	}
	report := s.engine().AuditHTML(input.HTML)
	return nil, AuditHTMLOutput{
		Issues:   report.Issues,
		Warnings: report.Warnings,
		Passed:   report.Passed,
	}, nil
}

func (s *Server) handleRenderMeta(ctx context.Context, req *sdk.CallToolRequest, input RenderMetaInput) (*sdk.CallToolResult, RenderMetaOutput, error) {
	ref, err := refFromInput(input.Type, input.ID)
	if err != nil {
		return nil, RenderMetaOutput{}, err
	}
	eng := s.engine()
	if _, err := eng.LoadRecord(ctx, ref); err != nil {
		return nil, RenderMetaOutput{}, err
	}
	eng.Optimize()
	return nil, RenderMetaOutput{HTML: eng.RenderAll()}, nil
}

func (s *Server) handleListRecords(ctx context.Context, req *sdk.CallToolRequest, input ListRecordsInput) (*sdk.CallToolResult, ListRecordsOutput, error) {
	summaries, err := s.db.List(ctx, input.Type, input.Limit, input.Offset)
	if err != nil {
		return nil, ListRecordsOutput{}, err
	}
	if summaries == nil {
		summaries = []store.Summary{}
	}
	return nil, ListRecordsOutput{Records: summaries}, nil
}
