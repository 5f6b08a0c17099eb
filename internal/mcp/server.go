// Package mcp exposes the SEO engine to MCP clients over the Model
// Context Protocol.
package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"seopro/internal/config"
	"seopro/internal/store"
)

type Server struct {
	cfg *config.SeoConfig
	db  store.Store
	mcp *sdk.Server
}

func NewServer(cfg *config.SeoConfig, db store.Store, version string) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Server{
		cfg: cfg,
		db:  db,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "seopro",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
