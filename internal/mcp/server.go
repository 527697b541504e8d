package mcp

import (
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobnest/internal/domain/job"
	"github.com/honeycarbs/jobnest/internal/mcp/tools"
	"github.com/honeycarbs/jobnest/pkg/logging"
	sheetsclient "github.com/honeycarbs/jobnest/pkg/sheets"
)

// Deps are the services exposed as MCP tools
type Deps struct {
	Jobs         job.Service
	Applications tools.ApplicationLister
	// Sheets may be nil; sheets_export then reports that it is not configured
	Sheets *sheetsclient.Client
}

// NewServer builds the MCP server with the job_search and sheets_export tools
func NewServer(log *logging.Logger, deps Deps) *sdkmcp.Server {
	impl := &sdkmcp.Implementation{
		Name:    "jobnest",
		Version: "0.1.0",
	}

	server := sdkmcp.NewServer(impl, nil)
	tools.Register(server, log,
		tools.WithJobSearch(deps.Jobs),
		tools.WithSheetsExport(deps.Jobs, deps.Applications, NewSheetsExporter(deps.Sheets)),
	)
	return server
}

// NewHandler serves the MCP server over streamable HTTP
func NewHandler(log *logging.Logger, deps Deps) http.Handler {
	server := NewServer(log, deps)
	return sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return server
	}, nil)
}
