package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:3000/mcp/stream", "MCP streamable HTTP endpoint")
	search := flag.String("search", "", "location substring passed to job_search")
	spreadsheet := flag.String("spreadsheet", "", "spreadsheet ID; when set, the first job found is exported with sheets_export")
	flag.Parse()

	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "jobnest-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: *endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	jobID := testJobSearch(ctx, session, *search)
	testLatest(ctx, session)

	if *spreadsheet != "" && jobID != "" {
		testSheetsExport(ctx, session, jobID, *spreadsheet)
	}

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: tools/list")

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("tools/list failed: %v", err)
		return
	}
	for _, tool := range res.Tools {
		fmt.Printf("  %s: %s\n", tool.Name, tool.Description)
	}
}

// testJobSearch returns the id of the first job found
func testJobSearch(ctx context.Context, session *mcp.ClientSession, search string) string {
	fmt.Println("\nTEST: job_search")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "job_search",
		Arguments: map[string]any{
			"search":    search,
			"sort_desc": true,
		},
	})
	if err != nil {
		log.Printf("job_search failed: %v", err)
		return ""
	}

	printResult(result)
	fmt.Println("job_search passed")

	structured, ok := result.StructuredContent.(map[string]any)
	if !ok {
		return ""
	}
	jobs, _ := structured["jobs"].([]any)
	if len(jobs) == 0 {
		return ""
	}
	first, _ := jobs[0].(map[string]any)
	id, _ := first["_id"].(string)
	return id
}

func testLatest(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: job_search (latest)")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "job_search",
		Arguments: map[string]any{"latest": true},
	})
	if err != nil {
		log.Printf("job_search (latest) failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("job_search (latest) passed")
}

func testSheetsExport(ctx context.Context, session *mcp.ClientSession, jobID, spreadsheetID string) {
	fmt.Println("\nTEST: sheets_export")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "sheets_export",
		Arguments: map[string]any{
			"job_id":    jobID,
			"clear_tab": true,
			"sheet": map[string]any{
				"spreadsheet_id": spreadsheetID,
				"tab":            "Applications",
			},
		},
	})
	if err != nil {
		log.Printf("sheets_export failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("sheets_export passed")
}

func printResult(res *mcp.CallToolResult) {
	if res.IsError {
		fmt.Println("  (tool reported an error)")
	}
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
