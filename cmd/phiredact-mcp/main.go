// Command phiredact-mcp serves the redaction engine over MCP stdio, so MCP
// clients can scrub text and workbooks through the redact_text and
// redact_workbook tools.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/scrubworks/phiredact"
)

func main() {
	configPath := flag.String("c", "", "config file path")
	flag.Parse()

	s := server.NewMCPServer("phiredact", "1.0.0")

	redactText := mcp.NewTool("redact_text",
		mcp.WithDescription("Detect and redact PHI in a piece of text"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The text to scan and redact"),
		),
	)
	s.AddTool(redactText, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, ok := request.Params.Arguments["text"].(string)
		if !ok {
			return mcp.NewToolResultError("text must be a string"), nil
		}
		redacted, err := phiredact.RedactText(text, *configPath)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(redacted), nil
	})

	redactWorkbook := mcp.NewTool("redact_workbook",
		mcp.WithDescription("Redact PHI from an Excel workbook and write a detection report"),
		mcp.WithString("input_path",
			mcp.Required(),
			mcp.Description("Path to the input .xlsx file"),
		),
		mcp.WithString("output_path",
			mcp.Description("Optional output path; derived from the input when omitted"),
		),
	)
	s.AddTool(redactWorkbook, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input, ok := request.Params.Arguments["input_path"].(string)
		if !ok {
			return mcp.NewToolResultError("input_path must be a string"), nil
		}
		output, _ := request.Params.Arguments["output_path"].(string)

		result, err := phiredact.Redact(input, output, *configPath)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf(
			"output: %s\nreport: %s\ndetections: %d",
			result.OutputPath, result.ReportPath, len(result.Detections),
		)), nil
	})

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
