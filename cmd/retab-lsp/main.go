package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fmtkit/retab/internal/formatter"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "retab"

var version string = "0.0.1"
var handler protocol.Handler

var documents = map[string]string{}

func main() {
	// This increases logging verbosity (optional)
	commonlog.Configure(1, nil)

	protocol.SetTraceValue(protocol.TraceValueMessage)

	handler = protocol.Handler{
		Initialize:  initialize,
		Initialized: initialized,
		Shutdown:    shutdown,
		SetTrace:    setTrace,
		TextDocumentDidOpen: func(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
			documents[params.TextDocument.URI] = params.TextDocument.Text

			return nil
		},
		TextDocumentDidChange: func(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
			content, ok := documents[params.TextDocument.URI]
			if !ok {
				return nil
			}

			for _, change := range params.ContentChanges {
				switch change := change.(type) {
				case protocol.TextDocumentContentChangeEventWhole:
					documents[params.TextDocument.URI] = change.Text

				case protocol.TextDocumentContentChangeEvent:
					startIndex, endIndex := change.Range.IndexesIn(content)
					documents[params.TextDocument.URI] = content[:startIndex] + change.Text + content[endIndex:]
				}
			}

			return nil
		},
		TextDocumentDidClose: func(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
			delete(documents, params.TextDocument.URI)

			return nil
		},
		TextDocumentFormatting: formatDocument,
	}

	server := server.NewServer(&handler, lsName, false)

	server.RunStdio()
}

// formatDocument runs the reindenter over the whole document and, when the
// text changes, returns a single edit replacing the full range.
func formatDocument(context *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	contents, ok := documents[params.TextDocument.URI]
	if !ok {
		return nil, nil
	}

	docURL, err := url.Parse(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("parse document uri: %w", err)
	}
	if docURL.Scheme != "file" {
		return nil, fmt.Errorf("invalid document uri scheme %q", docURL.Scheme)
	}

	formatted := formatter.File(docURL.Path, contents)
	if formatted == contents {
		return nil, nil
	}

	return []protocol.TextEdit{
		{
			Range:   fullRange(contents),
			NewText: formatted,
		},
	}, nil
}

// fullRange spans the whole document, from the first character to one past
// the end of the last line.
func fullRange(contents string) protocol.Range {
	lines := strings.Split(contents, "\n")
	last := lines[len(lines)-1]

	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End: protocol.Position{
			Line:      protocol.UInteger(len(lines) - 1),
			Character: protocol.UInteger(len(last)),
		},
	}
}

func initialize(context *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := handler.CreateServerCapabilities()

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func initialized(context *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func shutdown(context *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}
