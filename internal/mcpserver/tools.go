package mcpserver

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/keycase/codec"
	"github.com/erraggy/keycase/humps"
	"github.com/erraggy/keycase/internal/fileutil"
	"github.com/erraggy/keycase/internal/options"
)

type convertInput struct {
	Keys  []string `json:"keys,omitempty"  jsonschema:"Keys to convert"`
	Value any      `json:"value,omitempty" jsonschema:"A JSON value whose object keys are converted recursively. String values inside it are left alone"`
}

type convertOutput struct {
	Keys  []string `json:"keys,omitempty"`
	Value any      `json:"value,omitempty"`
}

func (s *keycaseServer) handleCamelize(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	out, err := s.convert(input, humps.ToCamel)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	return nil, out, nil
}

func (s *keycaseServer) handleDecamelize(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	out, err := s.convert(input, humps.ToSnake)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	return nil, out, nil
}

func (s *keycaseServer) convert(input convertInput, dir humps.Direction) (convertOutput, error) {
	if err := validateKeysOrValue(input.Keys, input.Value); err != nil {
		return convertOutput{}, err
	}

	if input.Value != nil {
		v, err := s.conv.Transform(input.Value, dir)
		if err != nil {
			return convertOutput{}, err
		}
		return convertOutput{Value: v}, nil
	}

	keys := make([]string, 0, len(input.Keys))
	for _, key := range input.Keys {
		keys = append(keys, s.conv.Key(key, dir))
	}
	return convertOutput{Keys: keys}, nil
}

type detectCaseInput struct {
	Keys  []string `json:"keys,omitempty"  jsonschema:"Keys to check"`
	Value any      `json:"value,omitempty" jsonschema:"A JSON value whose object keys are checked recursively"`
}

type caseReport struct {
	Key   string `json:"key,omitempty"`
	Camel bool   `json:"camel"`
	Snake bool   `json:"snake"`
}

type detectCaseOutput struct {
	Results  []caseReport `json:"results"`
	AllCamel bool         `json:"all_camel"`
	AllSnake bool         `json:"all_snake"`
}

func (s *keycaseServer) handleDetectCase(_ context.Context, _ *mcp.CallToolRequest, input detectCaseInput) (*mcp.CallToolResult, detectCaseOutput, error) {
	if err := validateKeysOrValue(input.Keys, input.Value); err != nil {
		return errResult(err), detectCaseOutput{}, nil
	}

	var results []caseReport
	if input.Value != nil {
		results = []caseReport{{
			Camel: s.conv.IsCamelCase(input.Value),
			Snake: s.conv.IsSnakeCase(input.Value),
		}}
	} else {
		results = make([]caseReport, 0, len(input.Keys))
		for _, key := range input.Keys {
			results = append(results, caseReport{
				Key:   key,
				Camel: s.conv.IsCamelCase(key),
				Snake: s.conv.IsSnakeCase(key),
			})
		}
	}

	output := detectCaseOutput{Results: results, AllCamel: true, AllSnake: true}
	for _, r := range results {
		output.AllCamel = output.AllCamel && r.Camel
		output.AllSnake = output.AllSnake && r.Snake
	}
	return nil, output, nil
}

type transcodeInput struct {
	Payload payloadInput `json:"payload"             jsonschema:"The payload to transcode"`
	To      string       `json:"to"                  jsonschema:"Target key case: camel or snake"`
	From    string       `json:"from,omitempty"      jsonschema:"Input format (json\\, jsonc\\, yaml\\, msgpack\\, cbor). Detected from the file extension\\, URL or content when omitted"`
	Format  string       `json:"format,omitempty"    jsonschema:"Output format. Defaults to the input format"`
	Indent  int          `json:"indent,omitempty"    jsonschema:"Spaces of indentation for json and yaml output"`
	Output  string       `json:"output,omitempty"    jsonschema:"File path to write the result to. If omitted the document is returned inline"`
}

type transcodeOutput struct {
	From           string `json:"from"`
	Format         string `json:"format"`
	Bytes          int    `json:"bytes"`
	WrittenTo      string `json:"written_to,omitempty"`
	Document       string `json:"document,omitempty"`
	DocumentBase64 string `json:"document_base64,omitempty"`
}

func (s *keycaseServer) handleTranscode(ctx context.Context, _ *mcp.CallToolRequest, input transcodeInput) (*mcp.CallToolResult, transcodeOutput, error) {
	if input.To == "" {
		return errResult(fmt.Errorf("target case is required (to: camel or snake)")), transcodeOutput{}, nil
	}
	dir, err := humps.ParseDirection(input.To)
	if err != nil {
		return errResult(err), transcodeOutput{}, nil
	}

	if input.Output != "" {
		if err := fileutil.ValidateOutputPath(input.Output, input.Payload.File); err != nil {
			return errResult(err), transcodeOutput{}, nil
		}
	}

	var from codec.Format
	if input.From != "" {
		if from, err = codec.ParseFormat(input.From); err != nil {
			return errResult(err), transcodeOutput{}, nil
		}
	}

	opts := []codec.Option{
		codec.WithConverter(s.conv),
		codec.WithIndent(input.Indent),
		codec.WithMaxInputSize(cfg.MaxInputSize),
	}
	if input.Format != "" {
		to, err := codec.ParseFormat(input.Format)
		if err != nil {
			return errResult(err), transcodeOutput{}, nil
		}
		opts = append(opts, codec.WithOutputFormat(to))
	}
	t, err := codec.New(opts...)
	if err != nil {
		return errResult(err), transcodeOutput{}, nil
	}

	data, from, err := input.Payload.resolve(ctx, from)
	if err != nil {
		return errResult(err), transcodeOutput{}, nil
	}
	out, err := t.Transcode(data, from, dir)
	if err != nil {
		return errResult(err), transcodeOutput{}, nil
	}

	to := t.OutputFormat(from)
	output := transcodeOutput{
		From:   string(from),
		Format: string(to),
		Bytes:  len(out),
	}

	switch {
	case input.Output != "":
		if err := fileutil.WriteOutput(input.Output, out); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), transcodeOutput{}, nil
		}
		output.WrittenTo = input.Output
	case to.IsText():
		output.Document = string(out)
	default:
		output.DocumentBase64 = base64.StdEncoding.EncodeToString(out)
	}

	return nil, output, nil
}

func validateKeysOrValue(keys []string, value any) error {
	if err := options.ValidateSingleInputSource(
		"exactly one of keys or value must be provided",
		"only one of keys or value may be provided",
		len(keys) > 0, value != nil,
	); err != nil {
		return err
	}
	if len(keys) > cfg.MaxKeys {
		return fmt.Errorf("%d keys exceeds maximum %d; set KEYCASE_MAX_KEYS to increase", len(keys), cfg.MaxKeys)
	}
	return nil
}
