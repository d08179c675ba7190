// Package codec converts the keys of whole payloads between camelCase and
// snake_case.
//
// Text formats (JSON, JSON with comments, YAML) are parsed into ordered
// yaml.Node trees so the output keeps the source key order, number literals
// and YAML comments. Binary formats (MessagePack, CBOR) are decoded into
// generic values, transformed and re-encoded.
//
// # Quick Start
//
//	t, err := codec.New(codec.WithIndent(2))
//	if err != nil {
//		return err
//	}
//	out, err := t.Transcode(body, codec.FormatJSON, humps.ToSnake)
//
// # API Boundary
//
// DecodeRequest and EncodeResponse implement the usual web-service
// convention: clients speak camelCase JSON while server-side structures use
// snake_case field names.
//
//	var req CreateRecipeRequest // fields tagged `json:"prep_minutes"`
//	if err := codec.DecodeRequest(r.Body, &req); err != nil {
//		return err
//	}
//	...
//	return codec.EncodeResponse(w, recipe)
package codec
