package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUpperToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty string", input: "", want: false},
		{name: "acronym", input: "HTTP", want: true},
		{name: "acronym with separator and digit", input: "API_V2", want: true},
		{name: "single uppercase letter", input: "A", want: true},
		{name: "title word", input: "Http", want: false},
		{name: "digits only", input: "123", want: false},
		{name: "separators only", input: "__", want: false},
		{name: "unicode uppercase", input: "ÜBER", want: true},
		{name: "titlecase rune", input: "ǅ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUpperToken(tt.input), "IsUpperToken(%q)", tt.input)
		})
	}
}

func TestIsNumericToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty string", input: "", want: false},
		{name: "digits", input: "123", want: true},
		{name: "digits and letters", input: "12a", want: false},
		{name: "decimal point", input: "1.5", want: false},
		{name: "negative", input: "-1", want: false},
		{name: "arabic-indic digit", input: "٣", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNumericToken(tt.input), "IsNumericToken(%q)", tt.input)
		})
	}
}

func TestCamelize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Empty and single characters
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase letter", input: "a", want: "a"},
		{name: "single uppercase letter", input: "A", want: "A"},
		{name: "single digit", input: "1", want: "1"},

		// Fixed points
		{name: "acronym", input: "HTTP", want: "HTTP"},
		{name: "numeric", input: "123", want: "123"},
		{name: "upper snake", input: "API_KEY", want: "API_KEY"},

		// Separators
		{name: "snake_case simple", input: "user_profile", want: "userProfile"},
		{name: "snake_case three words", input: "get_user_by_id", want: "getUserById"},
		{name: "kebab-case simple", input: "hello-world", want: "helloWorld"},
		{name: "mixed separators", input: "hello-world_test", want: "helloWorldTest"},
		{name: "space separator", input: "hello world", want: "helloWorld"},
		{name: "uppercase after separator", input: "already_Camel", want: "alreadyCamel"},
		{name: "double underscore", input: "a__b", want: "aB"},
		{name: "consecutive mixed separators", input: "a_- b", want: "aB"},
		{name: "leading underscore kept", input: "_private", want: "_private"},
		{name: "leading underscores kept", input: "__init_value", want: "__initValue"},
		{name: "trailing underscore kept", input: "value_", want: "value_"},
		{name: "separators only", input: "__", want: "__"},

		// First letter
		{name: "already camelCase", input: "userName", want: "userName"},
		{name: "PascalCase", input: "UserName", want: "userName"},
		{name: "leading acronym kept", input: "HTTPServer", want: "HTTPServer"},
		{name: "leading acronym with digit", input: "A1b", want: "A1b"},

		// Numbers
		{name: "with numbers", input: "api_v2_client", want: "apiV2Client"},
		{name: "digit after separator", input: "item_1", want: "item1"},

		// Unicode
		{name: "unicode lowercase", input: "über_user", want: "überUser"},
		{name: "unicode uppercase first", input: "Über_user", want: "überUser"},
		{name: "full case mapping", input: "a_ß", want: "aSS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Camelize(tt.input)
			assert.Equal(t, tt.want, got, "Camelize(%q)", tt.input)
		})
	}
}

func TestRepairAcronyms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "leading acronym", input: "APIResponse", want: "ApiResponse"},
		{name: "trailing acronym", input: "userID", want: "userId"},
		{name: "whole string", input: "ID", want: "Id"},
		{name: "single trailing letter", input: "A", want: "A"},
		{name: "single inner letter", input: "userName", want: "userName"},
		{name: "acronym and trailing digits", input: "HTTPStatus200", want: "HttpStatus200"},
		{name: "letter after digit stays upper", input: "getV2C", want: "getV2C"},
		{name: "no uppercase", input: "user_name", want: "user_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RepairAcronyms(tt.input), "RepairAcronyms(%q)", tt.input)
		})
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLead  string
		wantWords []string
		wantTrail string
	}{
		{name: "empty string", input: ""},
		{name: "camelCase", input: "userName", wantWords: []string{"user", "Name"}},
		{name: "PascalCase", input: "ApiResponse", wantWords: []string{"Api", "Response"}},
		{name: "leading separator", input: "_userName", wantLead: "_", wantWords: []string{"user", "Name"}},
		{name: "trailing separators", input: "user_name__", wantWords: []string{"user", "name"}, wantTrail: "__"},
		{name: "separators only", input: "___", wantLead: "___"},
		{name: "separator then uppercase", input: "user_Name", wantWords: []string{"user", "Name"}},
		{name: "consecutive uppercase", input: "ABc", wantWords: []string{"A", "Bc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead, words, trail := SplitWords(tt.input)
			assert.Equal(t, tt.wantLead, lead, "lead of %q", tt.input)
			assert.Equal(t, tt.wantWords, words, "words of %q", tt.input)
			assert.Equal(t, tt.wantTrail, trail, "trail of %q", tt.input)
		})
	}
}

func TestDecamelize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Empty and fixed points
		{name: "empty string", input: "", want: ""},
		{name: "acronym", input: "HTTP", want: "HTTP"},
		{name: "numeric", input: "123", want: "123"},
		{name: "upper kebab", input: "API-KEY", want: "API-KEY"},

		// camelCase and PascalCase
		{name: "camelCase simple", input: "userName", want: "user_name"},
		{name: "PascalCase simple", input: "UserName", want: "user_name"},
		{name: "PascalCase three words", input: "GetUserById", want: "get_user_by_id"},

		// Acronyms
		{name: "leading acronym", input: "APIResponse", want: "api_response"},
		{name: "trailing acronym", input: "userID", want: "user_id"},
		{name: "inner acronym", input: "getHTTPResponse", want: "get_http_response"},
		{name: "consecutive uppercase before lowercase", input: "ABc", want: "a_bc"},

		// Separators
		{name: "already snake_case", input: "user_name", want: "user_name"},
		{name: "kebab before uppercase", input: "hello-World", want: "hello_world"},
		{name: "kebab-case", input: "hello-world", want: "hello_world"},
		{name: "space separator", input: "hello world", want: "hello_world"},
		{name: "double underscore collapses", input: "a__b", want: "a_b"},
		{name: "leading underscore kept", input: "_privateField", want: "_private_field"},
		{name: "trailing underscore kept", input: "value_", want: "value_"},

		// Numbers
		{name: "with numbers", input: "ApiV2Client", want: "api_v2_client"},
		{name: "digit before uppercase", input: "version2Name", want: "version2_name"},

		// Unicode
		{name: "unicode", input: "ÜberUser", want: "über_user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decamelize(tt.input)
			assert.Equal(t, tt.want, got, "Decamelize(%q)", tt.input)
		})
	}
}

// Edge case tests for additional coverage
func TestEdgeCases(t *testing.T) {
	inputs := []string{
		"", "a", "A", "HTTP", "123", "user_name", "userName", "UserName",
		"APIResponse", "getHTTPResponse", "hello-world_test", "_private",
		"value_", "a__b", "über_user", "ApiV2Client", "a_ß", "  padded  ",
	}

	t.Run("camelize is idempotent", func(t *testing.T) {
		for _, in := range inputs {
			once := Camelize(in)
			assert.Equal(t, once, Camelize(once), "Camelize(Camelize(%q))", in)
		}
	})

	t.Run("decamelize is idempotent", func(t *testing.T) {
		for _, in := range inputs {
			once := Decamelize(in)
			assert.Equal(t, once, Decamelize(once), "Decamelize(Decamelize(%q))", in)
		}
	})

	t.Run("fixed points survive both transforms", func(t *testing.T) {
		for _, in := range []string{"HTTP", "ID", "API_V2", "123", "007"} {
			assert.True(t, IsFixedPoint(in), "IsFixedPoint(%q)", in)
			assert.Equal(t, in, Camelize(in))
			assert.Equal(t, in, Decamelize(in))
		}
	})

	t.Run("round trip on well-behaved keys", func(t *testing.T) {
		for _, in := range []string{"user_name", "item_id", "created_at", "get_user_by_id", "api_v2_client"} {
			assert.Equal(t, in, Decamelize(Camelize(in)), "Decamelize(Camelize(%q))", in)
		}
	})

	t.Run("round trip loses single-letter words and acronym case", func(t *testing.T) {
		assert.Equal(t, "aBC", Camelize("a_b_c"))
		assert.Equal(t, "a_bc", Decamelize("aBC"))

		assert.Equal(t, "getHTTPResponse", Camelize("get_HTTP_response"))
		assert.Equal(t, "get_http_response", Decamelize("getHTTPResponse"))
	})
}
