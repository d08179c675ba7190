package humps

// std is the zero-configuration converter behind the package-level functions.
var std = &Converter{logger: NopLogger{}}

// Camelize converts every mapping key in v to camelCase.
// A bare string is converted itself; a bare nil yields "".
//
// Example:
//
//	out, _ := humps.Camelize(map[string]any{"user_name": "a", "items": []any{map[string]any{"item_id": 1}}})
//	// map[string]any{"userName": "a", "items": []any{map[string]any{"itemId": 1}}}
func Camelize(v any) (any, error) {
	return std.Camelize(v)
}

// Decamelize converts every mapping key in v to snake_case.
// A bare string is converted itself; a bare nil yields "".
func Decamelize(v any) (any, error) {
	return std.Decamelize(v)
}

// Transform converts every mapping key in v in the given direction.
func Transform(v any, dir Direction) (any, error) {
	return std.Transform(v, dir)
}

// IsCamelCase reports whether Camelize(v) equals v.
func IsCamelCase(v any) bool {
	return std.IsCamelCase(v)
}

// IsSnakeCase reports whether Decamelize(v) equals v.
func IsSnakeCase(v any) bool {
	return std.IsSnakeCase(v)
}

// CamelizeKey converts a single key to camelCase.
func CamelizeKey(s string) string {
	return std.Key(s, ToCamel)
}

// DecamelizeKey converts a single key to snake_case.
func DecamelizeKey(s string) string {
	return std.Key(s, ToSnake)
}
