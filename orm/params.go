package orm

// Params is a typed parameter object: parameter name to value.
// Parameters are bound in ascending name order.
type Params map[string]any
