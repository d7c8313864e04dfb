package logger

// Unified log field name constants
// 统一的日志字段命名常量
// Used to keep log field naming consistent across the project for querying
const (
	// FieldSub owner subject field
	FieldSub = "sub"

	// FieldFileKey file key field
	FieldFileKey = "fileKey"
)
