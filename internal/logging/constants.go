package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldLine       = "line"
	FieldProduct    = "product"
	FieldDate       = "date"
	FieldAmount     = "amount"
	FieldTotal      = "total"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldCount      = "count"
	FieldKeys       = "keys"
	FieldRenderer   = "renderer"
	FieldFormat     = "format"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldRunID      = "run_id"
)
