package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldClientAgent = "client_agent"

	FieldCacheKey  = "cache_key"
	FieldDimension = "dimension"
	FieldDeviceID  = "device_id"
	FieldExportID  = "export_id"
)
