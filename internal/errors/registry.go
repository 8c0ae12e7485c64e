package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Build Errors (E001-E099)
	// ============================================

	"E001": {
		Category: CategoryBuild,
		Message:  "Unsupported argument",
	},
	"E002": {
		Category: CategoryBuild,
		Message:  "Unsupported style value",
	},
	"E003": {
		Category: CategoryBuild,
		Message:  "Options need an element target",
	},
	"E004": {
		Category: CategoryBuild,
		Message:  "Attribute value cannot be serialized",
	},
	"E005": {
		Category: CategoryBuild,
		Message:  "Unsupported event handler",
	},

	// ============================================
	// Tree Document Errors (E100-E119)
	// ============================================

	"E101": {
		Category: CategoryTree,
		Message:  "Tree document cannot be decoded",
	},
	"E102": {
		Category: CategoryTree,
		Message:  "Unknown namespace",
		Detail:   "Known namespaces are html and svg.",
	},
	"E103": {
		Category: CategoryTree,
		Message:  "Element tag must be a string",
	},

	// ============================================
	// Config Errors (E120-E149)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid skooma.json",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "skooma.json not found",
	},
	"E145": {
		Category: CategoryCLI,
		Message:  "Unknown project template",
	},
	"E146": {
		Category: CategoryCLI,
		Message:  "Project already initialized",
	},

	// ============================================
	// Publish Errors (E200-E219)
	// ============================================

	"E201": {
		Category: CategoryPublish,
		Message:  "Upload failed",
	},
	"E202": {
		Category: CategoryPublish,
		Message:  "No bucket configured",
		Detail:   "Set publish.bucket in skooma.json or pass --bucket.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
