package types

// Category is one of the five fixed semantic buckets a FileRecord is
// sorted into. Exactly one category is selected per record.
type Category string

const (
	CategoryConfiguration Category = "configuration"
	CategoryArtifacts     Category = "artifacts"
	CategoryDocs          Category = "docs"
	CategoryLicenses      Category = "licenses"
	CategoryGeneral       Category = "general"
)

// CategoryOrder returns the fixed emission order of categories. The order
// is part of the output contract: all five categories are always emitted,
// in this order, even when empty.
func CategoryOrder() []Category {
	return []Category{
		CategoryConfiguration,
		CategoryArtifacts,
		CategoryDocs,
		CategoryLicenses,
		CategoryGeneral,
	}
}
