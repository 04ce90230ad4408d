// Package types defines the core types used throughout rpmvars.
// This includes the input side (FileRecord and Package, as reported by
// the RPM database) and the output side (Category, ConfigItem, Document).
package types
