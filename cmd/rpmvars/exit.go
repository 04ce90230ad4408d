package rpmvars

import "github.com/arthur-debert/rpmvars/pkg/errors"

// ExitCode maps an error to the process exit code. The mapping is part
// of the CLI contract: callers script against these values.
//
//	2  name or distro validation failed
//	3  package not installed
//	4  query backend unavailable or unparseable
//	5  document could not be encoded or written
//	1  anything else
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch errors.GetErrorCode(err) {
	case errors.ErrNameInvalid, errors.ErrDistroUnsupported, errors.ErrInvalidInput:
		return 2
	case errors.ErrPackageNotFound:
		return 3
	case errors.ErrQueryBackend, errors.ErrQueryParse:
		return 4
	case errors.ErrDocumentEncode, errors.ErrDocumentWrite:
		return 5
	default:
		return 1
	}
}
