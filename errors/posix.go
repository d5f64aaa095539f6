package errors

// POSIX errno values used for interoperability with callers that expect
// conventional process exit semantics. Only the small set the taxonomy maps
// onto is defined here.
const (
	EPERM  = 1
	ENOENT = 2
	EIO    = 5
	EACCES = 13
	EBUSY  = 16
	EINVAL = 22
	EPROTO = 71
)

// errnoByCode is the fixed ErrorCode to errno mapping.
var errnoByCode = map[ErrorCode]int{
	CodeNotFound:           ENOENT,
	CodeInvalidInput:       EINVAL,
	CodeAccessDenied:       EACCES,
	CodePreconditionFailed: EPERM,
	CodeWorkTreeDirty:      EBUSY,
	CodeInvalidConfig:      EINVAL,
	CodeWriteFailed:        EIO,
	CodeExecutionFailed:    EIO,
	CodeParseFailed:        EPROTO,
	CodeUnknown:            EIO,
}

// Errno returns the POSIX error number for an error. Execution failures that
// carry the external tool's exit code in their details report that code
// verbatim; everything else follows the fixed per-code mapping. Returns 0
// for nil.
func Errno(err error) int {
	if err == nil {
		return 0
	}

	code := GetCode(err)
	if code == CodeExecutionFailed {
		if details := GetDetails(err); details != nil {
			if exitCode, ok := details["exit_code"].(int); ok && exitCode > 0 {
				return exitCode
			}
		}
	}

	if errno, ok := errnoByCode[code]; ok {
		return errno
	}
	return EIO
}
