// Package store implements the encrypted-tree operation engine: path
// resolution, recipient resolution, the backup/restore guard, and the
// in-memory directory tree used for rendering and filtered search.
package store

import "fmt"

// Kind classifies a store error so callers (and the CLI dispatcher) can
// branch on failure category without string matching.
type Kind int

const (
	// KindPathEscapesRoot means the resolved path fell outside the store root.
	KindPathEscapesRoot Kind = iota
	// KindNotFound means the requested entry or directory does not exist.
	KindNotFound
	// KindIsDirectory means a directory/non-directory mismatch: a file
	// operation was given a directory, or a directory target (trailing
	// separator) does not exist as a directory.
	KindIsDirectory
	// KindExpectFile means a non-file node was found where a file was required.
	KindExpectFile
	// KindInvalidFileType means the filesystem node kind was none of the above.
	KindInvalidFileType
	// KindNoRecipients means no .gpg-id was found on the ascent to root.
	KindNoRecipients
	// KindKeyLookup means the PGP tool failed to resolve a recipient identifier.
	KindKeyLookup
	// KindEncryptFailed means the PGP encrypt subprocess exited non-zero.
	KindEncryptFailed
	// KindDecryptFailed means the PGP decrypt subprocess exited non-zero.
	KindDecryptFailed
	// KindVCSError means the version-control collaborator failed.
	KindVCSError
	// KindUserCancelled means an interactive prompt returned a non-yes answer.
	KindUserCancelled
	// KindInvalidFlags means the given flags do not permit the operation:
	// mutually exclusive flags were both set, or an existing entry would be
	// overwritten without --force.
	KindInvalidFlags
	// KindIOError is a filesystem error not otherwise classified.
	KindIOError
)

func (k Kind) String() string {
	switch k {
	case KindPathEscapesRoot:
		return "PathEscapesRoot"
	case KindNotFound:
		return "NotFound"
	case KindIsDirectory:
		return "IsDirectory"
	case KindExpectFile:
		return "ExpectFile"
	case KindInvalidFileType:
		return "InvalidFileType"
	case KindNoRecipients:
		return "NoRecipients"
	case KindKeyLookup:
		return "KeyLookup"
	case KindEncryptFailed:
		return "EncryptFailed"
	case KindDecryptFailed:
		return "DecryptFailed"
	case KindVCSError:
		return "VCSError"
	case KindUserCancelled:
		return "UserCancelled"
	case KindInvalidFlags:
		return "InvalidFlags"
	case KindIOError:
		return "IOError"
	default:
		return "Unknown"
	}
}

// Error is the error type every store/pgp/vcs/ops function returns.
// It carries a Kind from the taxonomy and optionally captured subprocess
// stderr for EncryptFailed/DecryptFailed.
type Error struct {
	Kind   Kind
	Path   string
	Msg    string
	Stderr string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Stderr != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Stderr)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error of the given kind with a message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf builds an *Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind wrapping an underlying error.
func Wrap(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// KindOf extracts the Kind from err if it is (or wraps) a *Error, and
// KindIOError otherwise.
func KindOf(err error) Kind {
	var se *Error
	if ok := asError(err, &se); ok {
		return se.Kind
	}
	return KindIOError
}

func asError(err error, target **Error) bool {
	for err != nil {
		if se, ok := err.(*Error); ok {
			*target = se
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
