package check

import (
	"fmt"

	"docstyle/internal/diag"
	"docstyle/internal/source"
)

// ViolationKind is the closed set of reasons a check fails.
type ViolationKind uint8

const (
	DeprecationNotAString ViolationKind = iota
	DeprecationMissingDate
	DeprecationInvalidMonth
	MissingTypeAnnotation
	CommentNotAllowedInInterface
	DocumentationSyntaxError
)

func (k ViolationKind) String() string {
	switch k {
	case DeprecationNotAString:
		return "deprecation-not-a-string"
	case DeprecationMissingDate:
		return "deprecation-missing-date"
	case DeprecationInvalidMonth:
		return "deprecation-invalid-month"
	case MissingTypeAnnotation:
		return "missing-type-annotation"
	case CommentNotAllowedInInterface:
		return "comment-not-allowed-in-interface"
	case DocumentationSyntaxError:
		return "documentation-syntax-error"
	default:
		return "unknown"
	}
}

// IgnoredReason tells how a value came to be discarded.
type IgnoredReason uint8

const (
	ArgumentToDiscard IgnoredReason = iota
	UnderscoreBinding
)

func (r IgnoredReason) String() string {
	switch r {
	case ArgumentToDiscard:
		return "argument to discard"
	case UnderscoreBinding:
		return "underscore binding"
	default:
		return "unknown"
	}
}

const (
	msgNotAString   = "Invalid deprecated attribute, it will be ignored by the compiler"
	msgMissingDate  = `deprecated message must start with "[since YYYY-MM]"`
	msgInvalidMonth = "invalid month in deprecation date"
	msgIgnored      = "Ignored expression must come with a type annotation"
	msgIntfComment  = "That kind of comment shouldn't be used in interfaces; use (** *) for documentation or (*_ *) for comments not meant for readers"
	hintDocSyntax   = `see the "Documentation comments" section of the OCaml manual for the accepted syntax`
	hintAnnotate    = "annotate the discarded expression, e.g. (e : t)"
)

// Violation carries exactly what is needed to render one diagnostic.
// Reason is meaningful for MissingTypeAnnotation, Msg for DocumentationSyntaxError.
type Violation struct {
	Kind   ViolationKind
	Reason IgnoredReason
	Msg    string
	Loc    source.Loc
}

// Message renders the user-facing text of v.
func (v Violation) Message() string {
	switch v.Kind {
	case DeprecationNotAString:
		return msgNotAString
	case DeprecationMissingDate:
		return msgMissingDate
	case DeprecationInvalidMonth:
		return msgInvalidMonth
	case MissingTypeAnnotation:
		return msgIgnored
	case CommentNotAllowedInInterface:
		return msgIntfComment
	case DocumentationSyntaxError:
		return v.Msg
	default:
		return "unknown violation"
	}
}

func (v Violation) Code() diag.Code {
	switch v.Kind {
	case DeprecationNotAString:
		return diag.StyDeprecationNotAString
	case DeprecationMissingDate:
		return diag.StyDeprecationMissingDate
	case DeprecationInvalidMonth:
		return diag.StyDeprecationInvalidMonth
	case MissingTypeAnnotation:
		return diag.StyMissingTypeAnnotation
	case CommentNotAllowedInInterface:
		return diag.StyCommentNotAllowedInInterface
	case DocumentationSyntaxError:
		return diag.StyDocSyntax
	default:
		return diag.UnknownCode
	}
}

// Diagnostic converts v into a fatal diagnostic.
func (v Violation) Diagnostic() diag.Diagnostic {
	d := diag.NewError(v.Code(), v.Loc, v.Message())
	switch v.Kind {
	case DocumentationSyntaxError:
		d = d.WithHint(hintDocSyntax)
	case MissingTypeAnnotation:
		d = d.WithHint(hintAnnotate).WithNote(v.Loc, "discarded as "+v.Reason.String())
	}
	return d
}

// Error is the fatal error produced by Report.
type Error struct {
	Violation Violation
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Violation.Loc, e.Violation.Message())
	if e.Violation.Kind == DocumentationSyntaxError {
		msg += " (" + hintDocSyntax + ")"
	}
	return msg
}

// FailFunc receives every violation. Returning a non-nil error aborts the
// check; returning nil lets it continue.
type FailFunc func(Violation) error

// Report is the default FailFunc: every violation is fatal.
func Report(v Violation) error {
	return &Error{Violation: v}
}
