package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Дамп модуля от хоста
	DumpInfo              Code = 1000
	DumpMalformed         Code = 1001
	DumpUnknownNode       Code = 1002
	DumpUnsupportedFormat Code = 1003

	// Сканер комментариев
	LexInfo                Code = 2000
	LexUnterminatedComment Code = 2001
	LexUnterminatedString  Code = 2002

	IOLoadFileError Code = 4001

	// Нарушения стиля: всегда фатальны
	StyInfo                         Code = 5000
	StyDeprecationNotAString        Code = 5001
	StyDeprecationMissingDate       Code = 5002
	StyDeprecationInvalidMonth      Code = 5003
	StyMissingTypeAnnotation        Code = 5004
	StyCommentNotAllowedInInterface Code = 5005
	StyDocSyntax                    Code = 5006

	// Предупреждения хост-компилятора, проброшенные из дампа
	HostWarning Code = 6000

	ObsInfo    Code = 7000
	ObsTimings Code = 7001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                     "Unknown error",
		DumpInfo:                        "Module dump information",
		DumpMalformed:                   "Malformed module dump",
		DumpUnknownNode:                 "Unknown node kind in module dump",
		DumpUnsupportedFormat:           "Unsupported module dump format",
		LexInfo:                         "Lexer information",
		LexUnterminatedComment:          "Unterminated comment",
		LexUnterminatedString:           "Unterminated string literal",
		IOLoadFileError:                 "I/O load file error",
		StyInfo:                         "Style information",
		StyDeprecationNotAString:        "Invalid deprecated attribute",
		StyDeprecationMissingDate:       "Deprecation message without a date",
		StyDeprecationInvalidMonth:      "Invalid month in deprecation date",
		StyMissingTypeAnnotation:        "Ignored expression without type annotation",
		StyCommentNotAllowedInInterface: "Plain comment in interface",
		StyDocSyntax:                    "Documentation syntax error",
		HostWarning:                     "Host compiler warning",
		ObsInfo:                         "Observability information",
		ObsTimings:                      "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("DMP%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("STY%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("HST%04d", ic)
	case ic >= 7000 && ic < 8000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
