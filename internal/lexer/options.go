package lexer

import (
	"docstyle/internal/diag"
	"docstyle/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil - тогда ошибки игнорируем (но продолжаем сканировать)
}

func (s *Scanner) report(code diag.Code, loc source.Loc, msg string) {
	if s.opts.Reporter != nil {
		diag.ReportError(s.opts.Reporter, code, loc, msg).Emit()
	}
}
