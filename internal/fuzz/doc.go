// Package fuzztests holds Go fuzz harnesses for the input-facing parts of the
// checker: the comment scanner, the documentation markup parser and the
// module dump decoder. They only look for panics and hangs.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
