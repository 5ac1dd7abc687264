// Package fuzztests houses Go fuzz harnesses for the scanner and the
// translator. They guard against panics and hangs on arbitrary input.
//
// Назначение: загружать байты в FileSet и прогонять их через сканер и
// транслятор.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
