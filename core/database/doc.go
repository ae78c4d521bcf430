// Package database opens the optional launch journal database.
//
// It supports MySQL for shared team journals and SQLite (the default) for a
// per-project file under .studio/. Connection failures are returned to the
// caller, which logs a warning and continues without a journal.
package database
