package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/deppfellow/superheroes/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jinzhu/inflection"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tablePrefix marks the table a "no rows" error came from.
// See NoRows and HandleError.
const tablePrefix = "table:"

// NoRows tags a "no rows" error with the table that was queried so
// HandleError can name the missing entity ("heroes" -> "Hero not found").
func NoRows(table string, err error) error {
	return fmt.Errorf("%s%s: %w", tablePrefix, table, err)
}

// ConvertPgError converts a pgconn.PgError (raw Postgres error) into our custom sqlerr.Error.
//
// pgconn.PgError contains Postgres-specific fields like:
//   - Code (SQLSTATE)
//   - Severity
//   - TableName/ColumnName/ConstraintName etc.
//
// We map SQLSTATE + Severity into our enums for easier switching.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),         // map SQLSTATE to friendly code enum
		Severity:       MapSeverity(src.Severity), // map severity string to enum
		DatabaseCode:   src.Code,                  // keep original SQLSTATE
		Message:        src.Message,               // DB's main message
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src, // store original for Unwrap() and debugging
	}
}

// sqliteConstraintDetail matches the tail of go-sqlite3 constraint messages:
//
//	NOT NULL constraint failed: hero_powers.hero_id
//	CHECK constraint failed: ck_powers_description
var sqliteConstraintDetail = regexp.MustCompile(`constraint failed: (\S+)$`)

// ConvertSQLiteError converts a go-sqlite3 error into our custom sqlerr.Error.
//
// SQLite reports much less than Postgres: there is no table or column
// metadata, only the extended result code and a message. The table is
// therefore supplied by the caller (the repository knows what it wrote).
//
// For FOREIGN KEY failures SQLite does not even say which key failed,
// so ConstraintName stays empty.
func ConvertSQLiteError(src sqlite3.Error, table string) *Error {
	sqlErr := &Error{
		Code:         Other,
		Severity:     SeverityError,
		DatabaseCode: strconv.Itoa(int(src.ExtendedCode)),
		Message:      src.Error(),
		TableName:    table,
		driverErr:    src,
	}

	switch src.ExtendedCode {
	case sqlite3.ErrConstraintForeignKey:
		sqlErr.Code = ForeignKeyViolation
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		sqlErr.Code = UniqueViolation
	case sqlite3.ErrConstraintNotNull:
		sqlErr.Code = NotNullViolation
	case sqlite3.ErrConstraintCheck:
		sqlErr.Code = CheckViolation
	}

	// "table.column" for NOT NULL/UNIQUE, the constraint name for CHECK.
	if m := sqliteConstraintDetail.FindStringSubmatch(src.Error()); len(m) > 1 {
		if tbl, col, ok := strings.Cut(m[1], "."); ok {
			sqlErr.TableName = tbl
			sqlErr.ColumnName = col
		} else {
			sqlErr.ConstraintName = m[1]
			sqlErr.ColumnName = extractColumnForCheckViolation(m[1])
		}
	}

	return sqlErr
}

// generateErrorCode creates consistent "application error codes" from DB errors.
//
// Output format:
//
//	<DOMAIN>_<ACTION>
//
// Example:
//
//	hero_powers + ForeignKeyViolation => HERO_POWER_NOT_FOUND
//
// Rules:
//   - DOMAIN comes from tableName (singularized, uppercased)
//   - ACTION depends on violation type
//
// These codes are meant for machines (frontend logic, analytics), not humans.
func generateErrorCode(tableName string, errType Code) string {
	// If table is unknown, default to RECORD to avoid empty domain.
	if tableName == "" {
		tableName = "RECORD"
	}

	// Singularize with inflection so "heroes" becomes HERO, not HEROE.
	domain := strings.ToUpper(inflection.Singular(tableName))

	// Decide what kind of "action" code to generate.
	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces an end-user-facing error message.
//
// This message is intended for clients / UI, not for logs.
// It uses table/column info to phrase messages in a more human way.
func formatUserFriendlyMessage(sqlErr *Error) string {
	// Pick an entity name that the message will refer to.
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		// Example: "The referenced Hero does not exist"
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		// Placeholder word "identifier" is later replaced if we can infer a column name.
		// Example becomes: "A user with this email already exists"
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		// Use column name for "required" message.
		// Example: "The Email is required"
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		// CHECK constraints fail when values violate certain conditions.
		// Example: "The Age value does not meet required conditions"
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		// Fallback for unknown DB errors.
		return "An error occurred while processing your request"
	}
}

// getEntityName tries to infer an entity name from table/column data.
//
// Priority rules:
//  1. If column ends with "_id", use that base name. (Best for FK relations)
//     e.g. "hero_id" -> "Hero"
//  2. Otherwise use the singularized table name ("heroes" -> "Hero").
//  3. Otherwise fallback to "record".
func getEntityName(tableName, columnName string) string {
	// Most reliable for foreign keys: column like "hero_id".
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	// Fallback: table name.
	if tableName != "" {
		return humanizeText(inflection.Singular(tableName))
	}

	return "record"
}

// humanizeText converts snake_case (or lower-ish identifiers) into Title Case.
//
// Example:
//
//	"super_name" -> "Super Name"
//
// It uses x/text/cases for proper title casing rules.
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation tries to infer the column name from a unique constraint name.
//
// It supports two conventions:
//
//  1. "unique_<table>_<column>"
//     Example: unique_users_email -> "email"
//
//  2. "<table>_<column>_(key|ukey)"
//     Example: users_email_key -> "email"
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	// Convention 1: unique_table_column
	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		// Need at least: ["unique", "<table>", "<column>"]
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	// Convention 2: table_column_key or table_column_ukey
	re := regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
	matches := re.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// foreignKeyName matches the FK naming convention used by the migrations:
//
//	fk_<table>_<column>_<referred table>
//
// Without a known table only single-word "<x>_id" columns are recognized.
var foreignKeyName = regexp.MustCompile(`^fk_.+?_([a-z0-9]+_id)_[a-z0-9_]+$`)

// extractColumnForForeignKey recovers the column from a FK constraint name.
//
// Postgres FK errors carry the constraint but not the column, so
// "fk_hero_powers_hero_id_heroes" has to give us back "hero_id".
func extractColumnForForeignKey(constraintName, tableName string) string {
	if constraintName == "" {
		return ""
	}

	// Strip the table first when known, which removes the ambiguity of
	// tables containing "_id" themselves.
	if tableName != "" {
		rest := strings.TrimPrefix(constraintName, "fk_"+tableName+"_")
		if rest != constraintName {
			if idx := strings.Index(rest, "_id_"); idx > 0 {
				return rest[:idx+len("_id")]
			}
		}
	}

	if m := foreignKeyName.FindStringSubmatch(constraintName); len(m) > 1 {
		return m[1]
	}
	return ""
}

// extractColumnForCheckViolation recovers the column from a CHECK constraint
// named "ck_<table>_<column>". Only the last segment is returned, so
// multi-word columns are not supported by this convention.
func extractColumnForCheckViolation(constraintName string) string {
	if !strings.HasPrefix(constraintName, "ck_") {
		return ""
	}
	parts := strings.Split(constraintName, "_")
	if len(parts) < 3 {
		return ""
	}
	return parts[len(parts)-1]
}

// HandleError converts a low-level database error into an application-level error.
//
// Output:
//   - If already *errs.HTTPError: returned unchanged
//   - If pgconn.PgError or sqlite3.Error: mapped into a specific errs.NewBadRequestError
//     or errs.NewInternalServerError
//   - If ErrNoRows: mapped to errs.NewNotFoundError
//   - Otherwise: errs.NewInternalServerError
//
// This function is intended to be called in repositories/services after a DB call fails.
func HandleError(err error) error {
	// If it's already an HTTPError, don't re-wrap it.
	// This prevents double-wrapping and preserves exact error shape.
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	// Handle Postgres server errors (constraint violations, etc.)
	//
	// pgconn.PgError is the primary Postgres error type from pgx.
	// It includes SQLSTATE and metadata.
	var sqlErr *Error
	var pgerr *pgconn.PgError
	var liteErr sqlite3.Error
	switch {
	case errors.As(err, &sqlErr):
		// Already converted (e.g. by the sqlite repository, which knows the table).
	case errors.As(err, &pgerr):
		sqlErr = ConvertPgError(pgerr)
		if sqlErr.Code == ForeignKeyViolation && sqlErr.ColumnName == "" {
			sqlErr.ColumnName = extractColumnForForeignKey(sqlErr.ConstraintName, sqlErr.TableName)
		}
		if sqlErr.Code == CheckViolation && sqlErr.ColumnName == "" {
			sqlErr.ColumnName = extractColumnForCheckViolation(sqlErr.ConstraintName)
		}
	case errors.As(err, &liteErr):
		sqlErr = ConvertSQLiteError(liteErr, "")
	}

	if sqlErr != nil {
		// Create:
		// - a machine-friendly error code (e.g. HERO_POWER_NOT_FOUND)
		// - a user-friendly message (e.g. "The referenced Hero does not exist")
		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			// Foreign key violation usually means reference doesn't exist.
			// Example: inserting a hero_power with a hero_id that doesn't exist.
			return errs.NewBadRequestError(userMessage, &errorCode, []string{userMessage})

		case UniqueViolation:
			// Unique violation means already exists.
			// Try to infer which column caused it and inject into message.
			columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName)
			if columnName != "" {
				// Replace "identifier" placeholder with actual field name.
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			// override=true here suggests you want client UI to show this message directly.
			return errs.NewBadRequestError(userMessage, &errorCode, []string{userMessage})

		case NotNullViolation:
			return errs.NewBadRequestError(userMessage, &errorCode, []string{userMessage})

		case CheckViolation:
			// CHECK constraint failures are also usually bad request.
			return errs.NewBadRequestError(userMessage, &errorCode, []string{userMessage})

		default:
			// Unknown/other DB errors should not leak details to clients.
			return errs.NewInternalServerError()
		}
	}

	// Handle "no rows found" errors (common for SELECT queries).
	// Both pgx and database/sql define ErrNoRows.
	switch {
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows):
		// Repositories tag the error with NoRows so the entity can be named.
		errMsg := err.Error()
		if strings.Contains(errMsg, tablePrefix) {
			// If error message includes "table:<name>:", extract the name.
			table := strings.Split(strings.Split(errMsg, tablePrefix)[1], ":")[0]
			entityName := getEntityName(table, "")
			return errs.NewNotFoundError(fmt.Sprintf("%s not found", entityName), nil)
		}
		// Generic not found fallback.
		return errs.NewNotFoundError("Resource not found", nil)
	}

	// Default fallback: treat unknown error as 500.
	return errs.NewInternalServerError()
}
