package books

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

// apiError is the envelope for anticipated business failures. The same
// message appears at the top level and inside the error object; msg is a
// string for not-found and an ordered []string for validation failures.
func apiError(c *gin.Context, status int, msg any) {
	c.JSON(status, gin.H{
		"message": msg,
		"error": gin.H{
			"message": msg,
			"status":  status,
		},
	})
}

// pgErrorBody mirrors the driver's error shape on the wire: the fields a
// Postgres ErrorResponse carries, forwarded without translation.
type pgErrorBody struct {
	Message    string `json:"message"`
	Severity   string `json:"severity,omitempty"`
	Code       string `json:"code,omitempty"`
	Detail     string `json:"detail,omitempty"`
	Hint       string `json:"hint,omitempty"`
	Schema     string `json:"schema,omitempty"`
	Table      string `json:"table,omitempty"`
	Column     string `json:"column,omitempty"`
	Constraint string `json:"constraint,omitempty"`
	File       string `json:"file,omitempty"`
	Line       int32  `json:"line,omitempty"`
	Routine    string `json:"routine,omitempty"`
}

// storageError forwards a storage failure at 500. Driver errors keep
// their native shape; anything else degrades to the plain envelope.
func storageError(c *gin.Context, err error, pgErr *pgconn.PgError) {
	if pgErr == nil {
		apiError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"message": pgErr.Message,
		"error": pgErrorBody{
			Message:    pgErr.Message,
			Severity:   pgErr.Severity,
			Code:       pgErr.Code,
			Detail:     pgErr.Detail,
			Hint:       pgErr.Hint,
			Schema:     pgErr.SchemaName,
			Table:      pgErr.TableName,
			Column:     pgErr.ColumnName,
			Constraint: pgErr.ConstraintName,
			File:       pgErr.File,
			Line:       pgErr.Line,
			Routine:    pgErr.Routine,
		},
	})
}
