package postgres

import (
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	pgErr := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code}, "insert")
	}

	cases := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"unique from driver", pgErr(pgerrcode.UniqueViolation), isUniqueConstraintViolation, true},
		{"unique from gorm", gorm.ErrDuplicatedKey, isUniqueConstraintViolation, true},
		{"foreign key", pgErr(pgerrcode.ForeignKeyViolation), isForeignKeyConstraintViolation, true},
		{"not null", pgErr(pgerrcode.NotNullViolation), isNotNullConstraintViolation, true},
		{"check", pgErr(pgerrcode.CheckViolation), isCheckConstraintViolation, true},
		{"unique is not foreign key", pgErr(pgerrcode.UniqueViolation), isForeignKeyConstraintViolation, false},
		{"plain error mentioning null", errors.New("value is required, not null"), isNotNullConstraintViolation, false},
		{"serialization", pgErr(pgerrcode.SerializationFailure), isTransactionConflict, true},
		{"deadlock", pgErr(pgerrcode.DeadlockDetected), isTransactionConflict, true},
		{"unique is not a conflict", pgErr(pgerrcode.UniqueViolation), isTransactionConflict, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.check(tc.err))
		})
	}
}
