package log

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const maxSQLLength = 200

// GormLogger routes GORM output through zerolog. Statements are logged at
// debug level. Failed statements are logged at warn level only: the store
// classifies them and the use cases decide whether they are errors.
type GormLogger struct {
	log zerolog.Logger
}

// NewGormLogger wraps l for use as gorm.Config.Logger.
func NewGormLogger(l zerolog.Logger) GormLogger {
	return GormLogger{log: l.With().Str("component", "gorm").Logger()}
}

func (g GormLogger) LogMode(logger.LogLevel) logger.Interface { return g }

func (g GormLogger) Info(_ context.Context, msg string, args ...any) {
	g.log.Info().Msg(fmt.Sprintf(msg, args...))
}

func (g GormLogger) Warn(_ context.Context, msg string, args ...any) {
	g.log.Warn().Msg(fmt.Sprintf(msg, args...))
}

func (g GormLogger) Error(_ context.Context, msg string, args ...any) {
	g.log.Error().Msg(fmt.Sprintf(msg, args...))
}

func (g GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		sql, rows := fc()
		g.log.Warn().Err(err).
			Str("sql", truncateSQL(sql)).
			Int64("rows", rows).
			Dur("duration", elapsed).
			Msg("gorm query failed")
		return
	}

	if g.log.GetLevel() > zerolog.DebugLevel {
		return
	}
	sql, rows := fc()
	g.log.Debug().
		Str("sql", truncateSQL(sql)).
		Int64("rows", rows).
		Dur("duration", elapsed).
		Msg("gorm query")
}

func truncateSQL(sql string) string {
	if len(sql) <= maxSQLLength {
		return sql
	}
	half := (maxSQLLength - 3) / 2
	return sql[:half] + "..." + sql[len(sql)-half:]
}
