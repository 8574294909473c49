package database

import (
	"database/sql"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func openWithConn(conn *sql.DB) (*gorm.DB, error) {
	return gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 newGormLogger(zerolog.Nop()),
		SkipDefaultTransaction: true,
	})
}
