package di

import (
	"context"

	"gorm.io/gorm"
)

// sqlPinger はreadinessチェック用にGORMの接続プールへPINGします。
type sqlPinger struct {
	db *gorm.DB
}

func (p sqlPinger) PingContext(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
