package database

import (
	"campaign-manager/config"
	"campaign-manager/internal/model"
	"campaign-manager/tools"
	"errors"
	"fmt"

	sqlmysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// autoMigrateModels 定义需要自动迁移的模型列表
var autoMigrateModels = []any{
	&model.User{},
	&model.Campaign{},
	&model.Influencer{},
	&model.CampaignInfluencer{},
	// 在这里添加其他模型
}

func Init() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.Get().Mysql.Username,
		config.Get().Mysql.Password,
		config.Get().Mysql.Host,
		config.Get().Mysql.Port,
		config.Get().Mysql.DBName,
	)
	gormConfig := &gorm.Config{}

	switch config.Get().Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	tools.PanicOnErr(err)
	DB = db

	tools.PanicOnErr(Migrate(DB))
}

// Migrate 执行自动迁移，测试环境也复用同一份模型列表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(autoMigrateModels...)
}

// IsDuplicateKey 判断是否为唯一约束冲突（MySQL 1062）
func IsDuplicateKey(err error) bool {
	var mysqlErr *sqlmysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
